package solace

import "sync/atomic"

// tickSource is the monotonic, wrapping 32-bit tick counter (spec.md
// §4.C), grounded in the teacher's src/joy/schedule.go timerTick/quanta
// mechanism.
type tickSource struct {
	current uint32
}

func (t *tickSource) get() uint32 {
	return atomic.LoadUint32(&t.current)
}

// advance adds n to the counter and reports whether the sign bit changed,
// i.e. the addition crossed the 2^31 boundary and the time-of-day base
// must be rebased. Caller must hold the critical section.
func (t *tickSource) advance(n uint32) (newVal uint32, signFlipped bool) {
	prev := t.current
	newVal = prev + n
	t.current = newVal
	signFlipped = (prev^newVal)>>31 != 0
	return
}

// msToTicks converts milliseconds to ticks at the given ticks-per-second
// rate (spec.md §4.C). TPS == 1000 is the identity fast path, except that
// an ms whose product with 1000 exceeds 32 bits is reported as Overflow;
// otherwise the conversion is done in 64 bits and range-checked.
func msToTicks(ms uint32, tps uint32) (uint32, *Error) {
	if tps == 1000 {
		if uint64(ms)*1000 > 0xffffffff {
			return 0, newError("MsToTicks", Overflow)
		}
		return ms, nil
	}
	v := (uint64(ms) * uint64(tps)) / 1000
	if v > 0xffffffff {
		return 0, newError("MsToTicks", Overflow)
	}
	return uint32(v), nil
}

// ticksToMs converts ticks to milliseconds at the given ticks-per-second
// rate (spec.md §4.C).
func ticksToMs(ticks uint32, tps uint32) (uint32, *Error) {
	if tps == 1000 {
		return ticks, nil
	}
	v := (uint64(ticks) * 1000) / uint64(tps)
	if v > 0xffffffff {
		return 0, newError("TicksToMs", Overflow)
	}
	return uint32(v), nil
}
