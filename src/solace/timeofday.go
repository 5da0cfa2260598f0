package solace

// TV is a (seconds, microseconds) timestamp — the wire shape spec.md §4.H
// passes around for both uptime and wall-clock.
type TV struct {
	Sec  uint32
	Usec uint32
}

// TZ is a timezone offset in minutes west of UTC, matching the sign
// convention of a POSIX struct timezone.
type TZ struct {
	MinutesWest int32
}

// todBase is the time-of-day base record (spec.md §3): a snapshot from
// which current uptime and wall-clock are derived by adding the tick
// delta since the snapshot was taken.
type todBase struct {
	ostimeRef    uint32 // tick value the snapshot was taken at
	uptimeAtRef  TV
	utctimeAtRef TV
	timezone     TZ
}

// ChangeEvent describes a wall-clock/timezone change, delivered to every
// registered listener in registration order (spec.md §4.H).
type ChangeEvent struct {
	PrevTV      TV
	CurTV       TV
	PrevTZ      TZ
	CurTZ       TZ
	NewlySynced bool
}

// ChangeListener is externally owned; registration and removal are
// explicit (spec.md §3 "Time-change listener").
type ChangeListener struct {
	Callback func(ev ChangeEvent, arg interface{})
	Arg      interface{}
}

// deltaToTV converts a tick delta at the given ticks-per-second rate into
// a (sec, usec) pair, per spec.md §4.H's formula.
func deltaToTV(delta uint32, tps uint32) TV {
	sec := delta / tps
	rem := delta % tps
	usec := rem * (1000000 / tps)
	return TV{Sec: sec, Usec: usec}
}

// addTV adds a tick-derived delta onto a base TV, carrying microseconds
// into seconds.
func addTV(base TV, delta TV) TV {
	usec := base.Usec + delta.Usec
	sec := base.Sec + delta.Sec + usec/1000000
	usec %= 1000000
	return TV{Sec: sec, Usec: usec}
}

// rebaseTOD folds the elapsed delta into both bases and resets ostimeRef
// to the current tick, so a later (current_tick - ostimeRef) never spans
// more than 2^31 ticks (spec.md §4.C, Design Notes §9). Caller holds the
// critical section.
func (k *Kernel) rebaseTOD(now uint32) {
	delta := now - k.tod.ostimeRef
	dtv := deltaToTV(delta, k.cfg.TicksPerSecond)
	k.tod.uptimeAtRef = addTV(k.tod.uptimeAtRef, dtv)
	if k.tod.utctimeAtRef.Sec > 0 {
		k.tod.utctimeAtRef = addTV(k.tod.utctimeAtRef, dtv)
	}
	k.tod.ostimeRef = now
}

// Uptime returns (seconds, microseconds) since boot (spec.md §4.H).
func (k *Kernel) Uptime() TV {
	var base TV
	var ref uint32
	k.critical(func() {
		base = k.tod.uptimeAtRef
		ref = k.tod.ostimeRef
	})
	delta := k.tick.get() - ref
	return addTV(base, deltaToTV(delta, k.cfg.TicksPerSecond))
}

// GetUTC returns the current wall-clock time and timezone (spec.md §4.H).
func (k *Kernel) GetUTC() (TV, TZ) {
	var base TV
	var tz TZ
	var ref uint32
	k.critical(func() {
		base = k.tod.utctimeAtRef
		tz = k.tod.timezone
		ref = k.tod.ostimeRef
	})
	delta := k.tick.get() - ref
	return addTV(base, deltaToTV(delta, k.cfg.TicksPerSecond)), tz
}

// IsTimeSet reports whether the kernel has ever had a valid wall-clock
// set (spec.md §4.I).
func (k *Kernel) IsTimeSet() bool {
	var set bool
	k.critical(func() {
		set = k.tod.utctimeAtRef.Sec > 0
	})
	return set
}

// SetUTC overwrites the wall-clock base and timezone and notifies every
// registered listener (spec.md §4.H, §6). At least one of tv/tz must be
// non-nil.
func (k *Kernel) SetUTC(tv *TV, tz *TZ) *Error {
	if tv == nil && tz == nil {
		return newError("SetUTC", InvalidParam)
	}
	var ev ChangeEvent
	var listeners []*ChangeListener
	k.critical(func() {
		now := k.tick.get()
		delta := now - k.tod.ostimeRef
		dtv := deltaToTV(delta, k.cfg.TicksPerSecond)
		k.tod.uptimeAtRef = addTV(k.tod.uptimeAtRef, dtv)
		prevTV := k.tod.utctimeAtRef
		prevTZ := k.tod.timezone
		newlySynced := prevTV.Sec == 0

		curTV := prevTV
		if prevTV.Sec > 0 {
			curTV = addTV(prevTV, dtv)
		}
		if tv != nil {
			curTV = *tv
		}
		curTZ := prevTZ
		if tz != nil {
			curTZ = *tz
		}

		k.tod.utctimeAtRef = curTV
		k.tod.timezone = curTZ
		k.tod.ostimeRef = now

		ev = ChangeEvent{PrevTV: prevTV, CurTV: curTV, PrevTZ: prevTZ, CurTZ: curTZ, NewlySynced: newlySynced}
		listeners = append(listeners, k.listeners...)
	})
	for _, l := range listeners {
		l.Callback(ev, l.Arg)
	}
	return nil
}

// ChangeListen registers a listener, appended in registration order. It is
// a programming error (handled as InvalidParam) to register the same
// listener twice.
func (k *Kernel) ChangeListen(l *ChangeListener) *Error {
	var dup bool
	k.critical(func() {
		for _, existing := range k.listeners {
			if existing == l {
				dup = true
				return
			}
		}
		k.listeners = append(k.listeners, l)
	})
	if dup {
		return newError("ChangeListen", InvalidParam)
	}
	return nil
}

// ChangeRemove removes a previously registered listener. No-op (returning
// NotFound) if it was never registered.
func (k *Kernel) ChangeRemove(l *ChangeListener) *Error {
	var found bool
	k.critical(func() {
		for i, existing := range k.listeners {
			if existing == l {
				k.listeners = append(k.listeners[:i], k.listeners[i+1:]...)
				found = true
				return
			}
		}
	})
	if !found {
		return newError("ChangeRemove", NotFound)
	}
	return nil
}
