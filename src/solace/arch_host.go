//go:build !tinygo

package solace

import "sync/atomic"

// hostArch is a host-testable stand-in for the real architecture hook. No
// repo in the retrieval pack ships a way to unit-test an ISR-driven
// context switch off real or emulated hardware, so this exists purely to
// let solace's scheduler logic (spec.md §8's testable properties) run
// under `go test` without an ARM64 target. It never actually resumes
// machine execution at a saved PC — it only performs the bookkeeping the
// scheduler depends on (which task is current, saved-SP non-zero-ness),
// which is all the kernel-core invariants in spec.md §8 examine.
type hostArch struct {
	nextSP uint64
}

// NewHostArch returns the default Arch implementation used when the
// kernel is not built for a real target. Production boards supply their
// own Arch (see arch_arm64.go).
func NewHostArch() Arch { return &hostArch{} }

func (h *hostArch) StackInit(stack []byte, entry Entry, arg uintptr) uintptr {
	_ = entry
	_ = arg
	if len(stack) == 0 {
		return 0
	}
	return uintptr(atomic.AddUint64(&h.nextSP, 1))
}

func (h *hostArch) ContextSwitch(from, to *Task) {
	if from != nil {
		if from.savedSP == 0 {
			from.savedSP = uintptr(atomic.AddUint64(&h.nextSP, 1))
		}
	}
	_ = to // to.savedSP already holds the value StackInit produced
}

// hostCriticalSection emulates interrupt masking on the host with a plain
// counter: nesting depth stands in for the saved DAIF bits, since a single
// goroutine driving the kernel never actually races itself. Real hardware
// masking lives in arch_arm64.go.
type hostCriticalSection struct {
	depth uint64
}

// NewHostCriticalSection returns the default CriticalSection used off
// real hardware.
func NewHostCriticalSection() CriticalSection { return &hostCriticalSection{} }

func (h *hostCriticalSection) Enter() Mask {
	prev := atomic.AddUint64(&h.depth, 1) - 1
	return Mask(prev)
}

func (h *hostCriticalSection) Exit(saved Mask) {
	atomic.StoreUint64(&h.depth, uint64(saved))
}
