//go:build tinygo

package solace

import "github.com/T0213-ZH/reverie/src/lib/upbeat"

// arm64Arch is the real architecture hook for AArch64 boards, grounded in
// the teacher's src/joy/schedule.go (cpuSwitchTo) and
// src/lib/upbeat/interrupt_support.go (MaskDAIF/UnmaskDAIF).
type arm64Arch struct{}

// NewARM64Arch returns the production Arch for AArch64 boards (RPi3 and
// compatible QA7-based targets, per the teacher's board support).
func NewARM64Arch() Arch { return &arm64Arch{} }

func (a *arm64Arch) StackInit(stack []byte, entry Entry, arg uintptr) uintptr {
	return armStackInit(stack, entry, arg)
}

func (a *arm64Arch) ContextSwitch(from, to *Task) {
	var fromSP *uintptr
	if from != nil {
		fromSP = &from.savedSP
	}
	cpuSwitchTo(fromSP, &to.savedSP)
}

// cpuSwitchTo is implemented in assembly (linked externally, as in the
// teacher's build): it saves callee-saved registers and the stack pointer
// into *fromSP (a nil fromSP means there is nothing to save into, i.e.
// this is the very first switch at boot), then restores the same
// registers from *toSP and returns into the resumed task. Must be
// callable from both the voluntary-yield path and an ISR exit.
//
//go:external
func cpuSwitchTo(fromSP, toSP *uintptr)

// armStackInit is implemented in assembly alongside cpuSwitchTo: it
// writes the initial register frame at the top of stack so the first
// cpuSwitchTo into it resumes at a trampoline that calls entry(arg).
//
//go:external
func armStackInit(stack []byte, entry Entry, arg uintptr) uintptr

// arm64CriticalSection masks IRQ+FIQ via the four D-A-I-F bits. The
// teacher's upbeat.MaskDAIF/UnmaskDAIF (src/lib/upbeat/interrupt_support.go)
// set and clear the mask blindly; spec.md §4.A requires returning the
// prior mask so nested use restores exactly the outer state, so this
// generalizes the teacher's pair into a proper save/restore, backed by
// the same two external asm primitives cpuSwitchTo already establishes
// the pattern for.
type arm64CriticalSection struct{}

// NewARM64CriticalSection returns the production CriticalSection for
// AArch64 boards.
func NewARM64CriticalSection() CriticalSection { return &arm64CriticalSection{} }

func (arm64CriticalSection) Enter() Mask {
	saved := readDAIF()
	upbeat.MaskDAIF()
	return saved
}

func (arm64CriticalSection) Exit(saved Mask) {
	writeDAIF(saved)
}

// readDAIF and writeDAIF are implemented in assembly alongside
// cpuSwitchTo: "mrs x0, daif" and "msr daif, x0" respectively. The mask
// step itself reuses upbeat.MaskDAIF rather than duplicating that asm.
//
//go:external
func readDAIF() Mask

//go:external
func writeDAIF(saved Mask)
