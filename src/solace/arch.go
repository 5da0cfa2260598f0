package solace

// Arch is the architecture hook (spec.md §4.B). The kernel core has no
// knowledge of register layout; everything machine-specific lives behind
// this interface, the way the teacher's src/joy/schedule.go isolates
// cpuSwitchTo as an external asm stub.
type Arch interface {
	// StackInit lays out an initial machine frame on stack so the first
	// ContextSwitch into this task jumps to entry(arg). It returns the
	// saved stack pointer to store on the task.
	StackInit(stack []byte, entry Entry, arg uintptr) uintptr

	// ContextSwitch atomically saves the current execution context into
	// *fromSP (skipped if from is nil, i.e. switching away from nothing)
	// and resumes from toSP. Callable from both a voluntary yield and an
	// ISR-exit path.
	ContextSwitch(from, to *Task)
}

// Mask is an opaque interrupt-mask snapshot returned by CriticalSection
// acquisition, to be handed back unchanged to release it. Nested use must
// restore exactly the outer mask, never blindly re-enable.
type Mask uint64

// CriticalSection is the interrupt-masking primitive (spec.md §4.A). Every
// kernel data-structure mutation (ready queue, sleep queue, tick counter,
// time-of-day base, listener list) happens inside one of these.
type CriticalSection interface {
	Enter() Mask
	Exit(saved Mask)
}
