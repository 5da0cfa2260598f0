package solace

// critical runs fn with the kernel's critical section held, restoring the
// prior interrupt mask on every exit path — including a panic, which is
// the Go idiom for "guaranteed release on all exit paths" (spec.md §9).
func (k *Kernel) critical(fn func()) {
	saved := k.cs.Enter()
	defer k.cs.Exit(saved)
	fn()
}
