package solace

// SanityRecord is the per-task record the kernel stores on behalf of the
// (external) sanity-check subsystem — Design Notes §9: "the kernel only
// stores a record per task and calls back into that subsystem to
// register/deregister."
type SanityRecord struct {
	IntervalTicks uint32
	NextCheckin   uint32
}

// SanityRegistrar is the callback contract the sanity-check subsystem
// implements. It lives entirely outside the kernel core; solace.Kernel
// only ever calls it, never implements it.
type SanityRegistrar interface {
	Register(taskID uint32, rec *SanityRecord) error
	Deregister(taskID uint32)
}

// noopSanity is the default registrar when a Config doesn't supply one:
// task creation still allocates and stores the record (per spec.md §4.G
// step 7), it just never gets checked in on.
type noopSanity struct{}

func (noopSanity) Register(uint32, *SanityRecord) error { return nil }
func (noopSanity) Deregister(uint32)                    {}
