package solace

// Config sizes and tunes a Kernel instance. Design Notes §9 calls for "one
// process-wide kernel state value with explicit initialization at
// startup"; Config is how a caller supplies the board-specific numbers
// the teacher instead baked in as package constants (maxFamilies, quanta).
type Config struct {
	// TicksPerSecond is the timer ISR rate. Must be <= 2^32-1 (trivially
	// true for a uint32, kept here as documentation of the compile-time
	// constraint spec.md §4.C names).
	TicksPerSecond uint32
	// MaxTasks sizes the initial allocation of the global task table,
	// mirroring the teacher's maxFamilies/MaxDomains constant. CreateTask
	// does not reject tasks beyond it.
	MaxTasks int
	// IdlePriority is the priority assigned to the always-eligible idle
	// task. Defaults to 255 (least urgent) if zero given IdlePriority is
	// never itself a meaningful priority-0 task.
	IdlePriority uint8

	Arch            Arch
	CriticalSection CriticalSection
	Sanity          SanityRegistrar
}

func (c *Config) setDefaults() {
	if c.TicksPerSecond == 0 {
		c.TicksPerSecond = 1000
	}
	if c.MaxTasks == 0 {
		c.MaxTasks = 64
	}
	if c.Arch == nil {
		c.Arch = NewHostArch()
	}
	if c.CriticalSection == nil {
		c.CriticalSection = NewHostCriticalSection()
	}
	if c.Sanity == nil {
		c.Sanity = noopSanity{}
	}
}

// Kernel is the single process-wide kernel state value: tick counter,
// ready/sleep queues, time-of-day base, listener list, and the task
// table. There is no package-level mutable state (unlike the teacher's
// var familyImpl [64]*family) — everything lives here, constructed once
// by New.
type Kernel struct {
	cfg Config
	cs  CriticalSection
	ar  Arch

	tick    tickSource
	ready   *readyQueue
	sleep   *sleepQueue
	tasks   map[uint32]*Task
	nextID  uint32
	current *Task
	idle    *Task
	started bool

	tod       todBase
	listeners []*ChangeListener
}

// New constructs a Kernel and its idle task, per Design Notes §9's
// "explicit initialization... no hidden initialization at first use."
func New(cfg Config) *Kernel {
	cfg.setDefaults()
	k := &Kernel{
		cfg:   cfg,
		cs:    cfg.CriticalSection,
		ar:    cfg.Arch,
		ready: newReadyQueue(),
		sleep: newSleepQueue(),
		tasks: make(map[uint32]*Task, cfg.MaxTasks),
	}
	idlePrio := cfg.IdlePriority
	if idlePrio == 0 {
		idlePrio = 255
	}
	idle := &Task{
		ID:       k.allocID(),
		Name:     "idle",
		Priority: idlePrio,
		State:    Running,
		Entry:    func(uintptr) { /* never invoked: idle starts as the already-running boot context */ },
	}
	k.tasks[idle.ID] = idle
	k.idle = idle
	k.current = idle
	return k
}

func (k *Kernel) allocID() uint32 {
	id := k.nextID
	k.nextID++
	return id
}

// Current returns the task the CPU is currently executing.
func (k *Kernel) Current() *Task { return k.current }

// TicksPerSecond returns the kernel's configured timer rate.
func (k *Kernel) TicksPerSecond() uint32 { return k.cfg.TicksPerSecond }

// Start marks the scheduler as running; before this, TickAdvance only
// advances the counter (rebasing the time-of-day base when the sign bit
// flips) and neither promotes sleepers nor reschedules.
func (k *Kernel) Start() {
	k.critical(func() {
		k.started = true
	})
}
