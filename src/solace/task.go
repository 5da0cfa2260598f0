package solace

// State is a Task's position in its lifecycle state machine (spec.md
// §4.F): created -> Ready -> Running <-> Ready, Running -> Sleep -> Ready,
// any state -> Removed.
type State int

const (
	Ready State = iota
	Running
	Sleep
	Removed
)

func (s State) String() string {
	switch s {
	case Ready:
		return "ready"
	case Running:
		return "running"
	case Sleep:
		return "sleep"
	case Removed:
		return "removed"
	default:
		return "unknown"
	}
}

// WaitFlag is a bit in a Task's wait-flags bitset (mutex/semaphore/event
// wait). Synchronization primitives live outside the kernel core; they set
// and clear these bits with SetWaitFlag/ClearWaitFlag, and while any bit is
// set RemoveTask reports Busy.
type WaitFlag uint8

const (
	WaitMutex WaitFlag = 1 << iota
	WaitSemaphore
	WaitEvent
)

// WaitForever is the sentinel duration meaning "no deadline" — a task
// Sleep()ing with this duration is never promoted by tick expiry. The
// kernel's only wake path is tick expiry and it exports no wake call, so
// such a task leaves the sleep queue only through RemoveTask.
const WaitForever uint32 = 0xffffffff

// Entry is a task's entry function, invoked with its opaque argument the
// first time it is switched into. arch_*.go's StackInit lays out the
// initial frame so the first ContextSwitch lands here.
type Entry func(arg uintptr)

// Task is one thread of control. The kernel core never allocates task
// memory itself — the caller owns Stack for the task's entire lifetime,
// per spec.md §3's ownership invariant.
type Task struct {
	ID       uint32
	Name     string
	Priority uint8 // lower = more urgent, unique among living tasks
	State    State

	NextWakeup uint32 // absolute tick, valid only in State == Sleep
	waitFlags  WaitFlag
	lockHold   int

	Entry Entry
	Arg   uintptr

	Stack     []byte
	savedSP   uintptr
	holdCount int // preemption-hold depth; nothing in the kernel reads or changes it

	Sanity *SanityRecord

	CSwitchCount uint64
	RunTicks     uint64
	lastRunStart uint32
}

// WaitFlags reports the task's current wait-flag bitset.
func (t *Task) WaitFlags() WaitFlag { return t.waitFlags }

// SetWaitFlag is called by synchronization primitives outside the kernel
// core before parking a task on a mutex/semaphore/event.
func (t *Task) SetWaitFlag(f WaitFlag) { t.waitFlags |= f }

// ClearWaitFlag is called by synchronization primitives when a wait ends.
func (t *Task) ClearWaitFlag(f WaitFlag) { t.waitFlags &^= f }

// LockHoldCount reports how many locks this task currently holds.
func (t *Task) LockHoldCount() int { return t.lockHold }

// AcquireLock/ReleaseLock adjust the hold count a removable task must have
// at zero (spec.md §3: "A task with lock-hold-count > 0 ... cannot be
// removed").
func (t *Task) AcquireLock() { t.lockHold++ }
func (t *Task) ReleaseLock() {
	if t.lockHold > 0 {
		t.lockHold--
	}
}

// removable reports whether task removal preconditions are satisfied.
func (t *Task) removable() bool {
	return t.waitFlags == 0 && t.lockHold == 0
}

const stackSentinel = 0xA5

// fillStackSentinel paints the stack with a recognizable pattern so
// lifecycle.go's watermark scan can later find the low-water mark.
func fillStackSentinel(stack []byte) {
	for i := range stack {
		stack[i] = stackSentinel
	}
}

// stackWatermark scans from the low address upward until the first byte
// that differs from the sentinel, per spec.md §4.G.
func stackWatermark(stack []byte) int {
	for i, b := range stack {
		if b != stackSentinel {
			return len(stack) - i
		}
	}
	return 0
}
