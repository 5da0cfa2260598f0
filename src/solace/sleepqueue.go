package solace

// sleepQueue holds SLEEP tasks with deadlines, kept in insertion order;
// only drainExpired sorts, and only the tasks it returns, by deadline.
// Built in the teacher's "plain slice, linear scan" style (src/joy/family.go
// scans its whole family table on every tick) since spec.md §4.E only
// requires drainExpired to return deadlines in order, and the kernel's
// task count is small.
type sleepQueue struct {
	tasks []*Task
}

func newSleepQueue() *sleepQueue {
	return &sleepQueue{}
}

func (sq *sleepQueue) insert(t *Task) {
	sq.tasks = append(sq.tasks, t)
}

func (sq *sleepQueue) remove(t *Task) {
	for i, s := range sq.tasks {
		if s == t {
			sq.tasks = append(sq.tasks[:i], sq.tasks[i+1:]...)
			return
		}
	}
}

func (sq *sleepQueue) contains(t *Task) bool {
	for _, s := range sq.tasks {
		if s == t {
			return true
		}
	}
	return false
}

// drainExpired removes and returns, in deadline order, every sleeper whose
// deadline has arrived by now (signed-wrap aware, per spec.md §3 "Tick").
// Tasks waiting forever (NextWakeup == WaitForever) never expire here.
func (sq *sleepQueue) drainExpired(now uint32) []*Task {
	var expired []*Task
	var remaining []*Task
	for _, t := range sq.tasks {
		if t.NextWakeup != WaitForever && tickExpired(t.NextWakeup, now) {
			expired = append(expired, t)
		} else {
			remaining = append(remaining, t)
		}
	}
	sq.tasks = remaining
	insertionSortByDeadline(expired)
	return expired
}

func insertionSortByDeadline(tasks []*Task) {
	for i := 1; i < len(tasks); i++ {
		for j := i; j > 0 && deadlineBefore(tasks[j].NextWakeup, tasks[j-1].NextWakeup); j-- {
			tasks[j], tasks[j-1] = tasks[j-1], tasks[j]
		}
	}
}

// tickExpired reports whether deadline has arrived at now, using signed
// comparison so a wrapped 32-bit tick counter still orders correctly
// (spec.md §3: "'Expired' is determined by signed comparison against the
// deadline").
func tickExpired(deadline, now uint32) bool {
	return int32(now-deadline) >= 0
}

// deadlineBefore reports whether a precedes b on the wrapping 32-bit tick
// counter, using the same signed-difference comparison as tickExpired so
// sorting stays correct across a wrap boundary.
func deadlineBefore(a, b uint32) bool {
	return int32(a-b) < 0
}
