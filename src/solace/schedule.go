package solace

import "github.com/T0213-ZH/reverie/src/lib/trust"

// Schedule is the reschedule decision point (spec.md §4.F). It is called
// after tick processing, after a task becomes READY, after the running
// task enters SLEEP, and after a voluntary yield. Rule: let cand be the
// ready-queue head; switch to it if cand differs from current and either
// current is no longer RUNNING or cand's priority is strictly higher.
func (k *Kernel) Schedule() {
	k.critical(func() {
		k.scheduleLocked()
	})
}

// scheduleLocked must be called with the critical section held.
func (k *Kernel) scheduleLocked() {
	cand := k.ready.head()
	if cand == nil {
		cand = k.idle
	}
	if cand == k.current {
		return
	}
	if k.current.State != Running || cand.Priority < k.current.Priority {
		k.switchTo(cand)
	}
}

// switchTo performs the actual context switch and its bookkeeping. Caller
// holds the critical section.
func (k *Kernel) switchTo(next *Task) {
	prev := k.current
	if prev == next {
		return
	}
	if prev.State == Running {
		prev.State = Ready
		// Ready queue always holds the idle task when it isn't RUNNING.
		// Priority uniqueness is enforced at CreateTask, so this can only
		// fail on a kernel invariant violation.
		if !k.ready.insert(prev) {
			trust.Fatalf(1, "ready queue priority conflict reinserting task %d (priority %d)", prev.ID, prev.Priority)
		}
	}
	k.ready.remove(next)
	next.State = Running
	now := k.tick.get()
	if prev != next {
		prev.RunTicks += uint64(now - prev.lastRunStart)
		next.lastRunStart = now
		next.CSwitchCount++
	}
	k.current = next
	k.ar.ContextSwitch(prev, next)
}

// Sleep is the voluntary-sleep primitive (spec.md §4.F). duration ==
// WaitForever parks the task with no deadline; duration == 0 is a no-op.
func (k *Kernel) Sleep(t *Task, durationTicks uint32) {
	if durationTicks == 0 {
		return
	}
	k.critical(func() {
		if durationTicks == WaitForever {
			t.NextWakeup = WaitForever
		} else {
			t.NextWakeup = k.tick.get() + durationTicks
		}
		if t.State == Ready {
			k.ready.remove(t)
		}
		t.State = Sleep
		k.sleep.insert(t)
	})
	k.Schedule()
}

// Yield re-evaluates the scheduling rule, surrendering to a
// strictly-higher-priority ready task if one exists (spec.md §4.F). Since
// priorities are unique, this is a no-op against equal-priority tasks.
func (k *Kernel) Yield() {
	k.Schedule()
}

// wake moves a SLEEP task to READY unconditionally. Its only caller is
// TickAdvance's expiry path; it is unexported, so nothing outside the
// package can wake a sleeper. Caller holds the critical section.
func (k *Kernel) wake(t *Task) {
	if t.State != Sleep {
		return
	}
	k.sleep.remove(t)
	t.State = Ready
	t.NextWakeup = 0
	if !k.ready.insert(t) {
		trust.Fatalf(1, "ready queue priority conflict waking task %d (priority %d)", t.ID, t.Priority)
	}
}

// TickAdvance is called from the timer ISR with n >= 0 (spec.md §4.C). It
// advances the counter, rebases the time-of-day base if the sign bit
// flipped, promotes expired sleepers, and reconsiders the running task.
func (k *Kernel) TickAdvance(n uint32) {
	if n == 0 {
		return // spec.md §8 property/S6: a zero advance changes nothing
	}
	var expired []*Task
	var mustSchedule bool
	k.critical(func() {
		newVal, flipped := k.tick.advance(n)
		if flipped {
			k.rebaseTOD(newVal)
		}
		if !k.started {
			return
		}
		expired = k.sleep.drainExpired(newVal)
		for _, t := range expired {
			k.wake(t)
		}
		mustSchedule = true
	})
	if mustSchedule {
		k.Schedule()
	}
}
