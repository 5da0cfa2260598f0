package solace

import "github.com/T0213-ZH/reverie/src/lib/trust"

// TaskInfo is the snapshot IterInfo hands back for one task, per spec.md
// §4.G / §6.
type TaskInfo struct {
	ID            uint32
	Name          string
	Priority      uint8
	State         State
	StackWatermark int
	CSwitchCount  uint64
	RunTicks      uint64
	NextCheckin   uint32
}

// CreateTask creates a new task and makes it READY, per spec.md §4.G's
// seven steps. The caller owns stack for the task's entire lifetime; the
// kernel never frees it.
func (k *Kernel) CreateTask(name string, entry Entry, arg uintptr, priority uint8, sanityInterval uint32, stack []byte) (*Task, *Error) {
	if len(stack) == 0 {
		return nil, newError("CreateTask", InvalidParam)
	}

	t := &Task{
		Name:     name,
		Priority: priority,
		State:    Ready,
		Entry:    entry,
		Arg:      arg,
		Stack:    stack,
	}
	fillStackSentinel(stack)
	t.savedSP = k.ar.StackInit(stack, entry, arg)

	var conflict *Error
	k.critical(func() {
		for _, existing := range k.tasks {
			if existing.Priority == priority {
				conflict = newError("CreateTask", InvalidParam)
				return
			}
		}
		t.ID = k.allocID()
		k.tasks[t.ID] = t
		if !k.ready.insert(t) {
			trust.Fatalf(1, "ready queue priority conflict creating task %d (priority %d)", t.ID, t.Priority)
		}
		if sanityInterval != WaitForever {
			t.Sanity = &SanityRecord{IntervalTicks: sanityInterval, NextCheckin: k.tick.get() + sanityInterval}
			_ = k.cfg.Sanity.Register(t.ID, t.Sanity)
		}
	})
	if conflict != nil {
		return nil, conflict
	}

	if k.started {
		k.Schedule()
	}
	return t, nil
}

// RemoveTask removes a task, per spec.md §4.G / §6's precondition table.
func (k *Kernel) RemoveTask(t *Task) *Error {
	if t == k.current {
		return newError("RemoveTask", InvalidParam)
	}
	var result *Error
	k.critical(func() {
		if t.State != Ready && t.State != Sleep {
			result = newError("RemoveTask", NotStarted)
			return
		}
		if !t.removable() {
			result = newError("RemoveTask", Busy)
			return
		}
		switch t.State {
		case Ready:
			k.ready.remove(t)
		case Sleep:
			k.sleep.remove(t)
		}
		t.State = Removed
		delete(k.tasks, t.ID)
		if t.Sanity != nil {
			k.cfg.Sanity.Deregister(t.ID)
		}
	})
	return result
}

// IterInfo provides stable iteration over the task table: pass nil to
// begin, and the previously returned task thereafter. Returns (nil, nil)
// at end of iteration.
func (k *Kernel) IterInfo(prev *Task) (*Task, *TaskInfo) {
	ids := k.orderedTaskIDs()
	startAt := 0
	if prev != nil {
		for i, id := range ids {
			if id == prev.ID {
				startAt = i + 1
				break
			}
		}
	}
	if startAt >= len(ids) {
		return nil, nil
	}
	t := k.tasks[ids[startAt]]
	if t == nil {
		return nil, nil
	}
	info := &TaskInfo{
		ID:             t.ID,
		Name:           t.Name,
		Priority:       t.Priority,
		State:          t.State,
		StackWatermark: stackWatermark(t.Stack),
		CSwitchCount:   t.CSwitchCount,
		RunTicks:       t.RunTicks,
	}
	if t.Sanity != nil {
		info.NextCheckin = t.Sanity.NextCheckin
	}
	return t, info
}

// orderedTaskIDs returns task IDs in creation order, so IterInfo's
// iteration is stable across calls even though k.tasks is a map.
func (k *Kernel) orderedTaskIDs() []uint32 {
	ids := make([]uint32, 0, len(k.tasks))
	for id := range k.tasks {
		ids = append(ids, id)
	}
	for i := 1; i < len(ids); i++ {
		for j := i; j > 0 && ids[j] < ids[j-1]; j-- {
			ids[j], ids[j-1] = ids[j-1], ids[j]
		}
	}
	return ids
}
