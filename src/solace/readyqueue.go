package solace

import (
	"unsafe"

	"github.com/T0213-ZH/reverie/src/lib/upbeat"
)

const priorityLevels = 256 // priority is an 8-bit value

// readyQueue is the set of all READY tasks, ordered by priority. Bitmap
// implementation option named in spec.md §4.D, built directly on the
// teacher's upbeat.BitSet: bit i is set iff a task of priority i is READY,
// so head() is a single FirstSet() scan over four 64-bit words.
type readyQueue struct {
	backing [priorityLevels / 64]uint64
	bits    *upbeat.BitSet
	byPrio  [priorityLevels]*Task
}

func newReadyQueue() *readyQueue {
	rq := &readyQueue{}
	rq.bits = upbeat.NewBitSet(priorityLevels, unsafe.Pointer(&rq.backing[0]))
	return rq
}

// insert adds t to the ready queue. Reports false (precondition
// violation) if a different task already occupies t.Priority.
func (rq *readyQueue) insert(t *Task) bool {
	if rq.byPrio[t.Priority] != nil && rq.byPrio[t.Priority] != t {
		return false
	}
	rq.byPrio[t.Priority] = t
	rq.bits.Set(upbeat.BitIndex(t.Priority))
	return true
}

func (rq *readyQueue) remove(t *Task) {
	if rq.byPrio[t.Priority] != t {
		return
	}
	rq.byPrio[t.Priority] = nil
	rq.bits.Clear(upbeat.BitIndex(t.Priority))
}

// head returns the highest-priority (lowest numeric) READY task, or nil.
func (rq *readyQueue) head() *Task {
	idx, ok := rq.bits.FirstSet()
	if !ok {
		return nil
	}
	return rq.byPrio[idx]
}

func (rq *readyQueue) empty() bool {
	return rq.bits.Empty()
}

// contains is a test/debug helper checking the disjointness invariant
// (spec.md §8 property 3).
func (rq *readyQueue) contains(t *Task) bool {
	return rq.byPrio[t.Priority] == t
}
