package solace

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestKernel(t *testing.T) *Kernel {
	t.Helper()
	k := New(Config{TicksPerSecond: 1000})
	k.Start()
	return k
}

func TestSchedulePicksHighestPriorityReady(t *testing.T) {
	k := newTestKernel(t)
	stack := make([]byte, 256)

	t9, err := k.CreateTask("t9", func(uintptr) {}, 0, 9, WaitForever, append([]byte(nil), stack...))
	require.Nil(t, err)
	t5, err := k.CreateTask("t5", func(uintptr) {}, 0, 5, WaitForever, append([]byte(nil), stack...))
	require.Nil(t, err)
	t1, err := k.CreateTask("t1", func(uintptr) {}, 0, 1, WaitForever, append([]byte(nil), stack...))
	require.Nil(t, err)

	k.Schedule()
	require.Equal(t, t1, k.Current())

	// S1: three tasks {1,5,9} all delay(10); at tick 10 all three wake at
	// once and the ready-queue head is priority 1, so resumption order is
	// 1, 5, 9. We drive that order here by having each task voluntarily
	// give up the CPU (Sleep) once it has "run", which is the only way to
	// observe successive scheduling decisions without real goroutines.
	k.Sleep(t1, 10)
	require.Equal(t, t5, k.Current())

	k.Sleep(t5, 10)
	require.Equal(t, t9, k.Current())
}

func TestTickAdvancePromotesAllExpiredSleepers(t *testing.T) {
	k := newTestKernel(t)
	stack := func() []byte { return make([]byte, 256) }

	t9, _ := k.CreateTask("t9", func(uintptr) {}, 0, 9, WaitForever, stack())
	t5, _ := k.CreateTask("t5", func(uintptr) {}, 0, 5, WaitForever, stack())
	t1, _ := k.CreateTask("t1", func(uintptr) {}, 0, 1, WaitForever, stack())

	k.Sleep(t9, 10)
	k.Sleep(t5, 10)
	k.Sleep(t1, 10)

	k.TickAdvance(10)

	require.Equal(t, t1, k.Current())
	require.Equal(t, Ready, t5.State)
	require.Equal(t, Ready, t9.State)
	require.True(t, k.ready.contains(t5))
	require.True(t, k.ready.contains(t9))
}

func TestTickAdvanceZeroChangesNothing(t *testing.T) {
	// S6: a zero tick advance must not reschedule or mutate state.
	k := newTestKernel(t)
	stack := make([]byte, 256)
	other, _ := k.CreateTask("other", func(uintptr) {}, 0, 1, WaitForever, stack)
	k.Sleep(other, 5)

	before := k.Tick()
	beforeCurrent := k.Current()
	beforeState := other.State

	k.TickAdvance(0)

	require.Equal(t, before, k.Tick())
	require.Equal(t, beforeCurrent, k.Current())
	require.Equal(t, beforeState, other.State)
}

func TestDelayZeroIsNoop(t *testing.T) {
	// S10: delay(0) must not switch or change state.
	k := newTestKernel(t)
	cur := k.Current()
	beforeState := cur.State
	k.Delay(0)
	require.Equal(t, cur, k.Current())
	require.Equal(t, beforeState, cur.State)
}

func TestIdleRunsWhenNothingElseReady(t *testing.T) {
	k := New(Config{TicksPerSecond: 1000})
	k.Start()
	require.Equal(t, k.idle, k.Current())

	stack := make([]byte, 256)
	only, err := k.CreateTask("only", func(uintptr) {}, 0, 10, WaitForever, stack)
	require.Nil(t, err)
	k.Schedule()
	require.Equal(t, only, k.Current())

	k.Sleep(only, WaitForever)
	require.Equal(t, k.idle, k.Current())
}
