package solace

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCreateTaskRejectsDuplicatePriority(t *testing.T) {
	// S11: creating a task at an already-used priority is rejected.
	k := newTestKernel(t)
	stack1 := make([]byte, 256)
	stack2 := make([]byte, 256)

	_, err := k.CreateTask("first", func(uintptr) {}, 0, 7, WaitForever, stack1)
	require.Nil(t, err)

	_, err = k.CreateTask("second", func(uintptr) {}, 0, 7, WaitForever, stack2)
	require.NotNil(t, err)
	require.Equal(t, InvalidParam, err.Kind)
}

func TestRemoveTaskRejectsRunningTask(t *testing.T) {
	k := newTestKernel(t)
	err := k.RemoveTask(k.Current())
	require.NotNil(t, err)
	require.Equal(t, InvalidParam, err.Kind)
}

func TestRemoveTaskBusyWhenLockHeld(t *testing.T) {
	// S5: a task holding a lock cannot be removed.
	k := newTestKernel(t)
	stack := make([]byte, 256)
	other, err := k.CreateTask("locker", func(uintptr) {}, 0, 2, WaitForever, stack)
	require.Nil(t, err)
	other.AcquireLock()
	// Creating priority 2 preempted idle; take it off the CPU, since
	// RemoveTask rejects the running task with InvalidParam before it
	// looks at the lock count.
	k.Sleep(other, 50)

	err = k.RemoveTask(other)
	require.NotNil(t, err)
	require.Equal(t, Busy, err.Kind)

	other.ReleaseLock()
	err = k.RemoveTask(other)
	require.Nil(t, err)
}

func TestRemoveTaskBusyWhenWaitFlagSet(t *testing.T) {
	k := newTestKernel(t)
	stack := make([]byte, 256)
	other, err := k.CreateTask("waiter", func(uintptr) {}, 0, 3, WaitForever, stack)
	require.Nil(t, err)
	other.SetWaitFlag(WaitMutex)
	k.Sleep(other, WaitForever) // park it, so it is no longer the running task

	err = k.RemoveTask(other)
	require.Equal(t, Busy, err.Kind)

	other.ClearWaitFlag(WaitMutex)
	require.Nil(t, k.RemoveTask(other))
}

func TestRemoveTaskThenNotStarted(t *testing.T) {
	// S8 / property 8 and the Open Question resolution: after removal, the
	// task appears in no queue and re-removing it (or removing a task that
	// was never created) both surface as NotStarted.
	k := newTestKernel(t)
	stack := make([]byte, 256)
	other, err := k.CreateTask("gone", func(uintptr) {}, 0, 4, WaitForever, stack)
	require.Nil(t, err)
	k.Sleep(other, 50) // the new task preempted idle; the running task cannot be removed

	require.Nil(t, k.RemoveTask(other))
	require.False(t, k.ready.contains(other))
	require.False(t, k.sleep.contains(other))
	require.Equal(t, Removed, other.State)

	err = k.RemoveTask(other)
	require.NotNil(t, err)
	require.Equal(t, NotStarted, err.Kind)
}

func TestRemoveSleepingTask(t *testing.T) {
	k := newTestKernel(t)
	stack := make([]byte, 256)
	other, err := k.CreateTask("sleeper", func(uintptr) {}, 0, 6, WaitForever, stack)
	require.Nil(t, err)
	k.Sleep(other, 50)
	require.Equal(t, Sleep, other.State)

	require.Nil(t, k.RemoveTask(other))
	require.False(t, k.sleep.contains(other))
}

func TestIterInfoStableOrder(t *testing.T) {
	k := newTestKernel(t)
	stack := func() []byte { return make([]byte, 256) }
	a, _ := k.CreateTask("a", func(uintptr) {}, 0, 20, WaitForever, stack())
	b, _ := k.CreateTask("b", func(uintptr) {}, 0, 21, WaitForever, stack())

	first, info := k.IterInfo(nil)
	require.NotNil(t, info)
	require.Equal(t, k.idle, first)

	second, info2 := k.IterInfo(first)
	require.NotNil(t, info2)
	require.Equal(t, a, second)

	third, _ := k.IterInfo(second)
	require.Equal(t, b, third)

	fourth, info4 := k.IterInfo(third)
	require.Nil(t, fourth)
	require.Nil(t, info4)
}

func TestStackWatermark(t *testing.T) {
	k := newTestKernel(t)
	stack := make([]byte, 64)
	task, err := k.CreateTask("watermarked", func(uintptr) {}, 0, 30, WaitForever, stack)
	require.Nil(t, err)

	_, untouched := k.IterInfo(k.idle)
	require.Equal(t, task, mustFind(t, k, task.ID))
	require.Zero(t, untouched.StackWatermark)

	// Simulate usage: the stack grows down from the high-address end
	// (index len-1) toward index 0, so the deepest point reached shows up
	// as a dirtied run at the top of the slice. Overwriting stack[48:64]
	// models 16 bytes consumed.
	for i := 48; i < len(stack); i++ {
		stack[i] = 0
	}

	_, info := k.IterInfo(k.idle)
	require.Equal(t, 16, info.StackWatermark)
}

func mustFind(t *testing.T, k *Kernel, id uint32) *Task {
	t.Helper()
	for cur, info := k.IterInfo(nil); info != nil; cur, info = k.IterInfo(cur) {
		if info.ID == id {
			return cur
		}
	}
	return nil
}
