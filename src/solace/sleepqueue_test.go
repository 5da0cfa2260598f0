package solace

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSleepQueueDrainExpiredOrdersByDeadline(t *testing.T) {
	sq := newSleepQueue()
	late := &Task{Name: "late", NextWakeup: 30}
	early := &Task{Name: "early", NextWakeup: 10}
	mid := &Task{Name: "mid", NextWakeup: 20}
	forever := &Task{Name: "forever", NextWakeup: WaitForever}

	sq.insert(late)
	sq.insert(early)
	sq.insert(mid)
	sq.insert(forever)

	expired := sq.drainExpired(20)
	require.Len(t, expired, 2)
	require.Equal(t, "early", expired[0].Name)
	require.Equal(t, "mid", expired[1].Name)

	require.True(t, sq.contains(late))
	require.True(t, sq.contains(forever))
	require.False(t, sq.contains(early))
}

func TestSleepQueueRemove(t *testing.T) {
	sq := newSleepQueue()
	a := &Task{NextWakeup: 5}
	sq.insert(a)
	require.True(t, sq.contains(a))
	sq.remove(a)
	require.False(t, sq.contains(a))
}

func TestTickExpiredHandlesWrap(t *testing.T) {
	// Boundary behavior: crossing the sign bit must still order correctly
	// under signed comparison (spec.md §8 property 9).
	require.True(t, tickExpired(0x7ffffffe, 0x80000001))
	require.False(t, tickExpired(0x80000001, 0x7ffffffe))
}
