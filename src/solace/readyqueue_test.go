package solace

import "testing"

import "github.com/stretchr/testify/require"

func TestReadyQueueHeadIsLowestPriority(t *testing.T) {
	rq := newReadyQueue()
	low := &Task{Priority: 200}
	mid := &Task{Priority: 100}
	high := &Task{Priority: 1}

	require.True(t, rq.insert(low))
	require.True(t, rq.insert(mid))
	require.True(t, rq.insert(high))

	require.Same(t, high, rq.head())

	rq.remove(high)
	require.Same(t, mid, rq.head())

	rq.remove(mid)
	require.Same(t, low, rq.head())

	rq.remove(low)
	require.True(t, rq.empty())
	require.Nil(t, rq.head())
}

func TestReadyQueueRejectsDuplicatePriority(t *testing.T) {
	rq := newReadyQueue()
	a := &Task{Priority: 5}
	b := &Task{Priority: 5}

	require.True(t, rq.insert(a))
	require.False(t, rq.insert(b))
	require.Same(t, a, rq.head())
}

func TestReadyQueueContains(t *testing.T) {
	rq := newReadyQueue()
	a := &Task{Priority: 9}
	require.False(t, rq.contains(a))
	rq.insert(a)
	require.True(t, rq.contains(a))
	rq.remove(a)
	require.False(t, rq.contains(a))
}
