package list_test

import (
	"testing"

	"github.com/katalvlaran/ntl/list"
	"github.com/stretchr/testify/require"
)

// TestStack_LIFO pushes three elements and pops them in reverse order.
func TestStack_LIFO(t *testing.T) {
	s := list.NewStack[int]()
	require.True(t, s.IsEmpty())

	s.Push(1)
	s.Push(2)
	s.Push(3)
	require.Equal(t, 3, s.Len())

	require.Equal(t, 3, s.Peek())
	require.Equal(t, 3, s.Len(), "Peek must not consume")

	require.Equal(t, 3, s.Pop())
	require.Equal(t, 2, s.Pop())
	require.Equal(t, 1, s.Pop())
	require.True(t, s.IsEmpty())
}

// TestStack_EmptyPanics verifies Pop and Peek refuse an empty stack.
func TestStack_EmptyPanics(t *testing.T) {
	s := list.NewStack[string]()

	require.PanicsWithError(t, "list: empty", func() { s.Pop() })
	require.PanicsWithError(t, "list: empty", func() { s.Peek() })
}

// TestStack_Interleaved mixes pushes and pops.
func TestStack_Interleaved(t *testing.T) {
	s := list.NewStack[int]()

	s.Push(1)
	s.Push(2)
	require.Equal(t, 2, s.Pop())
	s.Push(3)
	require.Equal(t, 3, s.Pop())
	require.Equal(t, 1, s.Pop())
	require.True(t, s.IsEmpty())
}

// TestQueue_FIFO enqueues three elements and dequeues them in arrival
// order.
func TestQueue_FIFO(t *testing.T) {
	q := list.NewQueue[string]()
	require.True(t, q.IsEmpty())

	q.Enqueue("a")
	q.Enqueue("b")
	q.Enqueue("c")
	require.Equal(t, 3, q.Len())

	require.Equal(t, "a", q.Peek())
	require.Equal(t, 3, q.Len(), "Peek must not consume")

	require.Equal(t, "a", q.Dequeue())
	require.Equal(t, "b", q.Dequeue())
	require.Equal(t, "c", q.Dequeue())
	require.True(t, q.IsEmpty())
}

// TestQueue_EmptyPanics verifies Dequeue and Peek refuse an empty
// queue.
func TestQueue_EmptyPanics(t *testing.T) {
	q := list.NewQueue[int]()

	require.PanicsWithError(t, "list: empty", func() { q.Dequeue() })
	require.PanicsWithError(t, "list: empty", func() { q.Peek() })
}

// TestQueue_DrainAndRefill empties the queue completely and reuses it.
func TestQueue_DrainAndRefill(t *testing.T) {
	q := list.NewQueue[int]()

	q.Enqueue(1)
	q.Enqueue(2)
	require.Equal(t, 1, q.Dequeue())
	require.Equal(t, 2, q.Dequeue())

	q.Enqueue(3)
	require.Equal(t, 3, q.Peek())
	require.Equal(t, 1, q.Len())
}
