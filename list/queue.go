// Package list: FIFO adapter over the linked list.
package list

// Queue is a first-in-first-out adapter over List. Enqueue appends at
// the back via the cached tail pointer, Dequeue removes at the front;
// both are O(1).
type Queue[T comparable] struct {
	data *List[T]
}

// NewQueue returns an empty queue.
func NewQueue[T comparable]() *Queue[T] {
	return &Queue[T]{data: New[T]()}
}

// Enqueue places element at the back of the queue.
//
// Complexity: O(1).
func (q *Queue[T]) Enqueue(element T) {
	q.data.InsertBack(element)
}

// Dequeue removes and returns the oldest element.
// Panics with ErrEmpty when the queue holds nothing.
//
// Complexity: O(1).
func (q *Queue[T]) Dequeue() T {
	if q.data.IsEmpty() {
		panic(ErrEmpty)
	}

	result := q.data.Front().Value
	q.data.RemoveAfter(q.data.Head())

	return result
}

// Peek returns the oldest element without removing it.
// Panics with ErrEmpty when the queue holds nothing.
//
// Complexity: O(1).
func (q *Queue[T]) Peek() T {
	if q.data.IsEmpty() {
		panic(ErrEmpty)
	}

	return q.data.Front().Value
}

// Len returns the number of queued elements.
func (q *Queue[T]) Len() int { return q.data.Len() }

// IsEmpty reports whether the queue holds no elements.
func (q *Queue[T]) IsEmpty() bool { return q.data.IsEmpty() }
