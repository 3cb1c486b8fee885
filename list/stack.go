// Package list: LIFO adapter over the linked list.
package list

// Stack is a last-in-first-out adapter over List. Push works at the
// front of the list so that Push, Pop and Peek are all O(1).
type Stack[T comparable] struct {
	data *List[T]
}

// NewStack returns an empty stack.
func NewStack[T comparable]() *Stack[T] {
	return &Stack[T]{data: New[T]()}
}

// Push places element on top of the stack.
//
// Complexity: O(1).
func (s *Stack[T]) Push(element T) {
	s.data.InsertFront(element)
}

// Pop removes and returns the top element.
// Panics with ErrEmpty when the stack holds nothing.
//
// Complexity: O(1).
func (s *Stack[T]) Pop() T {
	if s.data.IsEmpty() {
		panic(ErrEmpty)
	}

	result := s.data.Front().Value
	s.data.RemoveAfter(s.data.Head())

	return result
}

// Peek returns the top element without removing it.
// Panics with ErrEmpty when the stack holds nothing.
//
// Complexity: O(1).
func (s *Stack[T]) Peek() T {
	if s.data.IsEmpty() {
		panic(ErrEmpty)
	}

	return s.data.Front().Value
}

// Len returns the number of stacked elements.
func (s *Stack[T]) Len() int { return s.data.Len() }

// IsEmpty reports whether the stack holds no elements.
func (s *Stack[T]) IsEmpty() bool { return s.data.IsEmpty() }
