// Package list: the sentinel-head singly linked list.
package list

import (
	"fmt"

	"github.com/katalvlaran/ntl/strbuf"
)

// Node is a single element of a List. Value is freely readable and
// writable; the successor link is owned by the list and only
// reachable through Next.
type Node[T comparable] struct {
	Value T
	next  *Node[T]
}

// Next returns the node's successor, or nil at the end of the list.
func (n *Node[T]) Next() *Node[T] { return n.next }

// List is a singly linked list with a value-less sentinel head node.
// The sentinel makes insertion and removal uniform: every node,
// including the first value-bearing one, has a predecessor.
//
// The zero List is not ready to use; construct with New.
type List[T comparable] struct {
	head *Node[T] // sentinel, carries no value
	tail *Node[T] // last node; the sentinel itself when empty
	size int
}

// New returns an empty list.
//
// Complexity: O(1).
func New[T comparable]() *List[T] {
	sentinel := &Node[T]{}

	return &List[T]{head: sentinel, tail: sentinel}
}

// Clone returns a deep copy of the list. The nodes are fresh; only
// the values are shared.
//
// Complexity: O(n).
func (l *List[T]) Clone() *List[T] {
	clone := New[T]()
	for curr := l.head.next; curr != nil; curr = curr.next {
		clone.InsertBack(curr.Value)
	}

	return clone
}

// InsertFront prepends element and returns its node.
//
// Complexity: O(1).
func (l *List[T]) InsertFront(element T) *Node[T] {
	node := &Node[T]{Value: element, next: l.head.next}
	if l.head.next == nil {
		l.tail = node
	}
	l.head.next = node
	l.size++

	return node
}

// InsertBack appends element and returns its node.
//
// Complexity: O(1).
func (l *List[T]) InsertBack(element T) *Node[T] {
	node := &Node[T]{Value: element}
	l.tail.next = node
	l.tail = node
	l.size++

	return node
}

// InsertAfter places element directly behind node and returns the new
// node. Passing the sentinel from Head inserts at the front.
// Panics with ErrNilNode when node is nil.
//
// Complexity: O(1).
func (l *List[T]) InsertAfter(node *Node[T], element T) *Node[T] {
	if node == nil {
		panic(fmt.Errorf("%w: InsertAfter", ErrNilNode))
	}

	fresh := &Node[T]{Value: element, next: node.next}
	if node.next == nil {
		l.tail = fresh
	}
	node.next = fresh
	l.size++

	return fresh
}

// RemoveElement unlinks the first node holding element and reports
// whether one was found.
//
// Complexity: O(n).
func (l *List[T]) RemoveElement(element T) bool {
	for curr := l.head; curr.next != nil; curr = curr.next {
		if curr.next.Value == element {
			l.unlinkAfter(curr)

			return true
		}
	}

	return false
}

// RemoveAfter unlinks the node directly behind node.
// Panics with ErrNilNode when node is nil and with ErrNoSuccessor
// when node is the last node.
//
// Complexity: O(1).
func (l *List[T]) RemoveAfter(node *Node[T]) {
	if node == nil {
		panic(fmt.Errorf("%w: RemoveAfter", ErrNilNode))
	}
	if node.next == nil {
		panic(fmt.Errorf("%w: RemoveAfter", ErrNoSuccessor))
	}

	l.unlinkAfter(node)
}

// unlinkAfter drops node.next, repairing the tail pointer when the
// dropped node was last.
func (l *List[T]) unlinkAfter(node *Node[T]) {
	node.next = node.next.next
	if node.next == nil {
		l.tail = node
	}
	l.size--
}

// Clear drops every element.
//
// Complexity: O(1); unreachable nodes are reclaimed by the garbage
// collector.
func (l *List[T]) Clear() {
	l.head.next = nil
	l.tail = l.head
	l.size = 0
}

// FindElement returns the first node holding element, or nil when the
// element is absent.
//
// Complexity: O(n).
func (l *List[T]) FindElement(element T) *Node[T] {
	for curr := l.head.next; curr != nil; curr = curr.next {
		if curr.Value == element {
			return curr
		}
	}

	return nil
}

// Equal reports whether both lists hold the same values in the same
// order.
//
// Complexity: O(n); Ω(1) when the sizes differ.
func (l *List[T]) Equal(other *List[T]) bool {
	if l.size != other.size {
		return false
	}

	a, b := l.head.next, other.head.next
	for a != nil {
		if a.Value != b.Value {
			return false
		}
		a, b = a.next, b.next
	}

	return true
}

// Each calls fn on every value in list order.
//
// Complexity: O(n).
func (l *List[T]) Each(fn func(value T)) {
	for curr := l.head.next; curr != nil; curr = curr.next {
		fn(curr.Value)
	}
}

// Head returns the sentinel node. It carries no value and marks the
// insertion point for the front of the list.
func (l *List[T]) Head() *Node[T] { return l.head }

// Front returns the first value-bearing node, or nil when empty.
func (l *List[T]) Front() *Node[T] { return l.head.next }

// Back returns the last node; for an empty list that is the sentinel.
func (l *List[T]) Back() *Node[T] { return l.tail }

// IsEmpty reports whether the list holds no elements.
func (l *List[T]) IsEmpty() bool { return l.head.next == nil }

// Len returns the number of elements.
func (l *List[T]) Len() int { return l.size }

// ToString renders the list as "List(e0, e1, ..., en)\n".
//
// Complexity: O(n).
func (l *List[T]) ToString() *strbuf.String {
	result := strbuf.From("List(")
	for curr := l.head.next; curr != nil; curr = curr.next {
		result.AppendString(fmt.Sprintf("%v", curr.Value))
		if curr.next != nil {
			result.AppendString(", ")
		}
	}
	result.AppendString(")\n")

	return result
}
