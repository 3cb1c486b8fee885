// Package list: sentinel errors for the linked list and its adapters.
package list

import "errors"

// Sentinel errors carried by contract-violation panics.
var (
	// ErrNilNode indicates InsertAfter or RemoveAfter called with a nil node.
	ErrNilNode = errors.New("list: node must not be nil")
	// ErrNoSuccessor indicates RemoveAfter on a node with nothing behind it.
	ErrNoSuccessor = errors.New("list: node has no successor")
	// ErrEmpty indicates Pop/Peek on an empty stack or Dequeue/Peek on
	// an empty queue.
	ErrEmpty = errors.New("list: empty")
)
