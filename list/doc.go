// Package list implements a singly linked list with a sentinel head
// node, plus Stack and Queue adapters built on top of it.
//
// The sentinel head carries no value; it exists so that insertion and
// removal never special-case the first element. Head returns the
// sentinel itself, Front the first value-bearing node, Back the last
// one. A cached tail pointer keeps InsertBack at O(1).
//
// What the package provides:
//
//	• List[T] — InsertFront, InsertBack and InsertAfter in O(1);
//	  RemoveAfter in O(1); RemoveElement, FindElement and Equal in O(n)
//	• Stack[T] — LIFO Push/Pop/Peek delegating to InsertFront
//	• Queue[T] — FIFO Enqueue/Dequeue/Peek delegating to InsertBack
//
// Elements must be comparable; RemoveElement, FindElement and Equal
// rely on ==. Contract violations (nil node arguments, removal past
// the tail, Pop from an empty stack) panic with the package's
// sentinel errors. The list is not synchronized; wrap access with
// osync primitives when sharing across goroutines.
package list
