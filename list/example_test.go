package list_test

import (
	"fmt"

	"github.com/katalvlaran/ntl/list"
)

// ExampleList builds a small list and edits it through node handles.
func ExampleList() {
	l := list.New[int]()
	first := l.InsertBack(1)
	l.InsertBack(3)
	l.InsertAfter(first, 2)

	l.RemoveElement(3)

	fmt.Print(l.ToString().String())
	fmt.Println(l.Len())
	// Output:
	// List(1, 2)
	// 2
}

// ExampleStack reverses its input, as stacks do.
func ExampleStack() {
	s := list.NewStack[string]()
	s.Push("first")
	s.Push("second")
	s.Push("third")

	for !s.IsEmpty() {
		fmt.Println(s.Pop())
	}
	// Output:
	// third
	// second
	// first
}

// ExampleQueue preserves arrival order.
func ExampleQueue() {
	q := list.NewQueue[string]()
	q.Enqueue("first")
	q.Enqueue("second")
	q.Enqueue("third")

	for !q.IsEmpty() {
		fmt.Println(q.Dequeue())
	}
	// Output:
	// first
	// second
	// third
}
