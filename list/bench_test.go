package list_test

import (
	"testing"

	"github.com/katalvlaran/ntl/list"
)

// BenchmarkInsertFront measures constant-time prepends.
func BenchmarkInsertFront(b *testing.B) {
	l := list.New[int]()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.InsertFront(i)
	}
}

// BenchmarkInsertBack measures constant-time appends via the cached
// tail.
func BenchmarkInsertBack(b *testing.B) {
	l := list.New[int]()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.InsertBack(i)
	}
}

// BenchmarkFindElement measures the linear scan on a 1k-element list.
func BenchmarkFindElement(b *testing.B) {
	l := list.New[int]()
	for i := 0; i < 1000; i++ {
		l.InsertBack(i)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.FindElement(999) // worst case: last element
	}
}

// BenchmarkStackPushPop measures a push/pop round-trip.
func BenchmarkStackPushPop(b *testing.B) {
	s := list.NewStack[int]()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Push(i)
		s.Pop()
	}
}

// BenchmarkQueueEnqueueDequeue measures an enqueue/dequeue round-trip.
func BenchmarkQueueEnqueueDequeue(b *testing.B) {
	q := list.NewQueue[int]()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		q.Enqueue(i)
		q.Dequeue()
	}
}
