// Package osync: counting semaphore built from Lock and Condition.
package osync

import "errors"

// ErrNegativeCount reports a Semaphore constructed with a negative
// initial count.
var ErrNegativeCount = errors.New("osync: semaphore count must be non-negative")

// Semaphore is a counting semaphore built from a Lock and a Condition.
// The count never goes below zero: Wait blocks until a permit is
// available, TryWait fails instead of blocking.
type Semaphore struct {
	mu    Lock
	ready *Condition
	count int64
}

// NewSemaphore returns a Semaphore holding count permits.
// Panics with ErrNegativeCount when count < 0.
func NewSemaphore(count int64) *Semaphore {
	if count < 0 {
		panic(ErrNegativeCount)
	}
	s := &Semaphore{count: count}
	s.ready = NewCondition(&s.mu)

	return s
}

// Wait blocks until a permit is available and takes it.
// Always returns true; the result mirrors TryWait for callers that
// switch between the two.
func (s *Semaphore) Wait() bool {
	s.mu.Acquire()

	for s.count == 0 {
		s.ready.Wait(true)
	}
	s.count--

	s.mu.Release()

	return true
}

// TryWait takes a permit if one is available without blocking.
// Returns false when the count is zero.
func (s *Semaphore) TryWait() bool {
	s.mu.Acquire()
	defer s.mu.Release()

	if s.count == 0 {
		return false
	}
	s.count--

	return true
}

// Post releases one permit and wakes a single waiter.
func (s *Semaphore) Post() bool {
	s.mu.Acquire()

	s.count++
	s.ready.Signal()

	s.mu.Release()

	return true
}

// Value returns the current permit count. The value is a snapshot and
// may be stale by the time the caller acts on it.
func (s *Semaphore) Value() int64 {
	s.mu.Acquire()
	defer s.mu.Release()

	return s.count
}
