// Package osync: exclusive Lock and its bound Condition.
package osync

import (
	"errors"
	"sync"
)

// ErrNilLock indicates a Condition constructed without a Lock.
var ErrNilLock = errors.New("osync: condition requires a lock")

// Lock is an exclusive mutual-exclusion primitive. The zero value is
// ready to use; NewLock exists for symmetry with the other
// constructors.
//
// Release requires the calling thread to hold the lock; violating
// that is undefined behavior, documented rather than enforced.
type Lock struct {
	mu sync.Mutex
}

// NewLock returns an unlocked Lock.
func NewLock() *Lock { return &Lock{} }

// Acquire blocks until exclusive ownership is obtained.
func (l *Lock) Acquire() { l.mu.Lock() }

// TryAcquire attempts to take ownership without blocking and reports
// whether it succeeded.
func (l *Lock) TryAcquire() bool { return l.mu.TryLock() }

// Release hands ownership back. The caller must currently hold the
// lock.
func (l *Lock) Release() { l.mu.Unlock() }

// Condition is a condition variable bound at construction to exactly
// one Lock. The Condition does not own the Lock — the caller must
// keep the Lock alive at least as long as the Condition.
//
// Monitor discipline: the bound Lock must be held when Wait is
// called; violating that is undefined behavior.
type Condition struct {
	cond *sync.Cond
	lock *Lock // non-owning back-reference
}

// NewCondition binds a new Condition to lock.
// Panics with ErrNilLock when lock is nil.
func NewCondition(lock *Lock) *Condition {
	if lock == nil {
		panic(ErrNilLock)
	}

	return &Condition{cond: sync.NewCond(&lock.mu), lock: lock}
}

// Wait atomically releases the bound lock and blocks until signaled.
// With reacquire true the lock is re-acquired before returning; with
// false the call returns without the lock held.
//
// Spurious wakeups are possible; callers re-check their predicate in
// a loop.
func (c *Condition) Wait(reacquire bool) {
	c.cond.Wait() // releases, blocks, re-acquires

	if !reacquire {
		c.lock.Release()
	}
}

// Signal wakes one waiter, if any.
func (c *Condition) Signal() { c.cond.Signal() }

// Broadcast wakes all waiters.
func (c *Condition) Broadcast() { c.cond.Broadcast() }
