// Package osync_test verifies the mutual-exclusion and condition
// primitives under concurrent load.
package osync_test

import (
	"sync"
	"testing"
	"time"

	"github.com/katalvlaran/ntl/osync"
	"github.com/stretchr/testify/require"
)

// TestLock_MutualExclusion hammers a plain counter from many
// goroutines; the final count is exact only if Acquire/Release
// serialize access.
func TestLock_MutualExclusion(t *testing.T) {
	var (
		lock    osync.Lock
		counter int
		wg      sync.WaitGroup
	)
	const workers, rounds = 16, 1000

	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < rounds; j++ {
				lock.Acquire()
				counter++
				lock.Release()
			}
		}()
	}
	wg.Wait()

	require.Equal(t, workers*rounds, counter)
}

// TestLock_TryAcquire verifies TryAcquire fails while the lock is held
// and succeeds once it is free.
func TestLock_TryAcquire(t *testing.T) {
	var lock osync.Lock

	lock.Acquire()
	require.False(t, lock.TryAcquire(), "held lock must not be re-acquirable")
	lock.Release()

	require.True(t, lock.TryAcquire(), "free lock must be acquirable")
	lock.Release()
}

// TestCondition_NilLock ensures the constructor rejects a nil lock.
func TestCondition_NilLock(t *testing.T) {
	require.PanicsWithError(t, "osync: condition requires a lock", func() {
		osync.NewCondition(nil)
	})
}

// TestCondition_SignalWakesOne parks a waiter on a predicate and
// verifies Signal releases it with the lock re-acquired.
func TestCondition_SignalWakesOne(t *testing.T) {
	var (
		lock  osync.Lock
		ready bool
	)
	cond := osync.NewCondition(&lock)

	done := make(chan struct{})
	go func() {
		lock.Acquire()
		for !ready {
			cond.Wait(true)
		}
		lock.Release()
		close(done)
	}()

	// Give the waiter time to park before signaling.
	time.Sleep(10 * time.Millisecond)

	lock.Acquire()
	ready = true
	cond.Signal()
	lock.Release()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("waiter was not woken by Signal")
	}
}

// TestCondition_WaitWithoutReacquire checks that Wait(false) leaves
// the lock free for the caller that signaled.
func TestCondition_WaitWithoutReacquire(t *testing.T) {
	var (
		lock  osync.Lock
		ready bool
	)
	cond := osync.NewCondition(&lock)

	done := make(chan struct{})
	go func() {
		lock.Acquire()
		for !ready {
			cond.Wait(false)
			// Lock is released on return; re-acquire to re-check.
			lock.Acquire()
		}
		lock.Release()
		close(done)
	}()

	time.Sleep(10 * time.Millisecond)

	lock.Acquire()
	ready = true
	cond.Broadcast()
	lock.Release()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("waiter was not woken by Broadcast")
	}

	// The lock must be free after the dance above.
	require.True(t, lock.TryAcquire())
	lock.Release()
}

// TestCondition_BroadcastWakesAll parks several waiters and releases
// them all with a single Broadcast.
func TestCondition_BroadcastWakesAll(t *testing.T) {
	var (
		lock  osync.Lock
		ready bool
		wg    sync.WaitGroup
	)
	cond := osync.NewCondition(&lock)
	const waiters = 8

	wg.Add(waiters)
	for i := 0; i < waiters; i++ {
		go func() {
			defer wg.Done()
			lock.Acquire()
			for !ready {
				cond.Wait(true)
			}
			lock.Release()
		}()
	}

	time.Sleep(10 * time.Millisecond)

	lock.Acquire()
	ready = true
	cond.Broadcast()
	lock.Release()

	done := make(chan struct{})
	go func() { wg.Wait(); close(done) }()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("not all waiters were woken by Broadcast")
	}
}
