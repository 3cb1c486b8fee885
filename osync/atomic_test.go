package osync_test

import (
	"sync"
	"testing"

	"github.com/katalvlaran/ntl/osync"
	"github.com/stretchr/testify/require"
)

// TestAtomic_LoadStore covers the plain read/write path plus the
// zero-value readiness guarantee.
func TestAtomic_LoadStore(t *testing.T) {
	var zero osync.Atomic[int]
	require.Equal(t, 0, zero.Load(osync.SequentiallyConsistent))

	a := osync.NewAtomic(int32(42))
	require.Equal(t, int32(42), a.Load(osync.Relaxed))

	a.Store(-7, osync.Release)
	require.Equal(t, int32(-7), a.Load(osync.Acquire))
}

// TestAtomic_Exchange swaps values and checks the previous value is
// returned.
func TestAtomic_Exchange(t *testing.T) {
	a := osync.NewAtomic(uint64(10))

	require.Equal(t, uint64(10), a.Exchange(20, osync.SequentiallyConsistent))
	require.Equal(t, uint64(20), a.Load(osync.SequentiallyConsistent))
}

// TestAtomic_CompareExchange exercises both the success path and the
// failure path, where *expected is updated with the observed value.
func TestAtomic_CompareExchange(t *testing.T) {
	a := osync.NewAtomic(5)

	expected := 5
	require.True(t, a.CompareExchangeStrong(&expected, 6, osync.SequentiallyConsistent))
	require.Equal(t, 6, a.Load(osync.SequentiallyConsistent))

	expected = 99 // stale
	require.False(t, a.CompareExchangeStrong(&expected, 7, osync.SequentiallyConsistent))
	require.Equal(t, 6, expected, "failed exchange must report the observed value")
	require.Equal(t, 6, a.Load(osync.SequentiallyConsistent))

	require.True(t, a.CompareExchangeWeak(&expected, 7, osync.AcquireRelease))
	require.Equal(t, 7, a.Load(osync.SequentiallyConsistent))
}

// TestAtomic_FetchAddSub verifies the returned value is the one held
// before the operation.
func TestAtomic_FetchAddSub(t *testing.T) {
	a := osync.NewAtomic(int64(100))

	require.Equal(t, int64(100), a.FetchAdd(5, osync.SequentiallyConsistent))
	require.Equal(t, int64(105), a.Load(osync.SequentiallyConsistent))

	require.Equal(t, int64(105), a.FetchSub(30, osync.SequentiallyConsistent))
	require.Equal(t, int64(75), a.Load(osync.SequentiallyConsistent))
}

// TestAtomic_IncrementDecrement verifies both return the new value.
func TestAtomic_IncrementDecrement(t *testing.T) {
	var a osync.Atomic[uint32]

	require.Equal(t, uint32(1), a.Increment())
	require.Equal(t, uint32(2), a.Increment())
	require.Equal(t, uint32(1), a.Decrement())
	require.Equal(t, uint32(0), a.Decrement())
}

// TestAtomic_NarrowWraparound checks two's-complement wraparound for
// a type narrower than the 64-bit backing word.
func TestAtomic_NarrowWraparound(t *testing.T) {
	a := osync.NewAtomic(uint8(250))

	require.Equal(t, uint8(250), a.FetchAdd(10, osync.SequentiallyConsistent))
	require.Equal(t, uint8(4), a.Load(osync.SequentiallyConsistent))
}

// TestAtomic_CompareExchangeAfterWraparound verifies a CAS whose
// expected value was just observed via Load succeeds even after the
// add family wrapped a narrow type past its width.
func TestAtomic_CompareExchangeAfterWraparound(t *testing.T) {
	a := osync.NewAtomic(uint8(250))
	a.FetchAdd(10, osync.SequentiallyConsistent) // wraps to 4

	expected := a.Load(osync.SequentiallyConsistent)
	require.Equal(t, uint8(4), expected)
	require.True(t, a.CompareExchangeStrong(&expected, 5, osync.SequentiallyConsistent))
	require.Equal(t, uint8(5), a.Load(osync.SequentiallyConsistent))

	// Same shape for a signed type crossing its maximum.
	b := osync.NewAtomic(int8(126))
	b.FetchAdd(4, osync.SequentiallyConsistent) // wraps to -126

	got := b.Load(osync.SequentiallyConsistent)
	require.Equal(t, int8(-126), got)
	require.True(t, b.CompareExchangeStrong(&got, 0, osync.SequentiallyConsistent))
}

// TestAtomic_RetryLoopAfterWraparound drives the canonical
// load-modify-CAS retry loop across a wrapped value; it must converge
// on the first observation.
func TestAtomic_RetryLoopAfterWraparound(t *testing.T) {
	a := osync.NewAtomic(uint8(255))
	a.FetchAdd(1, osync.SequentiallyConsistent) // wraps to 0

	expected := a.Load(osync.SequentiallyConsistent)
	for !a.CompareExchangeStrong(&expected, expected+7, osync.SequentiallyConsistent) {
	}
	require.Equal(t, uint8(7), a.Load(osync.SequentiallyConsistent))
}

// TestAtomic_ConcurrentCounters increments from many goroutines and
// expects an exact total.
func TestAtomic_ConcurrentCounters(t *testing.T) {
	var (
		a  osync.Atomic[int64]
		wg sync.WaitGroup
	)
	const workers, rounds = 16, 1000

	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < rounds; j++ {
				a.FetchAdd(1, osync.Relaxed)
			}
		}()
	}
	wg.Wait()

	require.Equal(t, int64(workers*rounds), a.Load(osync.SequentiallyConsistent))
}
