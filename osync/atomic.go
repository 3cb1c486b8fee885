// Package osync: typed atomic cell with explicit memory orders.
package osync

import "sync/atomic"

// Integer bounds the element types an Atomic may carry: every fixed
// and platform-sized integer kind, signed or unsigned.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// MemoryOrder names the ordering constraint a caller requests for an
// atomic operation. The Go memory model provides a single
// sequentially-consistent ordering for all atomic operations, so every
// MemoryOrder behaves as SequentiallyConsistent here; the enum exists
// so call sites can document their intent and stay source-compatible
// with relaxed-ordering ports.
type MemoryOrder int

const (
	Relaxed MemoryOrder = iota
	Consume
	Acquire
	Release
	AcquireRelease
	SequentiallyConsistent
)

// Atomic wraps a single integer value with lock-free atomic access.
// The zero Atomic holds the zero value and is ready to use.
//
// Values wider than 64 bits are not supported; values narrower than
// 64 bits are widened for storage and truncated on load, preserving
// two's-complement wraparound semantics.
type Atomic[T Integer] struct {
	v atomic.Int64
}

// NewAtomic returns an Atomic initialized to value.
func NewAtomic[T Integer](value T) *Atomic[T] {
	a := &Atomic[T]{}
	a.v.Store(int64(value))

	return a
}

// Load returns the current value.
func (a *Atomic[T]) Load(_ MemoryOrder) T {
	return T(a.v.Load())
}

// Store replaces the current value.
func (a *Atomic[T]) Store(value T, _ MemoryOrder) {
	a.v.Store(int64(value))
}

// Exchange replaces the current value and returns the previous one.
func (a *Atomic[T]) Exchange(value T, _ MemoryOrder) T {
	return T(a.v.Swap(int64(value)))
}

// CompareExchangeStrong replaces the value with desired if it equals
// *expected. On failure *expected is overwritten with the observed
// value and false is returned.
func (a *Atomic[T]) CompareExchangeStrong(expected *T, desired T, _ MemoryOrder) bool {
	if a.v.CompareAndSwap(int64(*expected), int64(desired)) {
		return true
	}
	*expected = T(a.v.Load())

	return false
}

// CompareExchangeWeak behaves as CompareExchangeStrong; Go's
// compare-and-swap never fails spuriously, so weak and strong
// coincide.
func (a *Atomic[T]) CompareExchangeWeak(expected *T, desired T, order MemoryOrder) bool {
	return a.CompareExchangeStrong(expected, desired, order)
}

// FetchAdd adds delta and returns the value held before the addition.
// The addition runs through T so the stored word stays the canonical
// widened form of the truncated value; compare-exchange depends on
// that.
func (a *Atomic[T]) FetchAdd(delta T, _ MemoryOrder) T {
	for {
		old := a.v.Load()
		if a.v.CompareAndSwap(old, int64(T(old)+delta)) {
			return T(old)
		}
	}
}

// FetchSub subtracts delta and returns the value held before the
// subtraction. Canonicalizes the stored word like FetchAdd.
func (a *Atomic[T]) FetchSub(delta T, _ MemoryOrder) T {
	for {
		old := a.v.Load()
		if a.v.CompareAndSwap(old, int64(T(old)-delta)) {
			return T(old)
		}
	}
}

// Increment adds one and returns the new value.
func (a *Atomic[T]) Increment() T {
	return a.FetchAdd(1, SequentiallyConsistent) + 1
}

// Decrement subtracts one and returns the new value.
func (a *Atomic[T]) Decrement() T {
	return a.FetchSub(1, SequentiallyConsistent) - 1
}
