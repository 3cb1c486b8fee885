// Package array: Array storage, lifecycle and element-level
// operations. Sorting lives in sort.go, searching in search.go.
//
// Storage model: a backing slice of capacity slots of which the first
// used hold live values. Slots past used are zero-valued, never read,
// and reset on Clear — the Go rendition of placement-style storage
// where dead slots hold no constructed value.
package array

import (
	"cmp"
	"fmt"

	"github.com/katalvlaran/ntl/strbuf"
)

// Array is a resizable or fixed-capacity ascending-comparable
// sequence. The zero value is not ready for use; construct with New,
// Clone or SubArray.
type Array[T cmp.Ordered] struct {
	data       []T  // backing storage; len(data) == capacity
	used       int  // live prefix length; used <= capacity
	sorted     bool // live prefix currently known sorted ascending
	keepSorted bool // every insert must leave the array sorted
	growable   bool // double capacity on overflow instead of panicking
}

// New returns an empty Array with the given capacity.
// Panics with ErrZeroCapacity if capacity < 1.
// Complexity: O(capacity).
func New[T cmp.Ordered](capacity int, opts ...Option) *Array[T] {
	if capacity < 1 {
		panic(fmt.Errorf("%w: New(%d)", ErrZeroCapacity, capacity))
	}

	var c config
	for _, opt := range opts {
		opt(&c)
	}

	return &Array[T]{
		data:       make([]T, capacity),
		used:       0,
		sorted:     true,
		keepSorted: c.keepSorted,
		growable:   c.growable,
	}
}

// Clone returns a copy of a with capacity twice the used size (one
// slot minimum, so an empty clone stays usable).
// Complexity: O(n).
func (a *Array[T]) Clone() *Array[T] {
	capacity := a.used * 2
	if capacity < 1 {
		capacity = 1
	}

	return a.cloneInto(capacity)
}

// CloneWithCapacity returns a copy of a with an explicit capacity,
// which must exceed the used size.
// Complexity: O(n).
func (a *Array[T]) CloneWithCapacity(capacity int) *Array[T] {
	if capacity <= a.used {
		panic(fmt.Errorf("%w: CloneWithCapacity(%d) with %d live elements", ErrCapacityTooSmall, capacity, a.used))
	}

	return a.cloneInto(capacity)
}

func (a *Array[T]) cloneInto(capacity int) *Array[T] {
	c := &Array[T]{
		data:       make([]T, capacity),
		used:       a.used,
		sorted:     a.sorted,
		keepSorted: a.keepSorted,
		growable:   a.growable,
	}
	copy(c.data, a.data[:a.used])

	return c
}

// Insert appends element at the end, doubling capacity first when the
// array is growable and full. In keep-sorted mode the live prefix is
// re-sorted (O(n): the new element is the only displaced one) and the
// returned index is the slot the element actually occupies; otherwise
// the element stays at the previous used position and that index is
// returned.
// Panics with ErrCapacityExceeded on a full, non-growable array.
// Complexity: O(n) worst (growth or re-sort), Ω(1).
func (a *Array[T]) Insert(element T) int {
	if a.growable && a.used >= len(a.data) {
		a.Resize(len(a.data) * 2)
	}
	if a.used >= len(a.data) {
		panic(fmt.Errorf("%w: Insert with capacity %d", ErrCapacityExceeded, len(a.data)))
	}

	a.data[a.used] = element
	a.used++

	if a.keepSorted {
		a.insertionSort()
		return a.binarySearch(element, 0, a.used-1)
	}
	a.sorted = false

	return a.used - 1
}

// InsertAt places element at index, shifting the suffix right by one.
// Valid indices run 0..Len(). Grows first when growable and full.
// Panics with ErrIndexOutOfRange when index > Len(), and with
// ErrCapacityExceeded when full and not growable.
// Complexity: O(n).
func (a *Array[T]) InsertAt(element T, index int) {
	if index < 0 || index > a.used {
		panic(fmt.Errorf("%w: InsertAt(%d) with %d live elements", ErrIndexOutOfRange, index, a.used))
	}
	if a.growable && a.used >= len(a.data) {
		a.Resize(len(a.data) * 2)
	}
	if a.used >= len(a.data) {
		panic(fmt.Errorf("%w: InsertAt with capacity %d", ErrCapacityExceeded, len(a.data)))
	}

	copy(a.data[index+1:a.used+1], a.data[index:a.used])
	a.data[index] = element
	a.used++

	if a.keepSorted {
		a.insertionSort()
		return
	}
	a.sorted = false
}

// Remove deletes the element at index, shifting the suffix left by
// one, and returns the removed value.
// Panics with ErrIndexOutOfRange when index >= Len().
// Complexity: O(n).
func (a *Array[T]) Remove(index int) T {
	if index < 0 || index >= a.used {
		panic(fmt.Errorf("%w: Remove(%d) with %d live elements", ErrIndexOutOfRange, index, a.used))
	}

	removed := a.data[index]
	copy(a.data[index:], a.data[index+1:a.used])
	a.used--

	var zero T
	a.data[a.used] = zero // drop the dead slot's value

	return removed
}

// RemoveElement finds element and removes it, returning the index it
// occupied, or NotFound without mutating when absent.
// Complexity: O(n).
func (a *Array[T]) RemoveElement(element T) int {
	index := a.Find(element)
	if index == NotFound {
		return NotFound
	}
	a.Remove(index)

	return index
}

// Swap exchanges the elements at the two indices. The array is
// treated as unsorted afterwards by contract, even when the exchange
// kept the order intact.
// Panics with ErrIndexOutOfRange on either index >= Len().
// Complexity: O(1).
func (a *Array[T]) Swap(first, second int) {
	if first < 0 || first >= a.used {
		panic(fmt.Errorf("%w: Swap(%d, _) with %d live elements", ErrIndexOutOfRange, first, a.used))
	}
	if second < 0 || second >= a.used {
		panic(fmt.Errorf("%w: Swap(_, %d) with %d live elements", ErrIndexOutOfRange, second, a.used))
	}

	a.data[first], a.data[second] = a.data[second], a.data[first]
	a.sorted = false
}

// Clear drops all elements, reallocating same-capacity storage.
// Complexity: O(capacity).
func (a *Array[T]) Clear() {
	a.data = make([]T, len(a.data))
	a.used = 0
	a.sorted = true
}

// ClearWithCapacity drops all elements and changes the capacity.
// Panics with ErrZeroCapacity if capacity < 1.
// Complexity: O(capacity).
func (a *Array[T]) ClearWithCapacity(capacity int) {
	if capacity < 1 {
		panic(fmt.Errorf("%w: ClearWithCapacity(%d)", ErrZeroCapacity, capacity))
	}

	a.data = make([]T, capacity)
	a.used = 0
	a.sorted = true
}

// Resize grows the array to a strictly larger capacity, copying the
// live prefix. Panics with ErrCapacityTooSmall when the target does
// not grow the buffer.
// Complexity: O(n).
func (a *Array[T]) Resize(capacity int) {
	if capacity <= len(a.data) {
		panic(fmt.Errorf("%w: Resize(%d) with capacity %d", ErrCapacityTooSmall, capacity, len(a.data)))
	}

	next := make([]T, capacity)
	copy(next, a.data[:a.used])
	a.data = next
}

// SubArray returns a new array holding the half-open range [from, to),
// with capacity to-from. The sortedness flag and modes carry over from
// the source. Contract: 0 <= from < to <= Len().
// Panics with ErrBadRange otherwise.
// Complexity: O(to-from).
func (a *Array[T]) SubArray(from, to int) *Array[T] {
	if from < 0 || from >= to || to > a.used {
		panic(fmt.Errorf("%w: SubArray(%d, %d) with %d live elements", ErrBadRange, from, to, a.used))
	}

	sub := &Array[T]{
		data:       make([]T, to-from),
		used:       to - from,
		sorted:     a.sorted,
		keepSorted: a.keepSorted,
		growable:   a.growable,
	}
	copy(sub.data, a.data[from:to])

	return sub
}

// Get returns the element at index.
// Panics with ErrIndexOutOfRange when index >= Len().
// Complexity: O(1).
func (a *Array[T]) Get(index int) T {
	if index < 0 || index >= a.used {
		panic(fmt.Errorf("%w: Get(%d) with %d live elements", ErrIndexOutOfRange, index, a.used))
	}

	return a.data[index]
}

// Set overwrites the element at index. The sortedness flag is cleared
// (or order re-established in keep-sorted mode) since the overwrite
// may break ascending order.
// Panics with ErrIndexOutOfRange when index >= Len().
// Complexity: O(1), O(n) in keep-sorted mode.
func (a *Array[T]) Set(index int, element T) {
	if index < 0 || index >= a.used {
		panic(fmt.Errorf("%w: Set(%d) with %d live elements", ErrIndexOutOfRange, index, a.used))
	}

	a.data[index] = element
	if a.keepSorted {
		a.insertionSort()
		return
	}
	a.sorted = false
}

// First returns the first element.
// Panics with ErrEmptyArray on an empty array.
func (a *Array[T]) First() T {
	if a.used == 0 {
		panic(fmt.Errorf("%w: First", ErrEmptyArray))
	}

	return a.data[0]
}

// Last returns the last element.
// Panics with ErrEmptyArray on an empty array.
func (a *Array[T]) Last() T {
	if a.used == 0 {
		panic(fmt.Errorf("%w: Last", ErrEmptyArray))
	}

	return a.data[a.used-1]
}

// Equal reports element-wise equality over the live prefixes.
// Complexity: O(n), Ω(1) on length mismatch.
func (a *Array[T]) Equal(other *Array[T]) bool {
	if a.used != other.used {
		return false
	}
	for i := 0; i < a.used; i++ {
		if a.data[i] != other.data[i] {
			return false
		}
	}

	return true
}

// Each calls fn for every live element in index order.
func (a *Array[T]) Each(fn func(index int, element T)) {
	for i := 0; i < a.used; i++ {
		fn(i, a.data[i])
	}
}

// Values returns a copy of the live prefix.
// Complexity: O(n).
func (a *Array[T]) Values() []T {
	out := make([]T, a.used)
	copy(out, a.data[:a.used])

	return out
}

// Len returns the number of live elements.
func (a *Array[T]) Len() int { return a.used }

// Cap returns the current capacity.
func (a *Array[T]) Cap() int { return len(a.data) }

// IsEmpty reports whether the array holds no elements.
func (a *Array[T]) IsEmpty() bool { return a.used == 0 }

// Sorted reports whether the live prefix is currently known sorted.
func (a *Array[T]) Sorted() bool { return a.sorted }

// ToString renders the array as "Array(e0, e1, ..., en)\n".
//
// Faithful quirk: the closer is emitted on the last-element branch,
// so an empty array renders as "Array(" with no closing parenthesis.
// Complexity: O(n).
func (a *Array[T]) ToString() *strbuf.String {
	result := strbuf.From("Array(")
	for i := 0; i < a.used; i++ {
		appendOrdered(result, a.data[i])
		if i == a.used-1 {
			result.AppendString(")\n")
		} else {
			result.AppendString(", ")
		}
	}

	return result
}

// String implements fmt.Stringer via ToString.
func (a *Array[T]) String() string { return a.ToString().String() }

// appendOrdered renders a cmp.Ordered value into the buffer.
func appendOrdered[T cmp.Ordered](s *strbuf.String, v T) {
	switch value := any(v).(type) {
	case string:
		s.AppendString(value)
	case int:
		s.AppendInt(value)
	case int8:
		s.AppendInt64(int64(value))
	case int16:
		s.AppendInt64(int64(value))
	case int32:
		s.AppendInt64(int64(value))
	case int64:
		s.AppendInt64(value)
	case uint:
		s.AppendUint64(uint64(value))
	case uint8:
		s.AppendUint64(uint64(value))
	case uint16:
		s.AppendUint64(uint64(value))
	case uint32:
		s.AppendUint64(uint64(value))
	case uint64:
		s.AppendUint64(value)
	case uintptr:
		s.AppendUint64(uint64(value))
	case float32:
		s.AppendFloat32(value)
	case float64:
		s.AppendFloat64(value)
	default:
		s.AppendString(fmt.Sprint(value)) // named types with ordered kinds
	}
}
