// Package array: the two search strategies behind Find, plus the
// neighbor lookups built on them.
package array

import "fmt"

// Find returns the index of element, or NotFound. A sorted array is
// searched with binary search; an unsorted one with the front-back
// two-pointer scan.
// Complexity: O(log n) sorted, O(n) unsorted.
func (a *Array[T]) Find(element T) int {
	if a.used == 0 {
		return NotFound
	}
	if a.sorted {
		return a.binarySearch(element, 0, a.used-1)
	}

	return a.frontBackSearch(element, 0, a.used-1)
}

// FindIn searches the inclusive index window [from, to] with an
// explicit algorithm. BinarySearch additionally requires the array to
// be sorted and panics with ErrUnsorted otherwise. An inverted window
// (from > to) yields NotFound.
// Panics with ErrBadRange when an index lies outside the live prefix,
// and with ErrUnknownAlgorithm on a selector outside the enum.
func (a *Array[T]) FindIn(element T, from, to int, algorithm SearchAlgorithm) int {
	if a.used == 0 {
		return NotFound
	}
	if from < 0 || to >= a.used {
		panic(fmt.Errorf("%w: FindIn(%d, %d) with %d live elements", ErrBadRange, from, to, a.used))
	}

	switch algorithm {
	case BinarySearch:
		if !a.sorted {
			panic(fmt.Errorf("%w: FindIn", ErrUnsorted))
		}
		return a.binarySearch(element, from, to)
	case FrontBackSearch:
		return a.frontBackSearch(element, from, to)
	default:
		panic(fmt.Errorf("%w: FindIn(%d)", ErrUnknownAlgorithm, algorithm))
	}
}

// binarySearch recurses with pivot = (from+to)/2, directing left on <
// and right on >, returning the pivot on a match.
func (a *Array[T]) binarySearch(element T, from, to int) int {
	if from > to {
		return NotFound
	}
	if from == to {
		if a.data[from] == element {
			return from
		}
		return NotFound
	}

	pivot := (from + to) / 2
	switch {
	case element < a.data[pivot]:
		return a.binarySearch(element, from, pivot-1)
	case element > a.data[pivot]:
		return a.binarySearch(element, pivot+1, to)
	default:
		return pivot
	}
}

// frontBackSearch reads from both ends toward the middle, shrinking
// the window each round; worst case it still visits every element but
// terminates early for values found near either end.
func (a *Array[T]) frontBackSearch(element T, from, to int) int {
	for from <= to {
		if a.data[from] == element {
			return from
		}
		if a.data[to] == element {
			return to
		}
		from++
		to--
	}

	return NotFound
}

// Neighbors locates element via Find and returns pointers into the
// backing storage: left is the element immediately preceding the
// found index, right is the found element itself. Both are nil when
// element is absent.
//
// The right-is-self behavior is historical and kept for callers that
// depend on it; see Adjacent for the intuitive variant. The pointers
// are invalidated by any mutating call.
// Complexity: that of Find.
func (a *Array[T]) Neighbors(element T) (left, right *T) {
	idx := a.Find(element)
	if idx == NotFound {
		return nil, nil
	}

	if idx > 0 {
		left = &a.data[idx-1]
	}
	right = &a.data[idx]

	return left, right
}

// Adjacent locates element via Find and returns pointers to the
// elements strictly before and after it, nil at either boundary, and
// nil, nil when element is absent. The pointers are invalidated by
// any mutating call.
// Complexity: that of Find.
func (a *Array[T]) Adjacent(element T) (left, right *T) {
	idx := a.Find(element)
	if idx == NotFound {
		return nil, nil
	}

	if idx > 0 {
		left = &a.data[idx-1]
	}
	if idx+1 < a.used {
		right = &a.data[idx+1]
	}

	return left, right
}
