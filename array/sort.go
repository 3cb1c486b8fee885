// Package array: the four sort strategies behind Sort.
package array

import (
	"cmp"
	"fmt"
)

// Sort orders the live prefix ascending using the selected algorithm.
// All strategies produce the same final order; only stability and cost
// profiles differ (see the SortAlgorithm constants).
// Panics with ErrUnknownAlgorithm on a selector outside the enum.
func (a *Array[T]) Sort(algorithm SortAlgorithm) {
	switch algorithm {
	case Dynamic:
		a.dynamicSort()
	case InsertionSort:
		a.insertionSort()
	case QuickSort:
		a.quickSort(0, a.used-1)
		a.sorted = true
	case MergeSort:
		a.mergeSort()
	default:
		panic(fmt.Errorf("%w: Sort(%d)", ErrUnknownAlgorithm, algorithm))
	}
}

// dynamicSort is the hybrid policy: insertion sort below the
// threshold, merge sort above it.
func (a *Array[T]) dynamicSort() {
	if a.used > dynamicSortThreshold {
		a.mergeSort()
		return
	}
	a.insertionSort()
}

// insertionSort is a stable ascending insertion sort.
// Complexity: O(n²), Ω(n) on nearly sorted input.
func (a *Array[T]) insertionSort() {
	for i := 1; i < a.used; i++ {
		element := a.data[i]
		j := i - 1
		for j >= 0 && a.data[j] > element {
			a.data[j+1] = a.data[j]
			j--
		}
		a.data[j+1] = element
	}

	a.sorted = true
}

// quickSort recurses on the smaller partition and loops on the larger
// one, bounding stack depth to O(log n) even on adversarial inputs.
func (a *Array[T]) quickSort(from, to int) {
	for from < to {
		pivot := a.partition(from, to)
		if pivot-from < to-pivot {
			a.quickSort(from, pivot-1)
			from = pivot + 1
		} else {
			a.quickSort(pivot+1, to)
			to = pivot - 1
		}
	}
}

// partition applies the Lomuto scheme with the last element as pivot,
// returning the pivot's final index.
// Complexity: O(n).
func (a *Array[T]) partition(from, to int) int {
	pivot := a.data[to]
	i := from - 1

	for j := from; j < to; j++ {
		if a.data[j] <= pivot {
			i++
			a.data[i], a.data[j] = a.data[j], a.data[i]
		}
	}
	a.data[i+1], a.data[to] = a.data[to], a.data[i+1]

	return i + 1
}

// mergeSort replaces the backing storage with a freshly merged copy.
// Complexity: O(n log n) time, O(n log n) allocated across the
// recursion (each half gets its own temporary buffer).
func (a *Array[T]) mergeSort() {
	if a.used > 1 {
		merged := mergeSortRun(a.data[:a.used])
		copy(a.data, merged)
	}
	a.sorted = true
}

// mergeSortRun sorts run into a newly allocated slice, splitting at
// the midpoint and merging with ≤ comparisons to keep stability.
func mergeSortRun[T cmp.Ordered](run []T) []T {
	if len(run) <= 1 {
		out := make([]T, len(run))
		copy(out, run)

		return out
	}

	half := len(run) / 2
	left := mergeSortRun(run[:half])
	right := mergeSortRun(run[half:])

	out := make([]T, len(run))
	j, k := 0, 0
	for i := range out {
		if j < len(left) && (k == len(right) || left[j] <= right[k]) {
			out[i] = left[j]
			j++
		} else {
			out[i] = right[k]
			k++
		}
	}

	return out
}
