// Package array: algorithm selectors, sentinel errors and
// construction options for the dynamic array.
package array

import "errors"

// SortAlgorithm selects the strategy used by Sort.
type SortAlgorithm int

const (
	// Dynamic picks MergeSort above dynamicSortThreshold elements and
	// InsertionSort below it — low overhead on small inputs, guaranteed
	// O(n log n) on larger ones.
	Dynamic SortAlgorithm = iota

	// InsertionSort is a stable ascending insertion sort: O(n²), Ω(n).
	InsertionSort

	// QuickSort uses Lomuto partitioning with the last element as
	// pivot: O(n²) worst, Ω(n log n) average; not stable.
	QuickSort

	// MergeSort splits at the midpoint and merges with ≤ comparisons:
	// O(n log n) always, stable, allocates temporaries per half.
	MergeSort
)

// SearchAlgorithm selects the strategy used by FindIn.
type SearchAlgorithm int

const (
	// BinarySearch requires the array to be sorted: O(log n).
	BinarySearch SearchAlgorithm = iota

	// FrontBackSearch scans from both ends toward the middle: O(n),
	// terminating early for values near either end.
	FrontBackSearch
)

const (
	// NotFound is the sentinel index for absent elements.
	NotFound = -1

	// dynamicSortThreshold is the size above which Dynamic switches
	// from insertion sort to merge sort.
	dynamicSortThreshold = 64
)

// Sentinel errors carried by contract-violation panics.
var (
	// ErrZeroCapacity indicates a requested capacity below one element.
	ErrZeroCapacity = errors.New("array: capacity must be positive")
	// ErrIndexOutOfRange indicates an index outside the live prefix.
	ErrIndexOutOfRange = errors.New("array: index out of range")
	// ErrCapacityExceeded indicates an insert into a full, non-growable array.
	ErrCapacityExceeded = errors.New("array: capacity exceeded")
	// ErrCapacityTooSmall indicates a Resize/Clone target that cannot hold
	// the live prefix or does not grow the buffer.
	ErrCapacityTooSmall = errors.New("array: capacity too small")
	// ErrEmptyArray indicates First/Last on an array with no elements.
	ErrEmptyArray = errors.New("array: empty array")
	// ErrUnsorted indicates BinarySearch requested on an unsorted array.
	ErrUnsorted = errors.New("array: binary search requires a sorted array")
	// ErrBadRange indicates a [from, to) range outside the live prefix.
	ErrBadRange = errors.New("array: bad range")
	// ErrUnknownAlgorithm indicates an algorithm selector outside the enum.
	ErrUnknownAlgorithm = errors.New("array: unknown algorithm")
)

// Option configures an Array before first use.
type Option func(*config)

type config struct {
	keepSorted bool
	growable   bool
}

// WithKeepSorted keeps the array sorted ascending across every insert.
func WithKeepSorted() Option {
	return func(c *config) { c.keepSorted = true }
}

// WithGrowable doubles capacity on overflow instead of panicking.
func WithGrowable() Option {
	return func(c *config) { c.growable = true }
}
