// File: array/example_test.go
package array_test

import (
	"fmt"

	"github.com/katalvlaran/ntl/array"
)

// ExampleArray_Insert demonstrates growable append with capacity
// doubling.
func ExampleArray_Insert() {
	a := array.New[int](2, array.WithGrowable())
	for _, v := range []int{8, 16, 32} {
		a.Insert(v)
	}
	fmt.Println(a.Len(), a.Cap())
	fmt.Print(a.String())
	// Output:
	// 3 4
	// Array(8, 16, 32)
}

// ExampleArray_Sort shows that every strategy yields the same
// ascending order.
func ExampleArray_Sort() {
	a := array.New[float64](8)
	for _, v := range []float64{4, 2, 8, 6, -1, 0, -4, 6} {
		a.Insert(v)
	}
	a.Sort(array.MergeSort)
	fmt.Println(a.Values())
	// Output: [-4 -1 0 2 4 6 6 8]
}

// ExampleArray_Find picks binary search once the array is sorted.
func ExampleArray_Find() {
	a := array.New[int](8, array.WithKeepSorted())
	for _, v := range []int{40, 10, 30, 20} {
		a.Insert(v)
	}
	fmt.Println(a.Find(30), a.Find(99))
	// Output: 2 -1
}
