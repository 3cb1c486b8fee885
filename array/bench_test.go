package array_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/ntl/array"
)

// benchmarkSort runs the given strategy over n shuffled ints per
// iteration, excluding setup from the timing.
func benchmarkSort(b *testing.B, n int, alg array.SortAlgorithm) {
	rng := rand.New(rand.NewSource(1))
	input := make([]int, n)
	for i := range input {
		input[i] = rng.Int()
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		a := array.New[int](n)
		for _, v := range input {
			a.Insert(v)
		}
		b.StartTimer()

		a.Sort(alg)
	}
}

func BenchmarkSort_Insertion1k(b *testing.B) { benchmarkSort(b, 1_000, array.InsertionSort) }
func BenchmarkSort_Quick10k(b *testing.B)   { benchmarkSort(b, 10_000, array.QuickSort) }
func BenchmarkSort_Merge10k(b *testing.B)   { benchmarkSort(b, 10_000, array.MergeSort) }
func BenchmarkSort_Dynamic10k(b *testing.B) { benchmarkSort(b, 10_000, array.Dynamic) }

// BenchmarkFind_SortedVsUnsorted contrasts binary search against the
// front-back scan on the same content.
func BenchmarkFind_Sorted100k(b *testing.B) {
	a := array.New[int](100_000, array.WithGrowable())
	for i := 0; i < 100_000; i++ {
		a.Insert(i)
	}
	a.Sort(array.Dynamic)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = a.Find(i % 100_000)
	}
}

func BenchmarkFind_Unsorted100k(b *testing.B) {
	a := array.New[int](100_000, array.WithGrowable())
	for i := 100_000; i > 0; i-- {
		a.Insert(i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = a.Find(i % 100_000)
	}
}
