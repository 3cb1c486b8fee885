package osync_test

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/ntl/osync"
)

// ExampleLock guards a shared counter across goroutines.
func ExampleLock() {
	var (
		lock    osync.Lock
		counter int
		wg      sync.WaitGroup
	)

	wg.Add(4)
	for i := 0; i < 4; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < 250; j++ {
				lock.Acquire()
				counter++
				lock.Release()
			}
		}()
	}
	wg.Wait()

	fmt.Println(counter)
	// Output:
	// 1000
}

// ExampleSemaphore hands a fixed pool of permits to competing workers.
func ExampleSemaphore() {
	sem := osync.NewSemaphore(2)

	fmt.Println(sem.TryWait()) // first permit
	fmt.Println(sem.TryWait()) // second permit
	fmt.Println(sem.TryWait()) // pool exhausted

	sem.Post()
	fmt.Println(sem.Value())
	// Output:
	// true
	// true
	// false
	// 1
}

// ExampleSharedLock lets readers overlap while a writer holds the
// lock alone.
func ExampleSharedLock() {
	l := osync.NewSharedLock()
	state := "initial"

	l.StartWrite()
	state = "updated"
	l.EndWrite()

	var wg sync.WaitGroup
	wg.Add(2)
	for i := 0; i < 2; i++ {
		go func() {
			defer wg.Done()
			l.StartRead()
			_ = state // both readers may be here at once
			l.EndRead()
		}()
	}
	wg.Wait()

	fmt.Println(state)
	// Output:
	// updated
}

// ExampleAtomic shows lock-free counting and compare-exchange.
func ExampleAtomic() {
	counter := osync.NewAtomic(int64(10))

	fmt.Println(counter.FetchAdd(5, osync.SequentiallyConsistent))
	fmt.Println(counter.Load(osync.SequentiallyConsistent))

	expected := int64(15)
	fmt.Println(counter.CompareExchangeStrong(&expected, 99, osync.SequentiallyConsistent))
	fmt.Println(counter.Load(osync.SequentiallyConsistent))
	// Output:
	// 10
	// 15
	// true
	// 99
}
