// Package osync provides thin wrappers over the platform's native
// synchronization primitives — Lock, Condition, SharedLock, Semaphore
// and Atomic — as explicit building blocks for coordinating
// preemptible OS threads.
//
// The primitives are deliberately minimal:
//
//	• Lock is exclusive mutual exclusion with a non-blocking TryAcquire
//	• Condition binds to exactly one Lock and follows the classic
//	  monitor pattern; Wait can optionally return without reacquiring
//	• SharedLock is a writer-priority reader-writer lock: a waiting
//	  writer excludes new readers, bounding writer wait time
//	• Semaphore is a counting semaphore with blocking Wait and Post
//	• Atomic is a typed atomic cell with an explicit memory-order
//	  parameter on every operation
//
// Blocking calls (Acquire, Wait, StartRead, StartWrite) have no
// timeout and no cancellation; a blocked thread is released only by
// the complementary signal, release or post from another thread.
// None of the primitives track ownership: releasing a lock the caller
// does not hold is undefined behavior, documented rather than
// enforced.
//
// The containers in this module are single-threaded on purpose;
// compose them with these primitives where sharing is needed.
package osync
