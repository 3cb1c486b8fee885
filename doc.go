// Package ntl is a hand-rolled toolbox of foundational containers and
// thin OS synchronization wrappers — the building blocks you reach for
// before reaching for a framework.
//
// 🚀 What is ntl?
//
//	A small, focused library that brings together:
//		• array/   — generic dynamic array with four sort and two search strategies
//		• hashmap/ — open-addressing hash table with pluggable hash algorithms
//		• strbuf/  — growable byte-character buffer with append/replace/case/hash ops
//		• list/    — sentinel-head singly linked list plus Stack and Queue adapters
//		• bitset/  — fixed-size bit set
//		• osync/   — Lock, Condition, SharedLock, Semaphore and Atomic primitives
//
// ✨ Why choose ntl?
//
//   - Explicit over magic — containers manage their own storage, growth
//     and algorithms; nothing hides behind a runtime map or slice trick
//   - Honest contracts — expected absence is a sentinel, misuse is a
//     panic carrying a named error, never silent corruption
//   - Composable concurrency — containers are single-threaded on
//     purpose; wrap them with osync primitives where sharing is needed
//   - Pure Go — no cgo, no hidden deps
//
// Containers are not internally synchronized. Guard shared instances
// with osync.Lock or osync.SharedLock; that split keeps the common
// single-goroutine path free of locking overhead.
//
//	go get github.com/katalvlaran/ntl
package ntl
