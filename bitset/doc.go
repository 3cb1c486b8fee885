// Package bitset implements a fixed-size bit set addressed by index.
//
// The size is fixed at construction and never changes; every bit
// starts cleared. Storage is one byte per bit — the set trades memory
// for branch-free constant-time access and trivial rendering, which
// suits the flag-table workloads it was built for. Pack the bits
// yourself if memory density matters more than simplicity.
//
// Operations:
//
//	• Set, Clear, Toggle, Test — single-bit access in O(1)
//	• Reset, Count, None, Any — whole-set scans in O(n)
//	• And, Equal, Clone       — pairwise combination and comparison
//
// Indexes outside [0, Len()) panic with ErrIndexOutOfRange; combining
// sets of different sizes panics with ErrSizeMismatch. The set is not
// synchronized.
package bitset
