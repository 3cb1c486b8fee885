// Package hashmap implements an open-addressing hash table with
// linear probing, a pluggable hash algorithm and incremental
// auto-resize.
//
// Collision strategy: an entry whose home slot (hash mod capacity) is
// occupied probes forward one slot at a time, wrapping at the end of
// the table. Lookups retrace the same probe sequence and stop at the
// first empty slot. Removal uses backward-shift deletion, so the
// probe-chain invariant — every live entry is reachable from its home
// slot without crossing an empty slot — survives arbitrary
// insert/remove interleavings without tombstones.
//
// Keys are constrained to string-like or integral types: strings are
// hashed with a selectable algorithm (FNV-1a by default, DJB2 and
// SDBM as alternatives), integers hash by identity modulo capacity.
// Any other key type is rejected at compile time by the Key
// constraint.
//
// A growable table doubles its capacity once the load factor reaches
// the configured grow factor (0.7 by default); a static table panics
// with ErrMapFull when a new key would leave no empty slot.
//
// A Map is not safe for concurrent mutation; wrap shared instances
// with osync primitives.
package hashmap
