// Package array implements a generic dynamic array that owns its
// storage and its algorithms — growth, four sort strategies and two
// search strategies — instead of delegating to runtime helpers.
//
// Core behaviors:
//
//	• Insert appends (or places at an index), doubling capacity when
//	  the array was built growable; a full non-growable array panics
//	• keep-sorted mode re-establishes ascending order after every insert
//	• Find picks binary search on a sorted array and a front-back
//	  two-pointer scan otherwise; both are available explicitly
//	• Sort offers Dynamic (hybrid), Insertion, Quick and Merge variants
//	  that all produce the same ascending order
//	• SubArray, Neighbors/Adjacent, Swap, Equal and a bit-exact
//	  ToString rendering round out the surface
//
// The element type is constrained to cmp.Ordered: ordering capability
// is a compile-time requirement, so sorting and binary search can
// never fail at runtime on an unsupported type.
//
// An Array is not safe for concurrent mutation; wrap shared instances
// with osync primitives.
package array
