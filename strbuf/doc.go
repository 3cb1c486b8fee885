// Package strbuf implements a growable byte-character buffer — a
// mutable string that owns its storage and keeps an explicit
// terminator invariant, in the spirit of a hand-rolled C string class.
//
// What you get:
//
//	• Append for strings, buffers, single bytes, integers, floats and booleans
//	• Replace of the first matching substring (in place when lengths match)
//	• ReplaceChar with the historical removal asymmetry (nul new char removes)
//	• ASCII case folding, byte-wise search, equality and ordering
//	• A seed-combine content hash used by hashmap for key hashing
//
// Storage model: the buffer always reserves one slot past Len() for a
// zero terminator, so Bytes() of a buffer with length n is backed by
// at least n+1 bytes and buf[n] == 0 after every operation. Capacity
// grows by doubling the required total length, never shrinks.
//
// A String is not safe for concurrent mutation; wrap shared instances
// with osync primitives.
package strbuf
