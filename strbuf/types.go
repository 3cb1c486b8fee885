// Package strbuf: constants, sentinel errors and construction options
// for the growable byte-character buffer.
package strbuf

import "errors"

const (
	// DefaultCapacity is the storage reserved by New when no
	// WithCapacity option is given, matching the historical default.
	DefaultCapacity = 1024

	// NotFound is returned by Find when the byte does not occur.
	NotFound = -1
)

// Sentinel errors carried by contract-violation panics.
var (
	// ErrIndexOutOfRange indicates an index at or past the current length.
	ErrIndexOutOfRange = errors.New("strbuf: index out of range")
	// ErrCapacityTooSmall indicates a Resize target that cannot hold the
	// current content plus its terminator, or does not grow the buffer.
	ErrCapacityTooSmall = errors.New("strbuf: capacity too small")
	// ErrEmptyPattern indicates Replace was called with an empty old pattern.
	ErrEmptyPattern = errors.New("strbuf: empty replace pattern")
)

// Option configures a String before first use.
type Option func(*String)

// WithCapacity sets the initial capacity (excluding the terminator
// slot). Values below 1 fall back to DefaultCapacity.
func WithCapacity(n int) Option {
	return func(s *String) {
		if n >= 1 {
			s.data = make([]byte, n+1)
		}
	}
}
