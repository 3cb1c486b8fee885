// Package bitset: the fixed-size byte-per-bit set.
package bitset

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/ntl/strbuf"
)

// DefaultSize is the number of bits reserved by New when no size is
// given.
const DefaultSize = 1024

// Sentinel errors carried by contract-violation panics.
var (
	// ErrZeroSize indicates a requested size below one bit.
	ErrZeroSize = errors.New("bitset: size must be positive")
	// ErrIndexOutOfRange indicates a bit index outside [0, Len()).
	ErrIndexOutOfRange = errors.New("bitset: index out of range")
	// ErrSizeMismatch indicates And or Equal-like combination of sets
	// with different sizes.
	ErrSizeMismatch = errors.New("bitset: size mismatch")
)

// Option configures a Bitset before first use.
type Option func(*config)

type config struct {
	size int
}

// WithSize fixes the number of bits. New validates the value.
func WithSize(size int) Option {
	return func(c *config) { c.size = size }
}

// Bitset is a fixed-size set of bits, all cleared initially.
// One byte backs each bit.
type Bitset struct {
	bits []byte // 0 or 1 per slot
}

// New returns a Bitset of DefaultSize bits, or of the size given via
// WithSize.
// Panics with ErrZeroSize when the configured size is below one bit.
//
// Complexity: O(n).
func New(opts ...Option) *Bitset {
	cfg := config{size: DefaultSize}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.size < 1 {
		panic(fmt.Errorf("%w: got %d", ErrZeroSize, cfg.size))
	}

	return &Bitset{bits: make([]byte, cfg.size)}
}

// Clone returns an independent copy.
//
// Complexity: O(n).
func (s *Bitset) Clone() *Bitset {
	clone := &Bitset{bits: make([]byte, len(s.bits))}
	copy(clone.bits, s.bits)

	return clone
}

// check panics unless index addresses a live bit.
func (s *Bitset) check(index int) {
	if index < 0 || index >= len(s.bits) {
		panic(fmt.Errorf("%w: index %d, size %d", ErrIndexOutOfRange, index, len(s.bits)))
	}
}

// Set turns the bit at index on.
// Panics with ErrIndexOutOfRange when index is outside [0, Len()).
//
// Complexity: O(1).
func (s *Bitset) Set(index int) {
	s.check(index)
	s.bits[index] = 1
}

// Clear turns the bit at index off.
// Panics with ErrIndexOutOfRange when index is outside [0, Len()).
//
// Complexity: O(1).
func (s *Bitset) Clear(index int) {
	s.check(index)
	s.bits[index] = 0
}

// Toggle flips the bit at index.
// Panics with ErrIndexOutOfRange when index is outside [0, Len()).
//
// Complexity: O(1).
func (s *Bitset) Toggle(index int) {
	s.check(index)
	s.bits[index] ^= 1
}

// Test reports whether the bit at index is set.
// Panics with ErrIndexOutOfRange when index is outside [0, Len()).
//
// Complexity: O(1).
func (s *Bitset) Test(index int) bool {
	s.check(index)

	return s.bits[index] == 1
}

// Reset clears every bit.
//
// Complexity: O(n).
func (s *Bitset) Reset() {
	for i := range s.bits {
		s.bits[i] = 0
	}
}

// Len returns the fixed number of bits.
func (s *Bitset) Len() int { return len(s.bits) }

// Count returns the number of set bits.
//
// Complexity: O(n).
func (s *Bitset) Count() int {
	count := 0
	for _, b := range s.bits {
		count += int(b)
	}

	return count
}

// None reports whether no bit is set.
//
// Complexity: O(n).
func (s *Bitset) None() bool {
	for _, b := range s.bits {
		if b == 1 {
			return false
		}
	}

	return true
}

// Any reports whether at least one bit is set.
//
// Complexity: O(n).
func (s *Bitset) Any() bool { return !s.None() }

// Equal reports whether both sets have the same size and the same
// bits.
//
// Complexity: O(n); Ω(1) when the sizes differ.
func (s *Bitset) Equal(other *Bitset) bool {
	if len(s.bits) != len(other.bits) {
		return false
	}
	for i, b := range s.bits {
		if b != other.bits[i] {
			return false
		}
	}

	return true
}

// And returns a new set holding the bitwise intersection.
// Panics with ErrSizeMismatch when the sizes differ.
//
// Complexity: O(n).
func (s *Bitset) And(other *Bitset) *Bitset {
	if len(s.bits) != len(other.bits) {
		panic(fmt.Errorf("%w: %d vs %d", ErrSizeMismatch, len(s.bits), len(other.bits)))
	}

	result := &Bitset{bits: make([]byte, len(s.bits))}
	for i := range s.bits {
		result.bits[i] = s.bits[i] & other.bits[i]
	}

	return result
}

// ToString renders the set as "Bitset(0110...)\n", one digit per bit
// in index order.
//
// Complexity: O(n).
func (s *Bitset) ToString() *strbuf.String {
	result := strbuf.From("Bitset(")
	for _, bit := range s.bits {
		result.AppendByte('0' + bit)
	}
	result.AppendString(")\n")

	return result
}
