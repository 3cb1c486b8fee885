// Package strbuf: String storage, constructors and the Append family.
//
// The buffer keeps one invariant across every operation: data[used]
// holds the zero terminator, and used bytes of content precede it.
// All growth paths run through ensure/Resize so the invariant cannot
// be bypassed.
package strbuf

import (
	"fmt"
	"strconv"
)

// String is a growable, manually managed byte-character buffer.
//
// The zero value is not ready for use; construct with New, NewChar,
// From or Clone.
type String struct {
	data []byte // content plus terminator; cap slot data[used] == 0
	used int    // content length, excluding the terminator
}

// New returns an empty String with DefaultCapacity (or the capacity
// given via WithCapacity).
// Complexity: O(capacity) for the initial allocation.
func New(opts ...Option) *String {
	s := &String{data: make([]byte, DefaultCapacity+1)}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// NewChar returns a String holding the single byte c.
// Complexity: O(DefaultCapacity).
func NewChar(c byte) *String {
	s := New()
	s.data[0] = c
	s.used = 1

	return s
}

// From returns a String holding a copy of src, with capacity twice
// the source length.
// Complexity: O(n), n = len(src).
func From(src string) *String {
	s := &String{data: make([]byte, len(src)*2+1), used: len(src)}
	copy(s.data, src)

	return s
}

// Clone returns a deep copy of s with capacity twice the used length.
// Complexity: O(n).
func (s *String) Clone() *String {
	c := &String{data: make([]byte, s.used*2+1), used: s.used}
	copy(c.data, s.data[:s.used])

	return c
}

// capacity is the usable content size, excluding the terminator slot.
func (s *String) capacity() int { return len(s.data) - 1 }

// ensure grows the buffer so that total content bytes fit. Growth
// doubles the required total length, mirroring the append contract.
func (s *String) ensure(total int) {
	if total >= s.capacity() {
		s.Resize(total * 2)
	}
}

// Resize grows the buffer to the given capacity (excluding the
// terminator slot). Panics with ErrCapacityTooSmall if the target
// cannot hold the current content or does not grow the buffer.
// Complexity: O(n).
func (s *String) Resize(capacity int) {
	if capacity < s.used+1 {
		panic(fmt.Errorf("%w: Resize(%d) below content length %d", ErrCapacityTooSmall, capacity, s.used))
	}
	if capacity <= s.capacity() {
		panic(fmt.Errorf("%w: Resize(%d) does not grow capacity %d", ErrCapacityTooSmall, capacity, s.capacity()))
	}

	next := make([]byte, capacity+1)
	copy(next, s.data[:s.used])
	s.data = next
}

// Append appends another String.
// Complexity: O(m), m = other.Len().
func (s *String) Append(other *String) *String {
	return s.AppendBytes(other.data[:other.used])
}

// AppendString appends the bytes of a Go string.
// Complexity: O(m).
func (s *String) AppendString(str string) *String {
	total := s.used + len(str)
	s.ensure(total)
	copy(s.data[s.used:], str)
	s.used = total
	s.data[s.used] = 0

	return s
}

// AppendBytes appends a raw byte sequence.
// Complexity: O(m).
func (s *String) AppendBytes(b []byte) *String {
	total := s.used + len(b)
	s.ensure(total)
	copy(s.data[s.used:], b)
	s.used = total
	s.data[s.used] = 0

	return s
}

// AppendByte appends a single byte.
// Complexity: O(1) amortized.
func (s *String) AppendByte(c byte) *String {
	total := s.used + 1
	s.ensure(total)
	s.data[s.used] = c
	s.used = total
	s.data[s.used] = 0

	return s
}

// AppendInt appends the decimal rendering of an int.
func (s *String) AppendInt(v int) *String {
	return s.AppendString(strconv.Itoa(v))
}

// AppendInt64 appends the decimal rendering of an int64.
func (s *String) AppendInt64(v int64) *String {
	return s.AppendString(strconv.FormatInt(v, 10))
}

// AppendUint64 appends the decimal rendering of a uint64.
func (s *String) AppendUint64(v uint64) *String {
	return s.AppendString(strconv.FormatUint(v, 10))
}

// AppendFloat64 appends the shortest decimal rendering of a float64.
func (s *String) AppendFloat64(v float64) *String {
	return s.AppendString(strconv.FormatFloat(v, 'g', -1, 64))
}

// AppendFloat32 appends the shortest decimal rendering of a float32.
func (s *String) AppendFloat32(v float32) *String {
	return s.AppendString(strconv.FormatFloat(float64(v), 'g', -1, 32))
}

// AppendBool appends "true" or "false".
func (s *String) AppendBool(v bool) *String {
	if v {
		return s.AppendString("true")
	}

	return s.AppendString("false")
}

// Clear drops the content, keeping the current capacity.
// Complexity: O(1).
func (s *String) Clear() *String {
	s.used = 0
	s.data[0] = 0

	return s
}

// Get returns the byte at index i.
// Panics with ErrIndexOutOfRange if i is at or past the length.
// Complexity: O(1).
func (s *String) Get(i int) byte {
	if i < 0 || i >= s.used {
		panic(fmt.Errorf("%w: Get(%d) with length %d", ErrIndexOutOfRange, i, s.used))
	}

	return s.data[i]
}

// Set overwrites the byte at index i.
// Panics with ErrIndexOutOfRange if i is at or past the length.
// Complexity: O(1).
func (s *String) Set(i int, c byte) {
	if i < 0 || i >= s.used {
		panic(fmt.Errorf("%w: Set(%d) with length %d", ErrIndexOutOfRange, i, s.used))
	}
	s.data[i] = c
}

// Equal reports byte-wise equality up to the stored length.
// Complexity: O(n), Ω(1) on length mismatch.
func (s *String) Equal(other *String) bool {
	if s.used != other.used {
		return false
	}
	for i := 0; i < s.used; i++ {
		if s.data[i] != other.data[i] {
			return false
		}
	}

	return true
}

// EqualString reports byte-wise equality against a Go string.
func (s *String) EqualString(other string) bool {
	if s.used != len(other) {
		return false
	}
	for i := 0; i < s.used; i++ {
		if s.data[i] != other[i] {
			return false
		}
	}

	return true
}

// Compare orders two buffers byte-wise: -1, 0 or +1.
// Complexity: O(min(n, m)).
func (s *String) Compare(other *String) int {
	n := s.used
	if other.used < n {
		n = other.used
	}
	for i := 0; i < n; i++ {
		switch {
		case s.data[i] < other.data[i]:
			return -1
		case s.data[i] > other.data[i]:
			return 1
		}
	}
	switch {
	case s.used < other.used:
		return -1
	case s.used > other.used:
		return 1
	}

	return 0
}

// Bytes returns the content as a view into the buffer, excluding the
// terminator. The view is invalidated by any mutating call.
// Complexity: O(1).
func (s *String) Bytes() []byte { return s.data[:s.used] }

// String returns the content as an immutable Go string.
// Complexity: O(n).
func (s *String) String() string { return string(s.data[:s.used]) }

// Len returns the content length, excluding the terminator.
func (s *String) Len() int { return s.used }

// Cap returns the usable capacity, excluding the terminator slot.
func (s *String) Cap() int { return s.capacity() }

// IsEmpty reports whether the buffer holds no content.
func (s *String) IsEmpty() bool { return s.used == 0 }
