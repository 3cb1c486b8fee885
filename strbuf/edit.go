// Package strbuf: in-place editing — search, replacement, case
// folding and the content hash.
package strbuf

import "fmt"

// Find returns the index of the first occurrence of c, or NotFound.
// Complexity: O(n).
func (s *String) Find(c byte) int {
	for i := 0; i < s.used; i++ {
		if s.data[i] == c {
			return i
		}
	}

	return NotFound
}

// index locates the first occurrence of pattern, or NotFound.
func (s *String) index(pattern []byte) int {
	for i := 0; i+len(pattern) <= s.used; i++ {
		if s.data[i] != pattern[0] {
			continue
		}
		found := true
		for j := 1; j < len(pattern); j++ {
			if s.data[i+j] != pattern[j] {
				found = false
				break
			}
		}
		if found {
			return i
		}
	}

	return NotFound
}

// Replace substitutes the first occurrence of old with new. When the
// lengths match the bytes are overwritten in place; otherwise the
// buffer is spliced and the length adjusts by exactly
// new.Len()-old.Len(). Only the first occurrence is replaced.
// Panics with ErrEmptyPattern if old is empty.
// Complexity: O(n*m), n = s.Len(), m = old.Len().
func (s *String) Replace(old, new *String) *String {
	return s.ReplaceString(old.String(), new.String())
}

// ReplaceString is Replace over Go strings.
func (s *String) ReplaceString(old, new string) *String {
	if len(old) == 0 {
		panic(fmt.Errorf("%w: ReplaceString", ErrEmptyPattern))
	}

	seqIdx := s.index([]byte(old))
	if seqIdx == NotFound {
		return s
	}

	if len(old) == len(new) {
		copy(s.data[seqIdx:], new)
		return s
	}

	total := s.used - len(old) + len(new)
	next := make([]byte, total*2+1)
	copy(next, s.data[:seqIdx])
	copy(next[seqIdx:], new)
	copy(next[seqIdx+len(new):], s.data[seqIdx+len(old):s.used])

	s.data = next
	s.used = total
	s.data[s.used] = 0

	return s
}

// ReplaceChar substitutes every occurrence of old with new.
//
// Historical asymmetry, preserved: when new is the zero byte the call
// instead removes the first occurrence of old, shifting the tail left
// by one. Use RemoveChar to express that intent directly.
// Complexity: O(n).
func (s *String) ReplaceChar(old, new byte) *String {
	if new == 0 {
		i := 0
		for ; i < s.used; i++ {
			if s.data[i] == old {
				break
			}
		}
		if i == s.used {
			return s
		}
		copy(s.data[i:], s.data[i+1:s.used])
		s.used--
		s.data[s.used] = 0

		return s
	}

	for i := 0; i < s.used; i++ {
		if s.data[i] == old {
			s.data[i] = new
		}
	}

	return s
}

// RemoveChar removes the first occurrence of c, if any.
// Complexity: O(n).
func (s *String) RemoveChar(c byte) *String {
	return s.ReplaceChar(c, 0)
}

// ToLowerCase folds ASCII upper-case bytes in place.
// Complexity: O(n).
func (s *String) ToLowerCase() *String {
	for i := 0; i < s.used; i++ {
		if s.data[i] >= 'A' && s.data[i] <= 'Z' {
			s.data[i] += 'a' - 'A'
		}
	}

	return s
}

// ToUpperCase folds ASCII lower-case bytes in place.
// Complexity: O(n).
func (s *String) ToUpperCase() *String {
	for i := 0; i < s.used; i++ {
		if s.data[i] >= 'a' && s.data[i] <= 'z' {
			s.data[i] -= 'a' - 'A'
		}
	}

	return s
}

// hashSeedConstant spreads combined values across the seed.
const hashSeedConstant = 0x9e3779b9

// combine folds v into the running seed.
func combine(seed *uint64, v uint64) {
	*seed ^= v + hashSeedConstant + (*seed << 6) + (*seed >> 2)
}

// Hash returns a seed-combine hash over the content bytes and the
// length. Equal buffers hash equally; the value is stable within a
// process and fit for hashmap keying, not for cryptography.
// Complexity: O(n).
func (s *String) Hash() uint64 {
	var seed uint64
	for i := 0; i < s.used; i++ {
		combine(&seed, uint64(s.data[i]))
	}
	combine(&seed, uint64(s.used))

	return seed
}
