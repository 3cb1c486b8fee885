// Package hashmap: Map storage, lifecycle, probing and iteration.
//
// Probe invariant: for any live entry, walking forward from
// keyToIndex(key) one slot at a time (wrapping) reaches the entry
// before hitting an empty slot. Insert preserves it by construction;
// Remove restores it with backward-shift deletion.
package hashmap

import (
	"fmt"

	"github.com/katalvlaran/ntl/strbuf"
)

// entry is a single slot: either empty or holding a live pair.
type entry[K Key, V any] struct {
	key   K
	value V
	used  bool
}

// Pair is one key/value association, as surfaced by Find and Pairs.
type Pair[K Key, V any] struct {
	Key   K
	Value V
}

// Map is an open-addressing hash table with linear probing. The zero
// value is not ready for use; construct with New or Clone.
type Map[K Key, V any] struct {
	entries    []entry[K, V]
	used       int
	algorithm  HashAlgorithm
	growFactor float64
	growable   bool
}

// New returns an empty Map with the given slot capacity. Defaults:
// FNV-1a hashing, grow factor 0.7, growable.
// Panics with ErrZeroCapacity if capacity < 1 and with
// ErrBadGrowFactor on a WithGrowFactor outside (0, 1).
// Complexity: O(capacity).
func New[K Key, V any](capacity int, opts ...Option) *Map[K, V] {
	if capacity < 1 {
		panic(fmt.Errorf("%w: New(%d)", ErrZeroCapacity, capacity))
	}

	c := config{algorithm: FNV1a, growFactor: DefaultGrowFactor, growable: true}
	for _, opt := range opts {
		opt(&c)
	}
	if c.growFactor <= 0 || c.growFactor >= 1 {
		panic(fmt.Errorf("%w: %v", ErrBadGrowFactor, c.growFactor))
	}

	return &Map[K, V]{
		entries:    make([]entry[K, V], capacity),
		algorithm:  c.algorithm,
		growFactor: c.growFactor,
		growable:   c.growable,
	}
}

// Clone returns a copy of m with the same capacity and configuration.
// Complexity: O(capacity).
func (m *Map[K, V]) Clone() *Map[K, V] {
	return m.cloneInto(len(m.entries))
}

// CloneWithCapacity returns a copy of m rehashed into a table of the
// given capacity, which must exceed the live entry count.
// Complexity: O(capacity + n).
func (m *Map[K, V]) CloneWithCapacity(capacity int) *Map[K, V] {
	if capacity <= m.used {
		panic(fmt.Errorf("%w: CloneWithCapacity(%d) with %d live entries", ErrCapacityTooSmall, capacity, m.used))
	}

	return m.cloneInto(capacity)
}

func (m *Map[K, V]) cloneInto(capacity int) *Map[K, V] {
	c := &Map[K, V]{
		entries:    make([]entry[K, V], capacity),
		algorithm:  m.algorithm,
		growFactor: m.growFactor,
		growable:   m.growable,
	}
	for i := range m.entries {
		if m.entries[i].used {
			c.Insert(m.entries[i].key, m.entries[i].value)
		}
	}

	return c
}

// findSlot retraces the probe sequence of key, returning its slot
// index or -1 when the chain ends at an empty slot.
func (m *Map[K, V]) findSlot(key K) int {
	index := m.keyToIndex(key)
	for m.entries[index].used {
		if m.entries[index].key == key {
			return index
		}
		index = (index + 1) % len(m.entries)
	}

	return -1
}

// Insert associates key with value. An existing key is overwritten in
// place without growing the table. A growable table doubles its
// capacity first once used >= capacity*growFactor; a static table
// panics with ErrMapFull when a new key would leave no empty slot.
// Complexity: O(1) expected, O(capacity) when resizing.
func (m *Map[K, V]) Insert(key K, value V) {
	if m.growable && float64(m.used) >= float64(len(m.entries))*m.growFactor {
		m.Resize(len(m.entries) * 2)
	}

	index := m.keyToIndex(key)
	for m.entries[index].used {
		if m.entries[index].key == key {
			m.entries[index].value = value // overwrite, no duplicate growth
			return
		}
		index = (index + 1) % len(m.entries)
	}

	// New key: keep at least one empty slot so probing terminates.
	if m.used+1 >= len(m.entries) {
		panic(fmt.Errorf("%w: Insert with capacity %d", ErrMapFull, len(m.entries)))
	}

	m.entries[index] = entry[K, V]{key: key, value: value, used: true}
	m.used++
}

// At returns a pointer to the value stored under key, inserting a
// zero value first when the key is absent — the indexing-operator
// behavior. The pointer is invalidated by the next Insert, Remove or
// Resize.
// Complexity: O(1) expected.
func (m *Map[K, V]) At(key K) *V {
	slot := m.findSlot(key)
	if slot < 0 {
		var zero V
		m.Insert(key, zero)
		slot = m.findSlot(key)
	}

	return &m.entries[slot].value
}

// Get returns the value stored under key.
// Panics with ErrKeyNotFound when the key is absent; use Find or
// Exists for non-fatal lookups.
// Complexity: O(1) expected.
func (m *Map[K, V]) Get(key K) V {
	slot := m.findSlot(key)
	if slot < 0 {
		panic(fmt.Errorf("%w: Get(%v)", ErrKeyNotFound, key))
	}

	return m.entries[slot].value
}

// Find returns the pair stored under key and whether it exists.
// Complexity: O(1) expected.
func (m *Map[K, V]) Find(key K) (Pair[K, V], bool) {
	slot := m.findSlot(key)
	if slot < 0 {
		return Pair[K, V]{}, false
	}

	return Pair[K, V]{Key: m.entries[slot].key, Value: m.entries[slot].value}, true
}

// Exists reports whether key is present.
// Complexity: O(1) expected.
func (m *Map[K, V]) Exists(key K) bool {
	return m.findSlot(key) >= 0
}

// Remove deletes the entry stored under key using backward-shift
// deletion: entries displaced past the vacated slot slide back so the
// probe invariant holds without tombstones.
// Panics with ErrKeyNotFound when the key is absent.
// Complexity: O(1) expected, O(cluster length) worst.
func (m *Map[K, V]) Remove(key K) {
	slot := m.findSlot(key)
	if slot < 0 {
		panic(fmt.Errorf("%w: Remove(%v)", ErrKeyNotFound, key))
	}

	capacity := len(m.entries)
	m.entries[slot] = entry[K, V]{}
	m.used--

	// Slide later cluster members back when the gap cuts their chain.
	gap := slot
	probe := slot
	for {
		probe = (probe + 1) % capacity
		if !m.entries[probe].used {
			break
		}
		home := m.keyToIndex(m.entries[probe].key)
		// The entry must move iff its home slot does not sit in the
		// cyclic interval (gap, probe].
		if cyclicBetween(gap, home, probe) {
			continue
		}
		m.entries[gap] = m.entries[probe]
		m.entries[probe] = entry[K, V]{}
		gap = probe
	}
}

// cyclicBetween reports whether home lies in the cyclic interval
// (gap, probe], i.e. the entry at probe still reaches its home slot
// without crossing the gap.
func cyclicBetween(gap, home, probe int) bool {
	if gap < probe {
		return home > gap && home <= probe
	}

	return home > gap || home <= probe
}

// Resize rehashes every live entry into a table of the given
// capacity, which must grow the table and hold the live entries.
// Panics with ErrCapacityTooSmall otherwise.
// Complexity: O(old capacity + new capacity).
func (m *Map[K, V]) Resize(capacity int) {
	if capacity < m.used {
		panic(fmt.Errorf("%w: Resize(%d) with %d live entries", ErrCapacityTooSmall, capacity, m.used))
	}
	if capacity <= len(m.entries) {
		panic(fmt.Errorf("%w: Resize(%d) with capacity %d", ErrCapacityTooSmall, capacity, len(m.entries)))
	}

	old := m.entries
	m.entries = make([]entry[K, V], capacity)

	for i := range old {
		if !old[i].used {
			continue
		}
		index := m.keyToIndex(old[i].key)
		for m.entries[index].used {
			index = (index + 1) % capacity
		}
		m.entries[index] = old[i]
	}
}

// Each calls fn for every live pair in physical slot order.
func (m *Map[K, V]) Each(fn func(key K, value V)) {
	for i := range m.entries {
		if m.entries[i].used {
			fn(m.entries[i].key, m.entries[i].value)
		}
	}
}

// Pairs returns the live pairs in physical slot order.
// Complexity: O(capacity).
func (m *Map[K, V]) Pairs() []Pair[K, V] {
	out := make([]Pair[K, V], 0, m.used)
	for i := range m.entries {
		if m.entries[i].used {
			out = append(out, Pair[K, V]{Key: m.entries[i].key, Value: m.entries[i].value})
		}
	}

	return out
}

// Keys returns the live keys in physical slot order.
func (m *Map[K, V]) Keys() []K {
	out := make([]K, 0, m.used)
	for i := range m.entries {
		if m.entries[i].used {
			out = append(out, m.entries[i].key)
		}
	}

	return out
}

// Len returns the number of live entries.
func (m *Map[K, V]) Len() int { return m.used }

// Cap returns the slot capacity.
func (m *Map[K, V]) Cap() int { return len(m.entries) }

// IsEmpty reports whether the table holds no entries.
func (m *Map[K, V]) IsEmpty() bool { return m.used == 0 }

// ToString renders the table as "Map(k0 : v0, k1 : v1, ...)" in
// physical slot order, with no trailing newline.
// Complexity: O(capacity).
func (m *Map[K, V]) ToString() *strbuf.String {
	result := strbuf.From("Map(")

	appended := 0
	for i := range m.entries {
		if !m.entries[i].used {
			continue
		}
		appendValue(result, m.entries[i].key)
		result.AppendString(" : ")
		appendValue(result, m.entries[i].value)
		appended++
		if appended < m.used {
			result.AppendString(", ")
		}
	}
	result.AppendString(")")

	return result
}

// String implements fmt.Stringer via ToString.
func (m *Map[K, V]) String() string { return m.ToString().String() }

// appendValue renders an arbitrary value into the buffer, taking the
// strbuf fast path for the common scalar kinds.
func appendValue(s *strbuf.String, v any) {
	switch value := v.(type) {
	case string:
		s.AppendString(value)
	case *strbuf.String:
		s.Append(value)
	case int:
		s.AppendInt(value)
	case int64:
		s.AppendInt64(value)
	case uint64:
		s.AppendUint64(value)
	case float32:
		s.AppendFloat32(value)
	case float64:
		s.AppendFloat64(value)
	case bool:
		s.AppendBool(value)
	case fmt.Stringer:
		s.AppendString(value.String())
	default:
		s.AppendString(fmt.Sprintf("%v", value))
	}
}
