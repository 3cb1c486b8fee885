// Package hashmap: the three byte-content hash algorithms and the
// key-to-slot projection.
package hashmap

import (
	"fmt"
	"reflect"
)

const (
	fnvOffset = 14695981039346656037
	fnvPrime  = 1099511628211

	djb2Seed = 5381
)

// hashFNV1a is the Fowler–Noll–Vo 1a hash over the key bytes.
func hashFNV1a(key string) uint64 {
	var hash uint64 = fnvOffset
	for i := 0; i < len(key); i++ {
		hash = (hash ^ uint64(key[i])) * fnvPrime
	}

	return hash
}

// hashDJB2 is Bernstein's hash: hash*33 + c.
func hashDJB2(key string) uint64 {
	var hash uint64 = djb2Seed
	for i := 0; i < len(key); i++ {
		hash = ((hash << 5) + hash) + uint64(key[i])
	}

	return hash
}

// hashSDBM is the sdbm hash, folded to a positive odd value.
func hashSDBM(key string) uint64 {
	var hash uint64
	for i := 0; i < len(key); i++ {
		hash = uint64(key[i]) + (hash << 6) + (hash << 16) - hash
	}

	return (hash & 0x7FFFFFFFFFFFFFFF) | 1
}

// calculateHash dispatches on the configured algorithm.
// Panics with ErrUnknownAlgorithm on a selector outside the enum.
func calculateHash(algorithm HashAlgorithm, key string) uint64 {
	switch algorithm {
	case FNV1a:
		return hashFNV1a(key)
	case DJB2:
		return hashDJB2(key)
	case SDBM:
		return hashSDBM(key)
	default:
		panic(fmt.Errorf("%w: %d", ErrUnknownAlgorithm, algorithm))
	}
}

// keyToIndex projects a key onto its home slot. String-like keys run
// through the configured hash; integral keys hash by identity. The
// fast path covers the predeclared types; named types defined on a
// Key kind fall through to reflection.
func (m *Map[K, V]) keyToIndex(key K) int {
	capacity := uint64(len(m.entries))

	switch k := any(key).(type) {
	case string:
		return int(calculateHash(m.algorithm, k) % capacity)
	case int:
		return int(uint64(k) % capacity)
	case int8:
		return int(uint64(k) % capacity)
	case int16:
		return int(uint64(k) % capacity)
	case int32:
		return int(uint64(k) % capacity)
	case int64:
		return int(uint64(k) % capacity)
	case uint:
		return int(uint64(k) % capacity)
	case uint8:
		return int(uint64(k) % capacity)
	case uint16:
		return int(uint64(k) % capacity)
	case uint32:
		return int(uint64(k) % capacity)
	case uint64:
		return int(k % capacity)
	case uintptr:
		return int(uint64(k) % capacity)
	}

	v := reflect.ValueOf(key)
	switch v.Kind() {
	case reflect.String:
		return int(calculateHash(m.algorithm, v.String()) % capacity)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return int(uint64(v.Int()) % capacity)
	default: // remaining Key kinds are unsigned integers
		return int(v.Uint() % capacity)
	}
}
