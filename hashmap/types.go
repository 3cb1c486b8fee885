// Package hashmap: key constraint, hash algorithm selectors, sentinel
// errors and construction options.
package hashmap

import "errors"

// Key is the set of types the table can hash: string-like keys go
// through the selected byte-content hash, integral keys hash by
// identity modulo capacity. The constraint rejects any other key type
// before instantiation.
type Key interface {
	~string |
		~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// HashAlgorithm selects the byte-content hash for string-like keys.
type HashAlgorithm int

const (
	// FNV1a is the default Fowler–Noll–Vo 1a hash.
	FNV1a HashAlgorithm = iota

	// DJB2 is Bernstein's multiplicative hash (hash*33 + c).
	DJB2

	// SDBM is the sdbm database hash (c + hash<<6 + hash<<16 - hash),
	// folded to a positive odd value.
	SDBM
)

// DefaultGrowFactor is the load-factor threshold that triggers
// auto-resize on a growable table.
const DefaultGrowFactor = 0.7

// Sentinel errors carried by contract-violation panics.
var (
	// ErrZeroCapacity indicates a requested capacity below one slot.
	ErrZeroCapacity = errors.New("hashmap: capacity must be positive")
	// ErrKeyNotFound indicates Get or Remove of an absent key.
	ErrKeyNotFound = errors.New("hashmap: key not found")
	// ErrMapFull indicates a new-key insert that would leave a static
	// table without an empty slot, breaking probe termination.
	ErrMapFull = errors.New("hashmap: static table full")
	// ErrCapacityTooSmall indicates a Resize target that does not grow the
	// table or cannot hold the live entries.
	ErrCapacityTooSmall = errors.New("hashmap: capacity too small")
	// ErrBadGrowFactor indicates a grow factor outside (0, 1).
	ErrBadGrowFactor = errors.New("hashmap: grow factor must be in (0, 1)")
	// ErrUnknownAlgorithm indicates a hash selector outside the enum.
	ErrUnknownAlgorithm = errors.New("hashmap: unknown hash algorithm")
)

// Option configures a Map before first use.
type Option func(*config)

type config struct {
	algorithm  HashAlgorithm
	growFactor float64
	growable   bool
}

// WithAlgorithm selects the string-key hash algorithm.
func WithAlgorithm(algorithm HashAlgorithm) Option {
	return func(c *config) { c.algorithm = algorithm }
}

// WithGrowFactor sets the load-factor threshold for auto-resize.
// Panics with ErrBadGrowFactor outside (0, 1).
func WithGrowFactor(factor float64) Option {
	return func(c *config) { c.growFactor = factor }
}

// WithStatic disables auto-resize; the table keeps its initial
// capacity and panics with ErrMapFull when it runs out of free slots.
func WithStatic() Option {
	return func(c *config) { c.growable = false }
}
