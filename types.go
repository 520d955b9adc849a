package skiplist

import (
	"cmp"
	"errors"
)

// Comparator defines a strict total order over keys. It returns a negative
// value when a sorts before b, zero when the two are equal, and a positive
// value when a sorts after b, following the convention of cmp.Compare and
// bytes.Compare. A comparator that is not a total order (non-transitive or
// inconsistent) breaks the list's ordering invariant.
type Comparator[K any] func(a, b K) int

// Ordered returns a Comparator for any type with a built-in ordering.
func Ordered[K cmp.Ordered]() Comparator[K] {
	return cmp.Compare[K]
}

// DefaultHeightCap is the ceiling on node heights unless overridden with
// WithHeightCap. With branching factor 4 this comfortably covers lists of
// several million keys.
const DefaultHeightCap = 12

// Errors
var (
	// ErrNilComparator is returned by New when no comparator is supplied.
	ErrNilComparator = errors.New("skiplist: comparator must not be nil")

	// ErrHeightCap is returned by New when the configured height cap is
	// not a positive number.
	ErrHeightCap = errors.New("skiplist: height cap must be at least 1")

	// ErrInvalidIterator is the panic value raised when Key, Next or Prev
	// is called on an iterator that is not positioned on an element. Guard
	// those calls with Valid.
	ErrInvalidIterator = errors.New("skiplist: iterator is not positioned on an element")

	// ErrNoPrevStep is the panic value raised when Prev is called without a
	// remembered position. Prev is a single-step undo: it requires that the
	// immediately preceding movement was a Next or a seek that passed over
	// at least one element.
	ErrNoPrevStep = errors.New("skiplist: no remembered previous position")
)

// config holds construction-time settings for a SkipList.
type config struct {
	// heightCap is the fixed ceiling on node heights.
	heightCap int

	// source supplies the uniform random integers consumed by the height
	// oracle. Nil selects the built-in xorshift source.
	source Source

	// seed seeds the built-in source when no explicit source is given.
	seed int64

	seeded bool
}

func newConfig() config {
	return config{heightCap: DefaultHeightCap}
}

// Option customizes a SkipList at construction time.
type Option func(*config)

// WithHeightCap sets the fixed ceiling on node heights.
func WithHeightCap(levels int) Option {
	return func(c *config) { c.heightCap = levels }
}

// WithRandomSource injects the uniform random source consumed by the
// height oracle. Each list must own its source exclusively.
func WithRandomSource(src Source) Option {
	return func(c *config) { c.source = src }
}

// WithSeed seeds the built-in random source, making node heights
// reproducible across runs. Ignored when WithRandomSource is also given.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.seed = seed
		c.seeded = true
	}
}
