package skiplist

import "time"

// Source supplies uniform random integers to the height oracle. Uniform
// returns a value in [0, n). Implementations need not be safe for concurrent
// use; each list owns its source exclusively and advances it only during
// Insert.
type Source interface {
	Uniform(n int) int
}

const defaultSeed = uint64(0xdeadbeefcafebabe)

func newRandomSeed() uint64 {
	seed := uint64(time.Now().UnixNano())
	if seed == 0 {
		seed = defaultSeed
	}
	return seed
}

// xorshiftSource is the built-in Source: a xorshift64* generator whose state
// belongs to a single list.
type xorshiftSource struct {
	state uint64
}

// NewSource returns a deterministic Source seeded with the given value.
// A zero seed is replaced with a fixed non-zero constant, since xorshift
// state must never be zero.
func NewSource(seed int64) Source {
	s := uint64(seed)
	if s == 0 {
		s = defaultSeed
	}
	return &xorshiftSource{state: s}
}

func newDefaultSource() Source {
	return &xorshiftSource{state: newRandomSeed()}
}

func (r *xorshiftSource) next() uint64 {
	x := r.state
	x ^= x >> 12
	x ^= x << 25
	x ^= x >> 27
	if x == 0 {
		x = defaultSeed
	}
	r.state = x
	return x * 2685821657736338717
}

func (r *xorshiftSource) Uniform(n int) int {
	return int(r.next() % uint64(n))
}

// branching is the inverse promotion probability: each level promotes with
// probability 1/branching, so P(height = k) = (3/4)·(1/4)^(k-1) below the
// cap, with the remaining mass at the cap.
const branching = 4

// randomHeight draws a node height in [1, heightCap]. Heights are clamped
// at the cap by the loop bound, never reported as an error.
func (s *SkipList[K]) randomHeight() int {
	h := 1
	for h < s.heightCap && s.rng.Uniform(branching) == 0 {
		h++
	}
	return h
}
