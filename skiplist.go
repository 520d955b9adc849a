// Package skiplist provides an ordered set of unique keys backed by a
// probabilistic skip list, with O(log n) expected-time search, insertion,
// deletion and range seeking. Values are not stored: callers that need an
// ordered map embed the value in the key type and compare on the key part.
//
// A SkipList is not safe for concurrent use. It owns every node it links;
// iterators hold non-owning references and become stale if the list is
// mutated underneath them.
package skiplist

// SkipList is an ordered set of unique keys. The zero value is not usable;
// construct lists with New.
type SkipList[K any] struct {
	compare Comparator[K]

	// head is the sentinel entry node, allocated at the full height cap.
	head *node[K]

	// maxHeight is the greatest height among non-head nodes, 1 when the
	// list is empty. It grows on Insert and shrinks on Remove.
	maxHeight int

	heightCap int
	length    int

	// rng feeds the height oracle and advances only during Insert.
	rng Source

	// free recycles removed nodes, linked through forward[0].
	free     *node[K]
	freeSize int

	// update is the per-level predecessor vector reused across
	// operations, in the manner of a search finger cache.
	update []*node[K]
}

// New returns an empty SkipList ordered by the given comparator.
func New[K any](compare Comparator[K], opts ...Option) (*SkipList[K], error) {
	cfg := newConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	if compare == nil {
		return nil, ErrNilComparator
	}
	if cfg.heightCap < 1 {
		return nil, ErrHeightCap
	}

	rng := cfg.source
	if rng == nil {
		if cfg.seeded {
			rng = NewSource(cfg.seed)
		} else {
			rng = newDefaultSource()
		}
	}

	return &SkipList[K]{
		compare:   compare,
		head:      newHead[K](cfg.heightCap),
		maxHeight: 1,
		heightCap: cfg.heightCap,
		rng:       rng,
		update:    make([]*node[K], cfg.heightCap),
	}, nil
}

// findGreaterOrEqual is the shared descent behind Contains, Insert, Remove
// and Seek. Starting at the head and the topmost occupied level, it moves
// right while the next key sorts before the target, then drops a level.
// It returns the first node with key >= target, or nil if no such node
// exists. When update is non-nil, update[level] receives the predecessor at
// every level in [0, heightCap); levels at or above maxHeight record the
// head.
func (s *SkipList[K]) findGreaterOrEqual(target K, update []*node[K]) *node[K] {
	if update != nil {
		for level := s.maxHeight; level < s.heightCap; level++ {
			update[level] = s.head
		}
	}

	x := s.head
	for level := s.maxHeight - 1; level >= 0; level-- {
		for next := x.next(level); next != nil && s.compare(next.key, target) < 0; next = x.next(level) {
			x = next
		}
		if update != nil {
			update[level] = x
		}
	}
	return x.next(0)
}

// findLast returns the last non-head node, or nil if the list is empty.
func (s *SkipList[K]) findLast() *node[K] {
	x := s.head
	for level := s.maxHeight - 1; level >= 0; level-- {
		for x.next(level) != nil {
			x = x.next(level)
		}
	}
	if x == s.head {
		return nil
	}
	return x
}

// Contains reports whether a key comparing equal to key is in the set.
func (s *SkipList[K]) Contains(key K) bool {
	n := s.findGreaterOrEqual(key, nil)
	return n != nil && s.compare(n.key, key) == 0
}

// Insert adds key to the set. It reports whether the key was inserted:
// false means an equal key was already present and the structure was left
// untouched.
func (s *SkipList[K]) Insert(key K) bool {
	next := s.findGreaterOrEqual(key, s.update)
	if next != nil && s.compare(next.key, key) == 0 {
		return false
	}

	height := s.randomHeight()
	if height > s.maxHeight {
		// No non-head node reaches these levels yet, so the head is the
		// predecessor there; findGreaterOrEqual already recorded it.
		s.maxHeight = height
	}

	// Allocate fully before touching any link so a later operation can
	// never observe a half-spliced node.
	n := s.acquireNode(key, height)
	for level := 0; level < height; level++ {
		pred := s.update[level]
		n.forward[level] = pred.forward[level]
		pred.forward[level] = n
	}

	s.length++
	return true
}

// Remove deletes the key comparing equal to key. It reports whether such a
// key was found; when it returns true no path from the head reaches the
// removed node anymore.
func (s *SkipList[K]) Remove(key K) bool {
	target := s.findGreaterOrEqual(key, s.update)
	if target == nil || s.compare(target.key, key) != 0 {
		return false
	}

	for level := 0; level < target.height(); level++ {
		s.update[level].forward[level] = target.forward[level]
	}
	for s.maxHeight > 1 && s.head.next(s.maxHeight-1) == nil {
		s.maxHeight--
	}

	s.releaseNode(target)
	s.length--
	return true
}

// Len returns the number of keys in the set.
func (s *SkipList[K]) Len() int {
	return s.length
}

// Height returns the greatest height among the set's nodes, 1 when empty.
func (s *SkipList[K]) Height() int {
	return s.maxHeight
}

// First returns the smallest key. The second result is false when the list
// is empty.
func (s *SkipList[K]) First() (K, bool) {
	n := s.head.next(0)
	if n == nil {
		var zero K
		return zero, false
	}
	return n.key, true
}

// Last returns the largest key. The second result is false when the list
// is empty.
func (s *SkipList[K]) Last() (K, bool) {
	n := s.findLast()
	if n == nil {
		var zero K
		return zero, false
	}
	return n.key, true
}

// Clear removes all keys, resetting the list to its initial state. The
// random source is kept, so heights remain reproducible for seeded lists.
func (s *SkipList[K]) Clear() {
	for i := range s.head.forward {
		s.head.forward[i] = nil
	}
	s.maxHeight = 1
	s.length = 0
	s.free = nil
	s.freeSize = 0
}
