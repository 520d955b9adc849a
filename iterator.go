package skiplist

// Iterator is a read-only cursor over the list's bottom level. It is bound
// to one list at construction and starts out invalid; position it with Seek,
// SeekToFirst or SeekToLast before reading.
//
// An iterator holds non-owning references into the list. Mutating the list
// while an iterator is positioned leaves the iterator stale; reposition it
// before further use.
type Iterator[K any] struct {
	list *SkipList[K]
	node *node[K]

	// prev remembers the position before the last forward movement, giving
	// Prev its single-step-back semantics. Nil when no step-back target
	// exists.
	prev *node[K]
}

// Iterator returns a new cursor over the list. The returned iterator is
// not valid until positioned.
func (s *SkipList[K]) Iterator() *Iterator[K] {
	return &Iterator[K]{list: s}
}

// Valid reports whether the iterator is positioned on an element.
func (it *Iterator[K]) Valid() bool {
	return it.node != nil
}

// Key returns the key at the current position. It panics with
// ErrInvalidIterator when the iterator is not valid.
func (it *Iterator[K]) Key() K {
	it.mustBeValid()
	return it.node.key
}

// Next advances to the successor, remembering the current position as the
// step-back target for Prev. After passing the last element the iterator
// becomes invalid. It panics with ErrInvalidIterator when the iterator is
// not valid.
func (it *Iterator[K]) Next() {
	it.mustBeValid()
	it.prev = it.node
	it.node = it.node.next(0)
}

// Prev moves back exactly one step, to the position remembered by the last
// forward movement. It is a single-step undo, not general backward
// traversal: calling Prev twice without a forward movement in between
// panics with ErrNoPrevStep, as does calling it when the last movement
// recorded no earlier element.
func (it *Iterator[K]) Prev() {
	it.mustBeValid()
	if it.prev == nil {
		panic(ErrNoPrevStep)
	}
	it.node = it.prev
	it.prev = nil
}

// Seek positions the iterator at the first element with key >= target,
// using the same level-descending search as Contains, so it costs O(log n)
// regardless of where the cursor was before. The iterator becomes invalid
// when every key sorts before target.
func (it *Iterator[K]) Seek(target K) {
	n := it.list.findGreaterOrEqual(target, it.list.update)
	it.node = n
	it.prev = nil
	if pred := it.list.update[0]; pred != it.list.head {
		it.prev = pred
	}
}

// SeekToFirst positions the iterator at the smallest key. The iterator is
// valid afterwards iff the list is not empty.
func (it *Iterator[K]) SeekToFirst() {
	it.node = it.list.head.next(0)
	it.prev = nil
}

// SeekToLast positions the iterator at the largest key. The iterator is
// valid afterwards iff the list is not empty.
func (it *Iterator[K]) SeekToLast() {
	it.node = it.list.findLast()
	it.prev = nil
}

func (it *Iterator[K]) mustBeValid() {
	if it.node == nil {
		panic(ErrInvalidIterator)
	}
}
