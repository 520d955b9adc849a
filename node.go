package skiplist

// node holds a key and its per-level forward pointers. The forward slice is
// sized exactly to the node's height: a node never exposes a level it was not
// created with. The owning list controls every node's lifetime; forward
// pointers are non-owning references.
type node[K any] struct {
	key     K
	forward []*node[K]
}

// next returns the node's immediate successor at the given level.
func (n *node[K]) next(level int) *node[K] {
	return n.forward[level]
}

// height returns the number of levels this node participates in.
func (n *node[K]) height() int {
	return len(n.forward)
}

// newHead builds the sentinel entry node. It carries no key and is always
// allocated at the full height cap; levels above the list's current height
// stay nil.
func newHead[K any](heightCap int) *node[K] {
	return &node[K]{forward: make([]*node[K], heightCap)}
}
