package skiplist

// Removed nodes are recycled on a small free list owned by the list itself,
// so steady insert/remove workloads reuse towers instead of reallocating
// them. The cap keeps a burst of removals from pinning memory.
const freeListLimit = 128

func (s *SkipList[K]) acquireNode(key K, height int) *node[K] {
	n := s.popFree()
	if n == nil {
		return &node[K]{key: key, forward: make([]*node[K], height)}
	}

	if cap(n.forward) < height {
		n.forward = make([]*node[K], height)
	} else {
		n.forward = n.forward[:height]
		for i := range n.forward {
			n.forward[i] = nil
		}
	}
	n.key = key
	return n
}

// releaseNode clears the removed node and parks it on the free list. The
// key is zeroed so the list does not keep caller values alive, and every
// forward pointer is dropped so the node cannot reach back into the
// structure.
func (s *SkipList[K]) releaseNode(n *node[K]) {
	var zero K
	n.key = zero
	for i := range n.forward {
		n.forward[i] = nil
	}

	if s.freeSize >= freeListLimit || len(n.forward) == 0 {
		return
	}
	n.forward[0] = s.free
	s.free = n
	s.freeSize++
}

func (s *SkipList[K]) popFree() *node[K] {
	n := s.free
	if n == nil {
		return nil
	}
	s.free = n.forward[0]
	n.forward[0] = nil
	s.freeSize--
	return n
}
