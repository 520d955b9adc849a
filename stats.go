package skiplist

// Stats is a point-in-time snapshot of the list's shape, intended for
// analysis and tooling rather than the hot path.
type Stats struct {
	// Len is the number of keys in the set.
	Len int

	// Height is the greatest node height, 1 when the set is empty.
	Height int

	// LevelCounts[l] is the number of nodes whose tower reaches level l.
	// LevelCounts[0] equals Len; each entry is at most the one below it.
	LevelCounts []int
}

// HeightCounts returns how many nodes were assigned each exact height,
// indexed by height-1. Useful for checking the oracle's geometric shape.
func (st Stats) HeightCounts() []int {
	counts := make([]int, len(st.LevelCounts))
	for l, c := range st.LevelCounts {
		counts[l] = c
		if l+1 < len(st.LevelCounts) {
			counts[l] -= st.LevelCounts[l+1]
		}
	}
	return counts
}

// Stats walks the bottom level and tallies tower heights. O(n).
func (s *SkipList[K]) Stats() Stats {
	st := Stats{
		Len:         s.length,
		Height:      s.maxHeight,
		LevelCounts: make([]int, s.heightCap),
	}
	for n := s.head.next(0); n != nil; n = n.next(0) {
		for level := 0; level < n.height(); level++ {
			st.LevelCounts[level]++
		}
	}
	return st
}
