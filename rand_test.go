package skiplist

import (
	"math"
	"testing"
)

func TestRandomHeightDistribution(t *testing.T) {
	set, err := New(Ordered[int](), WithRandomSource(NewSource(0x123456789abcdef)))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	const numSamples = 1000000
	counts := make(map[int]int)
	for i := 0; i < numSamples; i++ {
		h := set.randomHeight()
		if h < 1 || h > set.heightCap {
			t.Fatalf("height %d outside [1, %d]", h, set.heightCap)
		}
		counts[h]++
	}

	// Height 1 should account for roughly 3/4 of all draws.
	share := float64(counts[1]) / float64(numSamples)
	if math.Abs(share-0.75) > 0.01 {
		t.Errorf("expected height 1 share around 0.75, got %.4f", share)
	}

	// Check that the distribution is roughly geometric: with promotion
	// probability 1/4 the population at level h+1 should be about a
	// quarter of the population at level h.
	const p = 1.0 / float64(branching)
	for h := 1; h < DefaultHeightCap-1; h++ {
		count1 := counts[h]
		if count1 < 1000 {
			// Too few samples this high up for a meaningful ratio.
			continue
		}
		count2 := counts[h+1]
		ratio := float64(count2) / float64(count1)

		// The promotions from height h follow Binomial(count1, p), so
		// the ratio has mean p and variance p(1-p)/count1. Five standard
		// deviations keeps the check tight where samples are dense
		// without spurious failures where they thin out.
		stdDev := math.Sqrt(p * (1 - p) / float64(count1))
		tolerance := 5 * stdDev
		if math.Abs(ratio-p) > tolerance {
			t.Errorf("expected ratio between heights %d and %d to be around %.2f ± %.4f, got %.4f",
				h, h+1, p, tolerance, ratio)
		}
	}
}

func TestRandomHeightClampsAtCap(t *testing.T) {
	// A source that always promotes must stop at the cap.
	src := &stubSource{draws: make([]int, 4096)}
	set, err := New(Ordered[int](), WithHeightCap(6), WithRandomSource(src))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	for i := 0; i < 100; i++ {
		if h := set.randomHeight(); h != 6 {
			t.Fatalf("expected clamped height 6, got %d", h)
		}
	}
}

func TestUniformStaysInBounds(t *testing.T) {
	src := NewSource(99)
	for i := 0; i < 100000; i++ {
		v := src.Uniform(branching)
		if v < 0 || v >= branching {
			t.Fatalf("Uniform(%d) returned %d", branching, v)
		}
	}
}

func TestZeroSeedGetsReplaced(t *testing.T) {
	src := NewSource(0)
	// A zero xorshift state would emit zeros forever; the replaced seed
	// must still produce a spread of values.
	seen := make(map[int]bool)
	for i := 0; i < 1000; i++ {
		seen[src.Uniform(branching)] = true
	}
	if len(seen) != branching {
		t.Fatalf("expected all %d residues from the seeded source, got %d", branching, len(seen))
	}
}
