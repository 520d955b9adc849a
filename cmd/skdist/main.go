// Command skdist inserts pseudo-random keys into a skip list and prints the
// observed tower-height distribution next to the geometric expectation,
// along with per-level occupancy. It exists to sanity-check the height
// oracle and to visualize how the structure thins out per level.
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"math/rand"
	"os"

	"github.com/olekukonko/tablewriter"

	"github.com/ordset/skiplist"
)

func main() {
	n := flag.Int("n", 100000, "number of keys to insert")
	seed := flag.Int64("seed", 42, "seed for both key order and node heights")
	heightCap := flag.Int("cap", skiplist.DefaultHeightCap, "height cap")
	flag.Parse()

	list, err := skiplist.New(
		skiplist.Ordered[int](),
		skiplist.WithHeightCap(*heightCap),
		skiplist.WithSeed(*seed),
	)
	if err != nil {
		log.Fatalf("skdist: %v", err)
	}

	keys := rand.New(rand.NewSource(*seed)).Perm(*n)
	for _, k := range keys {
		list.Insert(k)
	}

	st := list.Stats()
	fmt.Printf("keys: %d\n", st.Len)
	fmt.Printf("height: %d (cap %d)\n", st.Height, *heightCap)

	printHeights(st, *heightCap)
	printLevels(st)
}

func printHeights(st skiplist.Stats, heightCap int) {
	heights := st.HeightCounts()

	rows := make([][]string, 0, len(heights))
	for h := 1; h <= len(heights); h++ {
		count := heights[h-1]
		if count == 0 && h > st.Height {
			continue
		}
		observed := float64(count) / float64(st.Len)
		rows = append(rows, []string{
			fmt.Sprintf("%d", h),
			fmt.Sprintf("%d", count),
			fmt.Sprintf("%.4f", observed),
			fmt.Sprintf("%.4f", expectedHeightProb(h, heightCap)),
		})
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Height", "Nodes", "Observed", "Expected"})
	table.SetAlignment(tablewriter.ALIGN_CENTER)
	table.SetAutoWrapText(false)
	table.AppendBulk(rows)
	table.Render()
}

func printLevels(st skiplist.Stats) {
	rows := make([][]string, 0, st.Height)
	for l := 0; l < st.Height; l++ {
		rows = append(rows, []string{
			fmt.Sprintf("%d", l),
			fmt.Sprintf("%d", st.LevelCounts[l]),
			fmt.Sprintf("%.4f", float64(st.LevelCounts[l])/float64(st.Len)),
		})
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Level", "Nodes", "Share"})
	table.SetAlignment(tablewriter.ALIGN_CENTER)
	table.SetAutoWrapText(false)
	table.AppendBulk(rows)
	table.Render()
}

// expectedHeightProb returns P(height = h) under promotion probability 1/4:
// (3/4)·(1/4)^(h-1) below the cap, with the remaining mass at the cap.
func expectedHeightProb(h, heightCap int) float64 {
	if h >= heightCap {
		return math.Pow(0.25, float64(heightCap-1))
	}
	return 0.75 * math.Pow(0.25, float64(h-1))
}
