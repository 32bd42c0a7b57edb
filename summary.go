package histview

import (
	"fmt"
	"sort"
	"strings"
)

// Summary is a read-only diagnostic of a sample's value distribution. The
// frequency maps are keyed by distinct raw value and are independent of the
// chart's bin boundaries.
type Summary struct {
	// Relative maps each distinct value to its share of the sample.
	Relative map[float64]float64
	// Absolute maps each distinct value to its occurrence count.
	Absolute map[float64]int
	// NumBins is the recommended bin count for the sample.
	NumBins int
	// BinCounts is the per-bin frequency in bin index order.
	BinCounts []int
}

// Summary computes the chart's diagnostic distribution report from the raw
// sample. It never mutates chart state.
func (c *Chart) Summary() Summary {
	abs := make(map[float64]int, len(c.data))
	for _, v := range c.data {
		abs[v]++
	}
	rel := make(map[float64]float64, len(abs))
	for v, n := range abs {
		rel[v] = float64(n) / float64(len(c.data))
	}
	return Summary{
		Relative:  rel,
		Absolute:  abs,
		NumBins:   c.spec.Len(),
		BinCounts: c.spec.Counts(),
	}
}

// String formats the summary as the four-block report the chart's print
// routine historically emitted, with values in ascending order.
func (s Summary) String() string {
	keys := make([]float64, 0, len(s.Absolute))
	for v := range s.Absolute {
		keys = append(keys, v)
	}
	sort.Float64s(keys)

	var b strings.Builder
	rule := strings.Repeat("-", 40)
	b.WriteString("Distribution in % of your data\n")
	for _, v := range keys {
		fmt.Fprintf(&b, "%g: %.4f\n", v, s.Relative[v])
	}
	b.WriteString(rule + "\n")
	b.WriteString("Frequency\n")
	for _, v := range keys {
		fmt.Fprintf(&b, "%g: %d\n", v, s.Absolute[v])
	}
	b.WriteString(rule + "\n")
	b.WriteString("Recommended bins number for your data\n")
	fmt.Fprintf(&b, "%d\n", s.NumBins)
	b.WriteString(rule + "\n")
	b.WriteString("Bins distribution\n")
	fmt.Fprintf(&b, "%v\n", s.BinCounts)
	return b.String()
}
