package histview

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// BinRule selects the heuristic used to derive the number of bins from a
// sample.
type BinRule int

const (
	// Sturges derives the bin count as ceil(log2(n))+1. It favors larger
	// samples.
	Sturges BinRule = iota
	// SquareRoot derives the bin count as ceil(|max-min|/sqrt(n)). It favors
	// smaller samples but degenerates when every value is equal.
	SquareRoot
	// Auto picks SquareRoot for samples of up to 30 elements and Sturges
	// above that.
	Auto
)

// autoThreshold is the sample size at which Auto switches from SquareRoot
// to Sturges.
const autoThreshold = 30

// NumBins returns the recommended number of bins for data under the given
// rule. The result is always at least 1 for a valid sample.
//
// NumBins returns ErrEmptySample for an empty sample, and
// ErrDegenerateSample when the SquareRoot rule is applied to a sample whose
// values are all equal.
func NumBins(data []float64, rule BinRule) (int, error) {
	if len(data) == 0 {
		return 0, ErrEmptySample
	}
	if rule == Auto {
		if len(data) > autoThreshold {
			rule = Sturges
		} else {
			rule = SquareRoot
		}
	}
	var bins int
	switch rule {
	case Sturges:
		bins = int(math.Ceil(math.Log2(float64(len(data))))) + 1
	case SquareRoot:
		spread := math.Abs(floats.Max(data) - floats.Min(data))
		bins = int(math.Ceil(spread / math.Sqrt(float64(len(data)))))
		if bins == 0 {
			return 0, ErrDegenerateSample
		}
	}
	if bins < 1 {
		bins = 1
	}
	return bins, nil
}

// BinSpec is the binned frequency distribution of a sample. Bins partition
// [min, min+Len()*Width()) into contiguous half-open intervals of equal
// width.
//
// The bin width is rounded up to an integer number of units, so a value
// equal to the sample maximum can land exactly on the upper edge of the last
// bin and stay uncounted; the sum of all counts is therefore at most the
// sample size, not always equal to it. This matches the behavior downstream
// renderers were built against and is deliberately not corrected here.
type BinSpec struct {
	start  float64
	width  float64
	counts []int
}

// Bucket is a single histogram entry. It spans [Min,Max) and holds Count
// sample values.
type Bucket struct {
	Min, Max float64
	Count    int
}

// Len returns the number of bins in the histogram.
func (b *BinSpec) Len() int {
	return len(b.counts)
}

// Width returns the common width of every bin.
func (b *BinSpec) Width() float64 {
	return b.width
}

// Bucket returns the i'th bin. i must be between 0 and Len()-1.
func (b *BinSpec) Bucket(i int) Bucket {
	return Bucket{
		Min:   b.start + b.width*float64(i),
		Max:   b.start + b.width*float64(i+1),
		Count: b.counts[i],
	}
}

// Counts returns the per-bin frequencies in bin index order. The returned
// slice is a copy.
func (b *BinSpec) Counts() []int {
	return append([]int(nil), b.counts...)
}

// MaxCount returns the frequency of the fullest bin.
func (b *BinSpec) MaxCount() int {
	max := 0
	for _, c := range b.counts {
		if c > max {
			max = c
		}
	}
	return max
}

// computeBins counts data into binCount half-open intervals of width
// ceil(|max-min|/binCount) starting at min(data).
//
// When every value is equal the derived width is zero; the whole sample is
// then assigned to bin 0 and the width forced to 1 so the intervals stay
// well formed.
func computeBins(data []float64, binCount int) (*BinSpec, error) {
	if len(data) == 0 {
		return nil, ErrEmptySample
	}
	min, max := floats.Min(data), floats.Max(data)
	width := math.Ceil(math.Abs(max-min) / float64(binCount))
	counts := make([]int, binCount)
	if width == 0 {
		counts[0] = len(data)
		return &BinSpec{start: min, width: 1, counts: counts}, nil
	}
	lo := min
	hi := min + width
	for i := 0; i < binCount; i++ {
		for _, v := range data {
			if lo <= v && v < hi {
				counts[i]++
			}
		}
		lo = hi
		hi += width
	}
	return &BinSpec{start: min, width: width, counts: counts}, nil
}
