package histview

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummary(t *testing.T) {
	c, err := New(scenario, 0, 0)
	require.NoError(t, err)

	s := c.Summary()
	assert.Equal(t, map[float64]int{2: 2, 3: 5, 4: 1, 5: 2, 6: 1, 7: 2, 9: 1}, s.Absolute)
	assert.Equal(t, 5, s.NumBins)
	assert.Equal(t, []int{7, 3, 3, 1, 0}, s.BinCounts)

	total := 0.0
	for v, rel := range s.Relative {
		assert.InDelta(t, float64(s.Absolute[v])/14.0, rel, 1e-12)
		total += rel
	}
	assert.InDelta(t, 1.0, total, 1e-12)
}

func TestSummaryString(t *testing.T) {
	c, err := New(scenario, 0, 0)
	require.NoError(t, err)

	out := c.Summary().String()
	assert.Contains(t, out, "Distribution in % of your data")
	assert.Contains(t, out, "Frequency\n2: 2\n3: 5\n")
	assert.Contains(t, out, "Recommended bins number for your data\n5\n")
	assert.Contains(t, out, "Bins distribution\n[7 3 3 1 0]\n")
}

func TestSummaryReadOnly(t *testing.T) {
	c, err := New(scenario, 0, 0)
	require.NoError(t, err)
	c.Draw()
	before := append([]uint8(nil), c.Bitmap().Pix()...)

	_ = c.Summary()
	assert.Equal(t, before, c.Bitmap().Pix())
	assert.Equal(t, []int{7, 3, 3, 1, 0}, c.Bins().Counts())
}
