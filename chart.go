package histview

// Chart computes a histogram from a sample at construction and rasterizes
// it as bar outlines into an indexed bitmap. The sample and its binning are
// immutable after New; only the bitmap changes, and only through draw calls.
type Chart struct {
	data    []float64
	spec    *BinSpec
	scale   ScaleFactors
	bitmap  *Bitmap
	palette Palette
	grid    *Grid

	xstart  int
	yorigin int

	normMin, normMax int
}

type chartOpts struct {
	width, height        int
	lineColor, fillColor uint32
	rule                 BinRule
	errorHandler         ErrorHandler
}

// ChartOption is an option that can be passed to New()
//
// Available ChartOptions are:
//
// • Size(width, height) to set the chart area in pixels. Defaults to 100x100.
//
// • LineColor(rgb) to set palette entry 2, the outline stroke color.
//   Defaults to 0xFFFFFF.
//
// • FillColor(rgb) to set palette entry 3, the marker color bars are drawn
//   with. Defaults to 0x0000FF.
//
// • Rule(rule) to select the bin count heuristic. Defaults to Sturges.
//
// • ErrLogger
type ChartOption interface {
	setChartOpt(co *chartOpts)
}

type sizeOpt struct {
	width, height int
}

func (so sizeOpt) setChartOpt(co *chartOpts) {
	co.width = so.width
	co.height = so.height
}

// Size sets the chart area to width x height pixels. The backing bitmap is
// one pixel larger on each axis so the baseline and right edge stay
// addressable.
func Size(width, height int) interface {
	ChartOption
} {
	return sizeOpt{width: width, height: height}
}

type lineColorOpt struct {
	rgb uint32
}

func (lo lineColorOpt) setChartOpt(co *chartOpts) {
	co.lineColor = lo.rgb
}

// LineColor sets the packed 0xRRGGBB color of palette entry 2, used for
// outline strokes.
func LineColor(rgb uint32) interface {
	ChartOption
} {
	return lineColorOpt{rgb: rgb}
}

type fillColorOpt struct {
	rgb uint32
}

func (fo fillColorOpt) setChartOpt(co *chartOpts) {
	co.fillColor = fo.rgb
}

// FillColor sets the packed 0xRRGGBB color of palette entry 3, the marker
// color Draw uses for bars.
func FillColor(rgb uint32) interface {
	ChartOption
} {
	return fillColorOpt{rgb: rgb}
}

type ruleOpt struct {
	rule BinRule
}

func (ro ruleOpt) setChartOpt(co *chartOpts) {
	co.rule = ro.rule
}

// Rule selects the bin count heuristic used at construction.
func Rule(rule BinRule) interface {
	ChartOption
} {
	return ruleOpt{rule: rule}
}

// New builds a histogram chart for data, positioned at screen offset (x,y).
// The sample is binned once here; bin boundaries never change afterwards.
//
// New fails fast with ErrInvalidSize, ErrEmptySample, ErrDegenerateSample
// or ErrDegenerateScale rather than constructing a chart that would divide
// by zero later.
func New(data []float64, x, y int, opts ...ChartOption) (*Chart, error) {
	co := chartOpts{
		width:     100,
		height:    100,
		lineColor: 0xFFFFFF,
		fillColor: 0x0000FF,
		rule:      Sturges,
	}
	for _, o := range opts {
		o.setChartOpt(&co)
	}
	fail := func(err error) (*Chart, error) {
		if co.errorHandler != nil {
			return nil, co.errorHandler(err)
		}
		return nil, err
	}

	if co.width <= 0 || co.height <= 0 {
		return fail(ErrInvalidSize)
	}
	bins, err := NumBins(data, co.rule)
	if err != nil {
		return fail(err)
	}
	spec, err := computeBins(data, bins)
	if err != nil {
		return fail(err)
	}
	scale, err := deriveScale(spec, co.width, co.height)
	if err != nil {
		return fail(err)
	}

	palette := NewPalette(4)
	palette.Set(2, co.lineColor)
	palette.Set(3, co.fillColor)
	bitmap := NewBitmap(co.width+1, co.height+1, 4)

	c := &Chart{
		data:    append([]float64(nil), data...),
		spec:    spec,
		scale:   scale,
		bitmap:  bitmap,
		palette: palette,
		xstart:  0,
		yorigin: co.height,
	}
	c.grid = &Grid{X: x, Y: y, Bitmap: bitmap, Palette: palette}

	// Range-to-itself remap of the count axis, kept for callers that scale
	// bars themselves. The inverted target range flips min and max.
	max := float64(spec.MaxCount())
	nmin, _ := Normalize(0, max, max, 0, 0)
	nmax, _ := Normalize(0, max, max, 0, max)
	c.normMin = int(nmin)
	c.normMax = int(nmax)

	return c, nil
}

// Draw renders every bin as a bar outline in the fill marker color, palette
// entry 3. Drawing is additive: the bitmap is not cleared first, and
// repeating Draw on an unchanged chart rewrites identical pixels.
func (c *Chart) Draw() {
	c.DrawOutline(3)
}

// DrawOutline renders every bin as a bar outline in the given palette
// entry. Bar i spans GraphX pixels horizontally starting at i*GraphX and
// rises GraphY*count pixels up from the baseline.
func (c *Chart) DrawOutline(colorIndex uint8) {
	for i := 0; i < c.spec.Len(); i++ {
		c.drawRectangle(
			c.xstart+i*c.scale.GraphX,
			c.yorigin,
			c.scale.GraphX,
			c.scale.GraphY*c.spec.counts[i],
			colorIndex,
		)
	}
}

// drawRectangle strokes the outline of a width x height rectangle whose
// bottom-left corner is (x,y), growing upward. Edge order and the repeated
// corner pixels match the reference renderer exactly.
func (c *Chart) drawRectangle(x, y, width, height int, colorIndex uint8) {
	c.bitmap.DrawLine(x, y, x+width, y, colorIndex)
	c.bitmap.DrawLine(x, y, x, y-height, colorIndex)
	c.bitmap.DrawLine(x+width, y, x+width, y-height, colorIndex)
	c.bitmap.DrawLine(x+width, y-height, x, y-height, colorIndex)
}

// NumBins returns the number of bins in the chart.
func (c *Chart) NumBins() int { return c.spec.Len() }

// BinCount returns the frequency of bin i.
func (c *Chart) BinCount(i int) int { return c.spec.counts[i] }

// Bins returns the chart's binned distribution.
func (c *Chart) Bins() *BinSpec { return c.spec }

// GraphX returns the horizontal pixel span of one bin. Label overlays place
// the annotation for bin i at Origin x + i*GraphX.
func (c *Chart) GraphX() int { return c.scale.GraphX }

// GraphY returns the vertical pixels drawn per unit frequency.
func (c *Chart) GraphY() int { return c.scale.GraphY }

// Origin returns the chart-local baseline: the x of the first bar and the y
// bars grow upward from.
func (c *Chart) Origin() (x, y int) { return c.xstart, c.yorigin }

// NormalizedRange returns the count axis remapped onto its own inverted
// range. Unused by Draw; exposed for callers applying custom scaling.
func (c *Chart) NormalizedRange() (min, max int) { return c.normMin, c.normMax }

// Bitmap returns the chart's pixel buffer.
func (c *Chart) Bitmap() *Bitmap { return c.bitmap }

// Palette returns the chart's color table.
func (c *Chart) Palette() Palette { return c.palette }

// Grid returns the positioned drawable a host scene graph presents.
func (c *Chart) Grid() *Grid { return c.grid }
