package histview

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBitmapSetPixel(t *testing.T) {
	b := NewBitmap(4, 3, 4)
	assert.Equal(t, 4, b.Width())
	assert.Equal(t, 3, b.Height())

	b.SetPixel(1, 2, 3)
	assert.Equal(t, uint8(3), b.Pixel(1, 2))
	assert.Equal(t, uint8(0), b.Pixel(0, 0))

	// clipped writes and reads
	b.SetPixel(-1, 0, 2)
	b.SetPixel(4, 0, 2)
	b.SetPixel(0, 3, 2)
	assert.Equal(t, uint8(0), b.Pixel(-1, 0))
	assert.Equal(t, uint8(0), b.Pixel(4, 0))

	// values outside the declared range are dropped
	b.SetPixel(0, 0, 7)
	assert.Equal(t, uint8(0), b.Pixel(0, 0))
}

func TestBitmapDrawLineHorizontal(t *testing.T) {
	b := NewBitmap(10, 10, 4)
	b.DrawLine(2, 5, 7, 5, 2)
	for x := 2; x <= 7; x++ {
		assert.Equal(t, uint8(2), b.Pixel(x, 5), "x=%d", x)
	}
	assert.Equal(t, uint8(0), b.Pixel(1, 5))
	assert.Equal(t, uint8(0), b.Pixel(8, 5))

	// endpoint order must not matter
	b2 := NewBitmap(10, 10, 4)
	b2.DrawLine(7, 5, 2, 5, 2)
	assert.Equal(t, b.Pix(), b2.Pix())
}

func TestBitmapDrawLineVertical(t *testing.T) {
	b := NewBitmap(10, 10, 4)
	b.DrawLine(3, 8, 3, 2, 3)
	for y := 2; y <= 8; y++ {
		assert.Equal(t, uint8(3), b.Pixel(3, y), "y=%d", y)
	}
	assert.Equal(t, uint8(0), b.Pixel(3, 1))
	assert.Equal(t, uint8(0), b.Pixel(3, 9))
}

func TestBitmapDrawLineDiagonal(t *testing.T) {
	b := NewBitmap(10, 10, 4)
	b.DrawLine(0, 0, 4, 4, 2)
	for i := 0; i <= 4; i++ {
		assert.Equal(t, uint8(2), b.Pixel(i, i), "i=%d", i)
	}
}

func TestBitmapDrawLineClipped(t *testing.T) {
	b := NewBitmap(5, 5, 4)
	b.DrawLine(-3, 2, 8, 2, 2)
	for x := 0; x < 5; x++ {
		assert.Equal(t, uint8(2), b.Pixel(x, 2))
	}
}

func TestPalette(t *testing.T) {
	p := NewPalette(4)
	p.Set(2, 0xFFFFFF)
	p.Set(3, 0x0000FF)
	p.Set(9, 0x123456) // dropped

	require.Len(t, p.Entries, 4)
	assert.Equal(t, uint32(0xFFFFFF), p.Entries[2])

	c := p.RGBA(3)
	assert.Equal(t, uint8(0x00), c.R)
	assert.Equal(t, uint8(0x00), c.G)
	assert.Equal(t, uint8(0xFF), c.B)
	assert.Equal(t, uint8(0xFF), c.A)

	// background stays transparent
	assert.Equal(t, uint8(0), p.RGBA(0).A)
}

func TestGridImage(t *testing.T) {
	b := NewBitmap(3, 2, 4)
	p := NewPalette(4)
	p.Set(2, 0x00FF00)
	b.SetPixel(1, 1, 2)

	g := &Grid{X: 10, Y: 20, Bitmap: b, Palette: p}
	assert.Equal(t, 10, g.Bounds().Min.X)
	assert.Equal(t, 20, g.Bounds().Min.Y)

	img := g.Image()
	assert.Equal(t, g.Bounds(), img.Bounds())
	assert.Equal(t, uint8(2), img.ColorIndexAt(11, 21))
	assert.Equal(t, uint8(0), img.ColorIndexAt(10, 20))
}

func TestGroupAppend(t *testing.T) {
	var gr Group
	g := &Grid{Bitmap: NewBitmap(1, 1, 4), Palette: NewPalette(4)}
	gr.Append(g)
	require.Equal(t, 1, gr.Len())
	assert.Same(t, g, gr.Grid(0))
}
