package histview

// Bitmap is a fixed-size 2D buffer of palette indices. It is allocated once
// and mutated in place by draw operations; it is never resized.
//
// Bitmap is not safe for concurrent use. There is exactly one writer in the
// intended single-threaded setup; a multi-threaded host must serialize
// access itself.
type Bitmap struct {
	width, height int
	values        int
	pix           []uint8
}

// NewBitmap allocates a width x height bitmap whose pixels may hold indices
// 0 to values-1. All pixels start at index 0.
func NewBitmap(width, height, values int) *Bitmap {
	return &Bitmap{
		width:  width,
		height: height,
		values: values,
		pix:    make([]uint8, width*height),
	}
}

// Width returns the bitmap width in pixels.
func (b *Bitmap) Width() int { return b.width }

// Height returns the bitmap height in pixels.
func (b *Bitmap) Height() int { return b.height }

// Pixel returns the palette index at (x,y), or 0 when (x,y) is outside the
// bitmap.
func (b *Bitmap) Pixel(x, y int) uint8 {
	if x < 0 || y < 0 || x >= b.width || y >= b.height {
		return 0
	}
	return b.pix[y*b.width+x]
}

// SetPixel writes palette index v at (x,y). Writes outside the bitmap or
// with v outside the declared value range are dropped.
func (b *Bitmap) SetPixel(x, y int, v uint8) {
	if x < 0 || y < 0 || x >= b.width || y >= b.height {
		return
	}
	if int(v) >= b.values {
		return
	}
	b.pix[y*b.width+x] = v
}

// Pix returns the backing pixel slice in row-major order. Mutating it
// mutates the bitmap.
func (b *Bitmap) Pix() []uint8 { return b.pix }

// DrawLine draws a single-pixel line from (x0,y0) to (x1,y1) in palette
// index v, endpoints included. Axis-aligned segments take a fast path;
// everything else is a Bresenham walk. Out-of-bounds pixels are clipped.
func (b *Bitmap) DrawLine(x0, y0, x1, y1 int, v uint8) {
	switch {
	case y0 == y1:
		if x1 < x0 {
			x0, x1 = x1, x0
		}
		for x := x0; x <= x1; x++ {
			b.SetPixel(x, y0, v)
		}
	case x0 == x1:
		if y1 < y0 {
			y0, y1 = y1, y0
		}
		for y := y0; y <= y1; y++ {
			b.SetPixel(x0, y, v)
		}
	default:
		dx := abs(x1 - x0)
		dy := -abs(y1 - y0)
		sx, sy := 1, 1
		if x0 > x1 {
			sx = -1
		}
		if y0 > y1 {
			sy = -1
		}
		err := dx + dy
		for {
			b.SetPixel(x0, y0, v)
			if x0 == x1 && y0 == y1 {
				return
			}
			e2 := 2 * err
			if e2 >= dy {
				err += dy
				x0 += sx
			}
			if e2 <= dx {
				err += dx
				y0 += sy
			}
		}
	}
}

func abs(a int) int {
	if a < 0 {
		return -a
	}
	return a
}
