package histview

import "image/color"

// Palette is a small indexed color table. Entry i maps pixel value i to a
// packed 0xRRGGBB color. Entry 0 is the background.
type Palette struct {
	Entries []uint32
}

// NewPalette returns a palette with n entries, all black.
func NewPalette(n int) Palette {
	return Palette{Entries: make([]uint32, n)}
}

// Set assigns packed 0xRRGGBB color rgb to entry i. Indices outside the
// palette are dropped.
func (p Palette) Set(i int, rgb uint32) {
	if i < 0 || i >= len(p.Entries) {
		return
	}
	p.Entries[i] = rgb
}

// RGBA unpacks entry i into a color.RGBA. Entry 0 and out-of-range indices
// are fully transparent.
func (p Palette) RGBA(i int) color.RGBA {
	if i <= 0 || i >= len(p.Entries) {
		return color.RGBA{}
	}
	rgb := p.Entries[i]
	return color.RGBA{
		R: uint8(rgb >> 16),
		G: uint8(rgb >> 8),
		B: uint8(rgb),
		A: 0xff,
	}
}
