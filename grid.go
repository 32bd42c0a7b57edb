package histview

import (
	"image"
	"image/color"
)

// Grid composes a bitmap with a palette at a screen offset. It is the unit a
// host scene graph positions and presents; the chart itself never touches
// screen coordinates beyond carrying them here.
type Grid struct {
	X, Y    int
	Bitmap  *Bitmap
	Palette Palette
}

// Bounds returns the screen-space rectangle the grid covers.
func (g *Grid) Bounds() image.Rectangle {
	return image.Rect(g.X, g.Y, g.X+g.Bitmap.Width(), g.Y+g.Bitmap.Height())
}

// Image renders the grid's current pixels into a paletted image positioned
// at the grid offset, for hosts that consume standard images. The image is a
// snapshot; later draws into the bitmap are not reflected.
func (g *Grid) Image() *image.Paletted {
	pal := make(color.Palette, len(g.Palette.Entries))
	for i := range g.Palette.Entries {
		pal[i] = g.Palette.RGBA(i)
	}
	img := image.NewPaletted(g.Bounds(), pal)
	copy(img.Pix, g.Bitmap.Pix())
	return img
}

// Group is a flat collection of grids a host presents together, in append
// order.
type Group struct {
	grids []*Grid
}

// Append adds g to the group.
func (gr *Group) Append(g *Grid) {
	gr.grids = append(gr.grids, g)
}

// Len returns the number of grids in the group.
func (gr *Group) Len() int { return len(gr.grids) }

// Grid returns the i'th appended grid.
func (gr *Group) Grid(i int) *Grid { return gr.grids[i] }
