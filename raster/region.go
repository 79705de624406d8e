package raster

// Region designates a rectangle of an image in pixel coordinates.
type Region struct {
	X      int
	Y      int
	Width  int
	Height int
}

// CellRegion converts a rectangle of terminal cells into the region of
// pixels it covers.
func CellRegion(x, y, width, height int) Region {
	return Region{
		X:      x,
		Y:      y * 2,
		Width:  width,
		Height: height * 2,
	}
}

// CellX is the horizontal origin in terminal cells.
func (r Region) CellX() int { return r.X }

// CellY is the vertical origin in terminal cells, rounded up.
func (r Region) CellY() int { return (r.Y + 1) / 2 }

// CellWidth is the width in terminal cells.
func (r Region) CellWidth() int { return r.Width }

// CellHeight is the height in terminal cells, rounded up.
func (r Region) CellHeight() int { return (r.Height + 1) / 2 }

// Empty reports whether the region covers no pixels.
func (r Region) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// clamp fits r inside a width x height image. An origin outside the image
// collapses the region to zero; an origin on the right or bottom edge
// counts as outside.
func (r Region) clamp(width, height int) Region {
	if r.X < 0 || r.Y < 0 || r.X >= width || r.Y >= height {
		return Region{}
	}
	r.Width = min(max(r.Width, 0), width-r.X)
	r.Height = min(max(r.Height, 0), height-r.Y)
	return r
}
