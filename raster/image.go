package raster

import (
	"image"
	"image/color"
)

// Image is a single frame of RGBA pixels stored row by row, top to bottom,
// left to right.
//
// Views borrow the image: it must not be mutated while a View derived from
// it is in use.
type Image struct {
	pixels []Pixel
	width  int
	height int
}

var _ image.Image = (*Image)(nil)

// New creates an image of the given size with every pixel solid black.
// Negative sizes are treated as zero.
func New(width, height int) *Image {
	width = max(width, 0)
	height = max(height, 0)
	pixels := make([]Pixel, width*height)
	for i := range pixels {
		pixels[i].A = 0xff
	}
	return &Image{
		pixels: pixels,
		width:  width,
		height: height,
	}
}

// Width is the width of the image in pixels.
func (im *Image) Width() int { return im.width }

// Height is the height of the image in pixels.
func (im *Image) Height() int { return im.height }

// CellWidth is the width of the image in terminal cells.
func (im *Image) CellWidth() int { return im.width }

// CellHeight is the height of the image in terminal cells, rounded up.
func (im *Image) CellHeight() int { return (im.height + 1) / 2 }

// Pixels returns the backing pixel slice. Writes through it modify the image.
func (im *Image) Pixels() []Pixel {
	return im.pixels
}

// Pixel returns the pixel at (x, y). The boolean is false when the
// coordinates are out of bounds.
func (im *Image) Pixel(x, y int) (Pixel, bool) {
	p := im.PixelRef(x, y)
	if p == nil {
		return Pixel{}, false
	}
	return *p, true
}

// PixelRef returns a pointer to the pixel at (x, y), or nil when the
// coordinates are out of bounds.
func (im *Image) PixelRef(x, y int) *Pixel {
	if x < 0 || y < 0 || x >= im.width || y >= im.height {
		return nil
	}
	return &im.pixels[y*im.width+x]
}

// View returns a view of the entire image with Zoom fit and a black
// background.
func (im *Image) View() View {
	return NewView(im)
}

func (im *Image) ColorModel() color.Model {
	return color.NRGBAModel
}

func (im *Image) Bounds() image.Rectangle {
	return image.Rect(0, 0, im.width, im.height)
}

func (im *Image) At(x, y int) color.Color {
	p, _ := im.Pixel(x, y)
	return color.NRGBA{R: p.R, G: p.G, B: p.B, A: p.A}
}
