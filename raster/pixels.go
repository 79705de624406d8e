package raster

import (
	"iter"
	"math"
)

// ViewPixels walks the pixels of a region in row-major order. It cannot be
// rewound; call View.Pixels again for a fresh cursor.
type ViewPixels struct {
	pixels []Pixel
	region Region
	stride int
	x, y   int
}

func newViewPixels(img *Image, region Region) *ViewPixels {
	p := &ViewPixels{
		pixels: img.pixels,
		region: region,
		stride: img.width,
		x:      region.X,
		y:      region.Y,
	}
	if region.Empty() {
		p.x, p.y = math.MaxInt, math.MaxInt
	}
	return p
}

// Next returns the next pixel of the region. The pointer refers to the
// image's backing buffer. The boolean is false once the region is exhausted.
func (p *ViewPixels) Next() (*Pixel, bool) {
	if p.x == math.MaxInt {
		return nil, false
	}

	x, y := p.x, p.y
	p.x++
	if p.x >= p.region.X+p.region.Width {
		p.x = p.region.X
		p.y++
		if p.y >= p.region.Y+p.region.Height {
			p.x, p.y = math.MaxInt, math.MaxInt
		}
	}

	return &p.pixels[y*p.stride+x], true
}

// All drains the cursor as a sequence.
func (p *ViewPixels) All() iter.Seq[*Pixel] {
	return func(yield func(*Pixel) bool) {
		for {
			px, ok := p.Next()
			if !ok || !yield(px) {
				return
			}
		}
	}
}
