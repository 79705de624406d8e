package raster

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// Pixel is an 8-bit RGBA color with straight (non-premultiplied) alpha.
// The zero value is fully transparent black.
type Pixel struct {
	R, G, B, A uint8
}

// BgColor is the opaque color transparent pixels are blended against.
type BgColor struct {
	R, G, B uint8
}

// Color is a display color: either an opaque RGB triple or the terminal
// default. The zero value is ColorReset.
type Color struct {
	R, G, B uint8
	set     bool
}

// ColorReset selects the terminal's default color.
var ColorReset Color

// RGB returns an opaque display color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, set: true}
}

// IsReset reports whether c is the terminal default color.
func (c Color) IsReset() bool {
	return !c.set
}

func (c Color) String() string {
	if !c.set {
		return "reset"
	}
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Color converts the background to a display color.
func (bg BgColor) Color() Color {
	return RGB(bg.R, bg.G, bg.B)
}

// ParseBgColor parses a "#rgb" or "#rrggbb" hex string.
func ParseBgColor(s string) (BgColor, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return BgColor{}, fmt.Errorf("invalid background color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return BgColor{R: r, G: g, B: b}, nil
}

// On composites the pixel over bg according to its alpha channel.
func (p Pixel) On(bg BgColor) Color {
	return RGB(
		blend(p.R, bg.R, p.A),
		blend(p.G, bg.G, p.A),
		blend(p.B, bg.B, p.A),
	)
}

// blend mixes value over bg; 255*255 fits in 16 bits.
func blend(value, bg, alpha uint8) uint8 {
	v := uint16(value) * uint16(alpha)
	b := uint16(bg) * uint16(255-alpha)
	return uint8((v + b) / 255)
}
