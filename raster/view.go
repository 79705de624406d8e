package raster

import (
	"fmt"
	"strings"
)

// Fit selects how a view is mapped onto a render area.
type Fit uint8

const (
	// Zoom scales the view to fit the area while preserving its aspect
	// ratio. The image is centered and the unused margins are left blank.
	Zoom Fit = iota
	// Stretch scales each axis independently to fill the whole area. The
	// image is distorted when the aspect ratios differ.
	Stretch
)

func (f Fit) String() string {
	switch f {
	case Zoom:
		return "zoom"
	case Stretch:
		return "stretch"
	default:
		return fmt.Sprintf("Fit(%d)", uint8(f))
	}
}

// ParseFit parses "zoom" or "stretch", ignoring case.
func ParseFit(s string) (Fit, error) {
	switch strings.ToLower(s) {
	case "zoom":
		return Zoom, nil
	case "stretch":
		return Stretch, nil
	}
	return Zoom, fmt.Errorf("unknown fit mode %q", s)
}

// View is a renderable window onto an Image. It references the image
// without copying its pixels, selects a Region of it, and carries the Fit
// and background color used when rendering.
type View struct {
	image  *Image
	fit    Fit
	region Region
	bg     BgColor
}

// NewView returns a view of the whole image with Zoom fit and a black
// background. img must not be nil.
func NewView(img *Image) View {
	v := View{image: img, fit: Zoom}
	v.SetRegion(Region{Width: img.width, Height: img.height})
	return v
}

// WithFit returns a copy of the view using fit.
func (v View) WithFit(fit Fit) View {
	v.SetFit(fit)
	return v
}

// WithRegion returns a copy of the view restricted to region.
func (v View) WithRegion(region Region) View {
	v.SetRegion(region)
	return v
}

// WithBgColor returns a copy of the view blending against color.
func (v View) WithBgColor(color BgColor) View {
	v.SetBgColor(color)
	return v
}

func (v *View) SetFit(fit Fit) {
	v.fit = fit
}

// SetRegion selects the part of the image to show. The region is clamped
// to the image: sizes running past the right or bottom edge are truncated,
// and a region whose origin is not inside the image becomes the empty
// region at (0, 0).
func (v *View) SetRegion(region Region) {
	v.region = region.clamp(v.image.width, v.image.height)
}

func (v *View) SetBgColor(color BgColor) {
	v.bg = color
}

// Image returns the image the view refers to.
func (v View) Image() *Image { return v.image }

func (v View) Fit() Fit { return v.fit }

func (v View) Region() Region { return v.region }

func (v View) BgColor() BgColor { return v.bg }

// Pixels returns a cursor over the pixels of the region, row by row.
func (v View) Pixels() *ViewPixels {
	return newViewPixels(v.image, v.region)
}

// Pixel returns the pixel at (x, y) relative to the region's top-left
// corner. The boolean is false outside the region.
func (v View) Pixel(x, y int) (Pixel, bool) {
	if x < 0 || y < 0 || x >= v.region.Width || y >= v.region.Height {
		return Pixel{}, false
	}
	return v.image.Pixel(x+v.region.X, y+v.region.Y)
}
