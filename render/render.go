// Package render draws image views onto a grid of terminal cells, two
// stacked pixels per cell.
package render

import "termpix/raster"

// Render draws v into area of dst. Every cell of area is written: cells
// with image content get PixelRune with the top pixel as foreground and
// the bottom pixel as background, the rest are Blank.
//
// When area has exactly the cell size of the view's region the pixels are
// copied one to one. Otherwise the region is scaled with nearest neighbour
// sampling according to the view's Fit.
func Render(v raster.View, area Rect, dst Canvas) {
	if area.Width <= 0 || area.Height <= 0 {
		return
	}

	region := v.Region()
	switch {
	case region.Empty():
		fillBlank(area, dst)
	case area.Width == region.Width && area.Height*2 == region.Height:
		renderExact(v, area, dst)
	default:
		renderScaled(v, area, dst)
	}
}

func renderExact(v raster.View, area Rect, dst Canvas) {
	bg := v.BgColor()
	for y := range area.Height {
		for x := range area.Width {
			top, _ := v.Pixel(x, y*2)
			bottom, _ := v.Pixel(x, y*2+1)
			dst.SetCell(area.X+x, area.Y+y, Cell{
				Rune: PixelRune,
				Fg:   top.On(bg),
				Bg:   bottom.On(bg),
			})
		}
	}
}

func renderScaled(v raster.View, area Rect, dst Canvas) {
	region := v.Region()
	zoomX := float64(area.Width) / float64(region.Width)
	zoomY := float64(area.Height*2) / float64(region.Height)

	// Zoom applies the smaller ratio to both axes and centers the image on
	// the other one; the offsets are in cells.
	var xPos, yPos int
	if v.Fit() == raster.Zoom {
		if zoomX < zoomY {
			yPos = max(area.Height*2-int(float64(region.Height)*zoomX), 0) / 4
			zoomY = zoomX
		} else {
			xPos = max(area.Width-int(float64(region.Width)*zoomY), 0) / 2
			zoomX = zoomY
		}
	}

	bg := v.BgColor()
	for y := range area.Height {
		for x := range area.Width {
			if x < xPos || y < yPos {
				dst.SetCell(area.X+x, area.Y+y, Blank)
				continue
			}

			pixX := int(float64(x-xPos) / zoomX)
			y1 := (y - yPos) * 2
			top, topOK := v.Pixel(pixX, int(float64(y1)/zoomY))
			bottom, bottomOK := v.Pixel(pixX, int(float64(y1+1)/zoomY))
			if !topOK && !bottomOK {
				dst.SetCell(area.X+x, area.Y+y, Blank)
				continue
			}

			c := Cell{Rune: PixelRune, Fg: raster.ColorReset, Bg: raster.ColorReset}
			if topOK {
				c.Fg = top.On(bg)
			}
			if bottomOK {
				c.Bg = bottom.On(bg)
			}
			dst.SetCell(area.X+x, area.Y+y, c)
		}
	}
}

func fillBlank(area Rect, dst Canvas) {
	for y := range area.Height {
		for x := range area.Width {
			dst.SetCell(area.X+x, area.Y+y, Blank)
		}
	}
}
