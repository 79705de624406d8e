package render

import (
	"testing"

	"termpix/raster"
)

// gridImage returns an opaque image whose pixels encode their coordinates
// as R=x*10, G=y*10.
func gridImage(w, h int) *raster.Image {
	img := raster.New(w, h)
	for y := range h {
		for x := range w {
			*img.PixelRef(x, y) = raster.Pixel{R: uint8(x * 10), G: uint8(y * 10), A: 255}
		}
	}
	return img
}

func pixelCell(topX, topY, bottomX, bottomY int) Cell {
	return Cell{
		Rune: PixelRune,
		Fg:   raster.RGB(uint8(topX*10), uint8(topY*10), 0),
		Bg:   raster.RGB(uint8(bottomX*10), uint8(bottomY*10), 0),
	}
}

func renderToBuffer(v raster.View, w, h int) *Buffer {
	buf := NewBuffer(w, h)
	Render(v, buf.Bounds(), buf)
	return buf
}

func assertCell(t *testing.T, buf *Buffer, x, y int, want Cell) {
	t.Helper()
	got, ok := buf.Cell(x, y)
	if !ok {
		t.Fatalf("cell (%d, %d) outside buffer", x, y)
	}
	if got != want {
		t.Errorf("cell (%d, %d): expected %q fg=%v bg=%v, got %q fg=%v bg=%v",
			x, y, want.Rune, want.Fg, want.Bg, got.Rune, got.Fg, got.Bg)
	}
}

func TestRenderExactFit(t *testing.T) {
	buf := renderToBuffer(gridImage(3, 4).View(), 3, 2)
	for y := range 2 {
		for x := range 3 {
			assertCell(t, buf, x, y, pixelCell(x, 2*y, x, 2*y+1))
		}
	}
}

func TestRenderExactFitBlendsAlpha(t *testing.T) {
	img := raster.New(1, 2)
	*img.PixelRef(0, 0) = raster.Pixel{R: 255, A: 0}
	*img.PixelRef(0, 1) = raster.Pixel{R: 200, G: 100, A: 128}
	bg := raster.BgColor{R: 10, G: 20, B: 30}

	buf := renderToBuffer(img.View().WithBgColor(bg), 1, 1)
	want := Cell{
		Rune: PixelRune,
		Fg:   raster.RGB(10, 20, 30),
		Bg:   raster.Pixel{R: 200, G: 100, A: 128}.On(bg),
	}
	assertCell(t, buf, 0, 0, want)
}

func TestRenderScaledMatchesExactAtUnitZoom(t *testing.T) {
	for _, fit := range []raster.Fit{raster.Zoom, raster.Stretch} {
		v := gridImage(3, 4).View().WithFit(fit)
		area := Rect{Width: 3, Height: 2}

		exact := NewBuffer(3, 2)
		renderExact(v, area, exact)
		scaled := NewBuffer(3, 2)
		renderScaled(v, area, scaled)

		for y := range 2 {
			for x := range 3 {
				e, _ := exact.Cell(x, y)
				s, _ := scaled.Cell(x, y)
				if e != s {
					t.Errorf("%v: cell (%d, %d) differs: exact %+v, scaled %+v", fit, x, y, e, s)
				}
			}
		}
	}
}

func TestRenderZoomCentersHorizontally(t *testing.T) {
	// 4x4 pixels is 4x2 cells; a 4x1 area halves it and letterboxes
	// one column on each side.
	buf := renderToBuffer(gridImage(4, 4).View(), 4, 1)

	assertCell(t, buf, 0, 0, Blank)
	assertCell(t, buf, 1, 0, pixelCell(0, 0, 0, 2))
	assertCell(t, buf, 2, 0, pixelCell(2, 0, 2, 2))
	assertCell(t, buf, 3, 0, Blank)
}

func TestRenderZoomCentersVertically(t *testing.T) {
	// 4x2 pixels into 2x4 cells: zoom 0.5, one blank row above.
	buf := renderToBuffer(gridImage(4, 2).View(), 2, 4)

	for x := range 2 {
		assertCell(t, buf, x, 0, Blank)
		assertCell(t, buf, x, 2, Blank)
		assertCell(t, buf, x, 3, Blank)
	}
	// the second sampled row falls outside the image: a gap, not background
	for x := range 2 {
		assertCell(t, buf, x, 1, Cell{
			Rune: PixelRune,
			Fg:   raster.RGB(uint8(x*20), 0, 0),
			Bg:   raster.ColorReset,
		})
	}
}

func TestRenderZoomUpscale(t *testing.T) {
	// 2x2 pixels (2x1 cells) into 4x2 cells doubles both axes exactly.
	buf := renderToBuffer(gridImage(2, 2).View(), 4, 2)
	for y := range 2 {
		for x := range 4 {
			assertCell(t, buf, x, y, pixelCell(x/2, y, x/2, y))
		}
	}
}

func TestRenderStretch(t *testing.T) {
	// zoom_x = 2, zoom_y = 0.5: every source column covers two cells.
	v := gridImage(4, 4).View().WithFit(raster.Stretch)
	buf := renderToBuffer(v, 8, 1)
	for x := range 8 {
		assertCell(t, buf, x, 0, pixelCell(x/2, 0, x/2, 2))
	}
}

func TestRenderStretchFillsArea(t *testing.T) {
	v := gridImage(3, 5).View().WithFit(raster.Stretch)
	buf := renderToBuffer(v, 7, 4)
	for y := range 4 {
		for x := range 7 {
			c, _ := buf.Cell(x, y)
			if c.Rune != PixelRune || c.Fg.IsReset() {
				t.Errorf("cell (%d, %d) should show the image, got %+v", x, y, c)
			}
		}
	}
}

func TestRenderRegion(t *testing.T) {
	v := gridImage(6, 6).View().WithRegion(raster.Region{X: 2, Y: 2, Width: 2, Height: 2})
	buf := renderToBuffer(v, 2, 1)
	assertCell(t, buf, 0, 0, pixelCell(2, 2, 2, 3))
	assertCell(t, buf, 1, 0, pixelCell(3, 2, 3, 3))
}

func TestRenderAreaOffset(t *testing.T) {
	buf := NewBuffer(5, 4)
	Render(gridImage(2, 2).View(), Rect{X: 2, Y: 1, Width: 2, Height: 1}, buf)

	assertCell(t, buf, 2, 1, pixelCell(0, 0, 0, 1))
	assertCell(t, buf, 3, 1, pixelCell(1, 0, 1, 1))
	for y := range 4 {
		for x := range 5 {
			if y == 1 && (x == 2 || x == 3) {
				continue
			}
			assertCell(t, buf, x, y, Blank)
		}
	}
}

func TestRenderDegenerate(t *testing.T) {
	img := gridImage(4, 4)
	empty := img.View().WithRegion(raster.Region{X: 9, Y: 9, Width: 1, Height: 1})

	buf := NewBuffer(3, 2)
	buf.Fill(Cell{Rune: 'x'})
	Render(empty, buf.Bounds(), buf)
	for y := range 2 {
		for x := range 3 {
			assertCell(t, buf, x, y, Blank)
		}
	}

	// zero and negative areas write nothing
	for _, area := range []Rect{{}, {Width: 3}, {Height: 2}, {Width: -1, Height: 2}} {
		buf.Fill(Cell{Rune: 'x'})
		Render(img.View(), area, buf)
		if c, _ := buf.Cell(0, 0); c.Rune != 'x' {
			t.Errorf("area %+v: expected untouched buffer, got %+v", area, c)
		}
	}

	Render(raster.New(0, 0).View(), Rect{Width: 2, Height: 2}, NewBuffer(2, 2))
}

func TestRenderSolidBlackImage(t *testing.T) {
	img := raster.New(3, 3)
	black := raster.RGB(0, 0, 0)
	for _, bg := range []raster.BgColor{{}, {R: 255, G: 255, B: 255}, {R: 12, G: 34, B: 56}} {
		v := img.View().WithBgColor(bg)

		exact := renderToBuffer(v.WithRegion(raster.Region{Width: 3, Height: 2}), 3, 1)
		for x := range 3 {
			assertCell(t, exact, x, 0, Cell{Rune: PixelRune, Fg: black, Bg: black})
		}

		// the odd last pixel row leaves the bottom half of the second cell
		// row without a source pixel
		buf := renderToBuffer(v, 3, 2)
		for x := range 3 {
			assertCell(t, buf, x, 0, Cell{Rune: PixelRune, Fg: black, Bg: black})
			assertCell(t, buf, x, 1, Cell{Rune: PixelRune, Fg: black, Bg: raster.ColorReset})
		}
	}
}

func TestRenderIsRepeatable(t *testing.T) {
	v := gridImage(5, 7).View().WithBgColor(raster.BgColor{R: 1})
	for _, size := range [][2]int{{5, 4}, {9, 3}, {2, 8}} {
		first := renderToBuffer(v, size[0], size[1])
		second := renderToBuffer(v, size[0], size[1])
		for y := range size[1] {
			for x := range size[0] {
				a, _ := first.Cell(x, y)
				b, _ := second.Cell(x, y)
				if a != b {
					t.Errorf("%v: cell (%d, %d) changed between renders", size, x, y)
				}
			}
		}
	}
}
