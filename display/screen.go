// Package display puts rendered cells on a real terminal, either through a
// tcell screen or as ANSI escape sequences.
package display

import (
	"github.com/gdamore/tcell/v2"

	"termpix/raster"
	"termpix/render"
)

// Screen adapts a tcell screen to a render.Canvas.
type Screen struct {
	tcell.Screen
}

var _ render.Canvas = Screen{}

func NewScreen(s tcell.Screen) Screen {
	return Screen{Screen: s}
}

func (s Screen) SetCell(x, y int, c render.Cell) {
	s.SetContent(x, y, c.Rune, nil, Style(c))
}

// Area is the whole screen as a render target.
func (s Screen) Area() render.Rect {
	w, h := s.Size()
	return render.Rect{Width: w, Height: h}
}

// Style builds the tcell style for a cell.
func Style(c render.Cell) tcell.Style {
	return tcell.StyleDefault.Foreground(Color(c.Fg)).Background(Color(c.Bg))
}

// Color maps a display color to tcell; ColorReset becomes tcell.ColorReset.
func Color(c raster.Color) tcell.Color {
	if c.IsReset() {
		return tcell.ColorReset
	}
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
