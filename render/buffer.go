package render

import "termpix/raster"

const (
	// PixelRune is the upper half block: the foreground paints the top
	// pixel and the background paints the bottom one.
	PixelRune = '▀'
	// BlankRune fills cells no source pixel maps to.
	BlankRune = ' '
)

// Cell is one character position of the target grid.
type Cell struct {
	Rune rune
	Fg   raster.Color
	Bg   raster.Color
}

// Blank is a cell with no image content and default colors.
var Blank = Cell{Rune: BlankRune, Fg: raster.ColorReset, Bg: raster.ColorReset}

// Rect is a rectangle of cells.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Canvas receives rendered cells.
type Canvas interface {
	SetCell(x, y int, c Cell)
}

// Buffer is an in-memory grid of cells, initially blank.
type Buffer struct {
	cells  []Cell
	width  int
	height int
}

var _ Canvas = (*Buffer)(nil)

func NewBuffer(width, height int) *Buffer {
	width = max(width, 0)
	height = max(height, 0)
	b := &Buffer{
		cells:  make([]Cell, width*height),
		width:  width,
		height: height,
	}
	b.Fill(Blank)
	return b
}

func (b *Buffer) Width() int { return b.width }

func (b *Buffer) Height() int { return b.height }

// Bounds is the rectangle covering the whole buffer.
func (b *Buffer) Bounds() Rect {
	return Rect{Width: b.width, Height: b.height}
}

// Cell returns the cell at (x, y); the boolean is false outside the buffer.
func (b *Buffer) Cell(x, y int) (Cell, bool) {
	if x < 0 || y < 0 || x >= b.width || y >= b.height {
		return Cell{}, false
	}
	return b.cells[y*b.width+x], true
}

// SetCell stores c at (x, y). Writes outside the buffer are dropped.
func (b *Buffer) SetCell(x, y int, c Cell) {
	if x < 0 || y < 0 || x >= b.width || y >= b.height {
		return
	}
	b.cells[y*b.width+x] = c
}

func (b *Buffer) Fill(c Cell) {
	for i := range b.cells {
		b.cells[i] = c
	}
}

// Row returns the cells of row y, or nil outside the buffer.
func (b *Buffer) Row(y int) []Cell {
	if y < 0 || y >= b.height {
		return nil
	}
	return b.cells[y*b.width : (y+1)*b.width]
}
