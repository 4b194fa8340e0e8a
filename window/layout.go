package window

import (
	"image/color"

	"github.com/plus3/tetrad/tetris"
)

// Geometry places the board and the side panel on the logical screen.
type Geometry struct {
	Cell    int
	Margin  int
	Panel   int
	Columns int
	Rows    int
}

// NewGeometry sizes a layout for a board of columns × rows cells.
func NewGeometry(columns, rows, cell int) Geometry {
	return Geometry{
		Cell:    cell,
		Margin:  cell / 2,
		Panel:   cell * 6,
		Columns: columns,
		Rows:    rows,
	}
}

// Size returns the logical screen size.
func (g Geometry) Size() (width, height int) {
	return g.Margin*3 + g.Columns*g.Cell + g.Panel, g.Margin*2 + g.Rows*g.Cell
}

// CellOrigin returns the top-left pixel of board cell row, col.
func (g Geometry) CellOrigin(row, col int) (x, y float32) {
	return float32(g.Margin + col*g.Cell), float32(g.Margin + row*g.Cell)
}

// PanelOrigin returns the top-left pixel of the side panel.
func (g Geometry) PanelOrigin() (x, y int) {
	return g.Margin*2 + g.Columns*g.Cell, g.Margin
}

func rgba(c tetris.Color) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

// repeats reports whether a key held for d ticks should fire this tick. It
// fires on the first tick, then every interval ticks once delay has passed.
func repeats(d, delay, interval int) bool {
	switch {
	case d == 1:
		return true
	case d < delay || interval <= 0:
		return false
	default:
		return (d-delay)%interval == 0
	}
}
