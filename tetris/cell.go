package tetris

// Color is a 24-bit RGB color.
type Color struct {
	R, G, B uint8
}

// EmptyColor is the color of an unoccupied cell.
var EmptyColor = Color{R: 47, G: 79, B: 79}

// Glyph tells a renderer how a cell should be drawn.
type Glyph uint8

const (
	GlyphEmpty Glyph = iota
	GlyphLocked
	GlyphGhost
	GlyphActive
)

func (g Glyph) String() string {
	switch g {
	case GlyphEmpty:
		return "empty"
	case GlyphLocked:
		return "locked"
	case GlyphGhost:
		return "ghost"
	case GlyphActive:
		return "active"
	default:
		return "unknown"
	}
}

// Cell is one square of the playfield. Its position is implied by its index
// in the grid.
type Cell struct {
	Filled  bool
	Color   Color
	Glyph   Glyph
	Variant Variant
}

// emptyCell is the zero state of every board cell.
var emptyCell = Cell{Color: EmptyColor, Glyph: GlyphEmpty}

func lockedCell(v Variant) Cell {
	return Cell{Filled: true, Color: v.Color(), Glyph: GlyphLocked, Variant: v}
}

// Point addresses a board cell. Row 0 is the top of the board.
type Point struct {
	Row, Col int
}
