package tetris

import (
	"iter"
	"slices"
)

// Board is the grid of locked cells. Its dimensions are fixed when it is
// created. The falling piece is not part of the board until Lock is called.
type Board struct {
	width  int
	height int
	cells  []Cell
}

// NewBoard creates an empty board of the given size. Dimensions below one
// are raised to one.
func NewBoard(width, height int) *Board {
	width, height = max(width, 1), max(height, 1)
	b := &Board{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
	for i := range b.cells {
		b.cells[i] = emptyCell
	}
	return b
}

// Width returns the number of columns.
func (b *Board) Width() int {
	return b.width
}

// Height returns the number of rows.
func (b *Board) Height() int {
	return b.height
}

// Clone returns an independent copy of the board.
func (b *Board) Clone() *Board {
	return &Board{
		width:  b.width,
		height: b.height,
		cells:  slices.Clone(b.cells),
	}
}

// InBounds reports whether p lies on the board.
func (b *Board) InBounds(p Point) bool {
	return p.Row >= 0 && p.Row < b.height && p.Col >= 0 && p.Col < b.width
}

func (b *Board) index(row, col int) int {
	return row*b.width + col
}

// At returns the cell at row, col. Out-of-range positions read as empty.
func (b *Board) At(row, col int) Cell {
	if !b.InBounds(Point{Row: row, Col: col}) {
		return emptyCell
	}
	return b.cells[b.index(row, col)]
}

// Occupied reports whether the cell at p holds a locked block.
func (b *Board) Occupied(p Point) bool {
	return b.InBounds(p) && b.cells[b.index(p.Row, p.Col)].Filled
}

// SetCell overwrites the cell at row, col. It is meant for setting up
// positions; normal play only changes the board through Lock and ClearRows.
func (b *Board) SetCell(row, col int, c Cell) {
	if !b.InBounds(Point{Row: row, Col: col}) {
		return
	}
	if !c.Filled {
		c = emptyCell
	}
	b.cells[b.index(row, col)] = c
}

// Fill marks the cell at row, col as a locked block of variant v.
func (b *Board) Fill(row, col int, v Variant) {
	b.SetCell(row, col, lockedCell(v))
}

// IsValidPlacement reports whether every cell of p lies on the board and
// over an empty cell.
func (b *Board) IsValidPlacement(p Piece) bool {
	for _, c := range p.Cells() {
		if !b.InBounds(c) || b.cells[b.index(c.Row, c.Col)].Filled {
			return false
		}
	}
	return true
}

// Rest returns p moved straight down as far as it can go. p must be a
// valid placement.
func (b *Board) Rest(p Piece) Piece {
	for {
		next := p.Translate(1, 0)
		if !b.IsValidPlacement(next) {
			return p
		}
		p = next
	}
}

// Lock writes the cells of p into the board as locked blocks.
// Cells outside the board are ignored.
func (b *Board) Lock(p Piece) {
	for _, c := range p.Cells() {
		b.Fill(c.Row, c.Col, p.Variant)
	}
}

// FullRows returns the indices of all completely filled rows, top to
// bottom.
func (b *Board) FullRows() []int {
	var rows []int
	for row := range b.height {
		if b.rowFull(row) {
			rows = append(rows, row)
		}
	}
	return rows
}

func (b *Board) rowFull(row int) bool {
	for _, c := range b.Row(row) {
		if !c.Filled {
			return false
		}
	}
	return true
}

// ClearRows empties each listed row and shifts every row above it down by
// one. Rows are processed in ascending order against a sorted copy of the
// input, so clearing one row never moves another row that is still
// waiting to be cleared.
func (b *Board) ClearRows(rows []int) {
	pending := slices.Clone(rows)
	slices.Sort(pending)
	pending = slices.Compact(pending)

	for _, row := range pending {
		if row < 0 || row >= b.height {
			continue
		}
		// Row r takes the contents of row r-1, from the cleared row up to 1.
		copy(b.cells[b.width:(row+1)*b.width], b.cells[:row*b.width])
		for col := range b.width {
			b.cells[col] = emptyCell
		}
	}
}

// Row returns the cells of one row. The slice aliases the board and must
// not be modified.
func (b *Board) Row(row int) []Cell {
	start := b.index(row, 0)
	return b.cells[start : start+b.width : start+b.width]
}

// Rows iterates the board top to bottom.
func (b *Board) Rows() iter.Seq2[int, []Cell] {
	return func(yield func(int, []Cell) bool) {
		for row := range b.height {
			if !yield(row, b.Row(row)) {
				return
			}
		}
	}
}

// ColumnHeight returns the number of rows from the highest locked block in
// col down to the floor, or 0 for an empty column.
func (b *Board) ColumnHeight(col int) int {
	for row := range b.height {
		if b.cells[b.index(row, col)].Filled {
			return b.height - row
		}
	}
	return 0
}
