package tetris

import "slices"

// Piece is a tetromino on the board: its variant, its rotation state and
// the board position of the top-left corner of its bounding box.
//
// Piece is a value type. Moving or rotating returns a new Piece; whether the
// result may be committed is decided by Board.IsValidPlacement.
type Piece struct {
	Variant  Variant
	Rotation Rotation
	Row      int
	Col      int
}

// centers holds each variant's rotation center relative to its box origin.
var centers = [variantCount][2]float64{
	I: {1.5, 1.5},
	O: {0.5, 1.5},
	T: {1, 1},
	S: {1, 1},
	Z: {1, 1},
	J: {1, 1},
	L: {1, 1},
}

// Spawn returns variant v in its spawn orientation, at the top of a board
// of the given width and horizontally centered.
func Spawn(v Variant, width int) Piece {
	return Piece{Variant: v, Rotation: RotationSpawn, Row: 0, Col: (width - 4) / 2}
}

// Cells returns the board positions of the piece's four cells.
func (p Piece) Cells() [4]Point {
	cells := Offsets(p.Variant, p.Rotation)
	for i := range cells {
		cells[i].Row += p.Row
		cells[i].Col += p.Col
	}
	return cells
}

// Center returns the point the piece rotates about, in board coordinates.
// It may fall between cells.
func (p Piece) Center() (row, col float64) {
	c := centers[p.Variant]
	return float64(p.Row) + c[0], float64(p.Col) + c[1]
}

// Translate returns the piece shifted by dRow rows and dCol columns.
func (p Piece) Translate(dRow, dCol int) Piece {
	p.Row += dRow
	p.Col += dCol
	return p
}

// Rotate returns the piece turned a quarter in direction d about its center.
func (p Piece) Rotate(d Direction) Piece {
	p.Rotation = p.Rotation.Turn(d)
	return p
}

// SameCells reports whether p and q cover exactly the same board cells.
func (p Piece) SameCells(q Piece) bool {
	a, b := p.Cells(), q.Cells()
	if a == b {
		return true
	}
	for _, c := range a {
		if !slices.Contains(b[:], c) {
			return false
		}
	}
	return true
}

// MinCol returns the leftmost column the piece covers.
func (p Piece) MinCol() int {
	cells := p.Cells()
	minCol := cells[0].Col
	for _, c := range cells[1:] {
		minCol = min(minCol, c.Col)
	}
	return minCol
}

// Color returns the color of the piece's variant.
func (p Piece) Color() Color {
	return p.Variant.Color()
}
