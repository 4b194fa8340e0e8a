package tetris

import (
	"iter"
	"time"

	"github.com/kamstrup/intmap"
)

// Snapshot is a read-only copy of everything a renderer needs. Its cells
// combine the locked grid with the ghost and falling piece; the session
// itself never stores that combination.
type Snapshot struct {
	Width  int
	Height int
	Cells  []Cell

	Active Piece
	Ghost  Piece

	Score int
	Lines int
	Level int

	Held    Variant
	HasHeld bool
	CanHold bool
	Preview []Variant

	State        State
	Quitted      bool
	DropInterval time.Duration
	Stats        Stats
}

// Snapshot captures the current session state.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Width:        s.board.Width(),
		Height:       s.board.Height(),
		Active:       s.active,
		Ghost:        s.Ghost(),
		Score:        s.score,
		Lines:        s.lines,
		Level:        s.level,
		Held:         s.held,
		HasHeld:      s.hasHeld,
		CanHold:      s.CanHold(),
		Preview:      s.Preview(s.cfg.Preview),
		State:        s.state,
		Quitted:      s.quit,
		DropInterval: s.DropInterval(),
		Stats:        s.stats,
	}
	snap.Cells = s.compose(snap.Ghost)
	return snap
}

// compose overlays the ghost and the falling piece on a copy of the locked
// grid. The falling piece wins where the two overlap.
func (s *Session) compose(ghost Piece) []Cell {
	cells := make([]Cell, len(s.board.cells))
	copy(cells, s.board.cells)
	if s.state != StateFalling {
		return cells
	}

	overlay := intmap.New[int, Cell](8)
	color := s.active.Color()
	if s.cfg.Ghost {
		for _, p := range ghost.Cells() {
			overlay.Put(s.board.index(p.Row, p.Col), Cell{Color: color, Glyph: GlyphGhost, Variant: ghost.Variant})
		}
	}
	for _, p := range s.active.Cells() {
		overlay.Put(s.board.index(p.Row, p.Col), Cell{Filled: true, Color: color, Glyph: GlyphActive, Variant: s.active.Variant})
	}

	for i, c := range overlay.All() {
		cells[i] = c
	}
	return cells
}

// At returns the composed cell at row, col.
func (s Snapshot) At(row, col int) Cell {
	if row < 0 || row >= s.Height || col < 0 || col >= s.Width {
		return emptyCell
	}
	return s.Cells[row*s.Width+col]
}

// Rows iterates the composed grid top to bottom.
func (s Snapshot) Rows() iter.Seq2[int, []Cell] {
	return func(yield func(int, []Cell) bool) {
		for row := range s.Height {
			start := row * s.Width
			if !yield(row, s.Cells[start:start+s.Width]) {
				return
			}
		}
	}
}
