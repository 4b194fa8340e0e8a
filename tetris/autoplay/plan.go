// Package autoplay picks placements for falling pieces and turns them into
// intents. It drives the headless simulator and the demo mode of the front
// ends.
package autoplay

import (
	"slices"

	"github.com/kamstrup/intmap"

	"github.com/plus3/tetrad/tetris"
)

// Weights scale the board features a landing is judged by. Higher scores
// are better, so features that hurt carry negative weights.
type Weights struct {
	Height    float64
	Lines     float64
	Holes     float64
	Bumpiness float64
}

// DefaultWeights is a well known hand-tuned set.
var DefaultWeights = Weights{
	Height:    -0.510066,
	Lines:     0.760666,
	Holes:     -0.35663,
	Bumpiness: -0.184483,
}

// Placement is a reachable landing for a piece.
type Placement struct {
	// Turns is the number of quarter turns from the current orientation:
	// positive for clockwise, negative for counter-clockwise.
	Turns int
	// Shift is the column offset applied after turning.
	Shift int
	// Landing is where the piece comes to rest.
	Landing tetris.Piece
	// Lines is the number of rows the landing completes.
	Lines int
	Score float64
}

// turns are tried in this order; three clockwise turns are reached with
// one counter-clockwise turn instead.
var turns = [...]int{0, 1, 2, -1}

// Plan searches every orientation and column reachable from p by turning
// in place and then shifting sideways, and returns the best landing. It
// reports false only if p itself is not a valid placement.
func Plan(b *tetris.Board, p tetris.Piece, w Weights) (Placement, bool) {
	if !b.IsValidPlacement(p) {
		return Placement{}, false
	}

	seen := intmap.New[uint64, bool](64)
	var best Placement
	found := false

	for _, n := range turns {
		q, ok := turn(b, p, n)
		if !ok {
			continue
		}
		for _, dir := range [...]int{0, -1, 1} {
			shift := 0
			for {
				cand := q.Translate(0, shift)
				if !b.IsValidPlacement(cand) {
					break
				}
				landing := b.Rest(cand)
				key := landingKey(b, landing)
				if _, dup := seen.Get(key); !dup {
					seen.Put(key, true)
					pl := evaluate(b, landing, w)
					pl.Turns, pl.Shift = n, shift
					if !found || pl.Score > best.Score {
						best, found = pl, true
					}
				}
				if dir == 0 {
					break
				}
				shift += dir
			}
		}
	}
	return best, found
}

// turn applies n quarter turns one at a time, failing if any step is blocked.
func turn(b *tetris.Board, p tetris.Piece, n int) (tetris.Piece, bool) {
	d := tetris.Clockwise
	if n < 0 {
		d, n = tetris.CounterClockwise, -n
	}
	for range n {
		p = p.Rotate(d)
		if !b.IsValidPlacement(p) {
			return p, false
		}
	}
	return p, true
}

// landingKey packs the sorted cell indices of a landing into one integer.
func landingKey(b *tetris.Board, p tetris.Piece) uint64 {
	var idx [4]int
	for i, c := range p.Cells() {
		idx[i] = c.Row*b.Width() + c.Col
	}
	slices.Sort(idx[:])
	var key uint64
	for _, i := range idx {
		key = key<<16 | uint64(i)
	}
	return key
}

func evaluate(b *tetris.Board, landing tetris.Piece, w Weights) Placement {
	after := b.Clone()
	after.Lock(landing)
	rows := after.FullRows()
	after.ClearRows(rows)

	f := Measure(after)
	f.Lines = len(rows)
	return Placement{
		Landing: landing,
		Lines:   f.Lines,
		Score:   f.Score(w),
	}
}

// Features are the board measurements the heuristic uses.
type Features struct {
	Height    int
	Lines     int
	Holes     int
	Bumpiness int
}

// Measure computes aggregate column height, holes and bumpiness of b. Lines
// is left at zero.
func Measure(b *tetris.Board) Features {
	var f Features
	prev := -1
	for col := range b.Width() {
		h := b.ColumnHeight(col)
		f.Height += h
		if prev >= 0 {
			f.Bumpiness += abs(h - prev)
		}
		prev = h
		for row := b.Height() - h; row < b.Height(); row++ {
			if !b.At(row, col).Filled {
				f.Holes++
			}
		}
	}
	return f
}

// Score weighs the features.
func (f Features) Score(w Weights) float64 {
	return w.Height*float64(f.Height) +
		w.Lines*float64(f.Lines) +
		w.Holes*float64(f.Holes) +
		w.Bumpiness*float64(f.Bumpiness)
}

// Intents returns the moves that bring a piece to placement pl, ending
// with a hard drop.
func Intents(pl Placement) []tetris.Intent {
	out := make([]tetris.Intent, 0, abs(pl.Turns)+abs(pl.Shift)+1)
	for range abs(pl.Turns) {
		if pl.Turns > 0 {
			out = append(out, tetris.IntentRotateCW)
		} else {
			out = append(out, tetris.IntentRotateCCW)
		}
	}
	for range abs(pl.Shift) {
		if pl.Shift > 0 {
			out = append(out, tetris.IntentMoveRight)
		} else {
			out = append(out, tetris.IntentMoveLeft)
		}
	}
	return append(out, tetris.IntentHardDrop)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
