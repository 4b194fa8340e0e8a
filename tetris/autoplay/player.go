package autoplay

import "github.com/plus3/tetrad/tetris"

// Player drives a session with Plan.
type Player struct {
	w    Weights
	cmds *tetris.Commands

	// pending holds the rest of the plan for the piece identified by mark.
	// expect is where that piece should be once the intents handed out so
	// far have been applied.
	pending []tetris.Intent
	mark    int
	expect  tetris.Piece
}

// NewPlayer creates a player that judges landings with w.
func NewPlayer(w Weights) *Player {
	return &Player{w: w, cmds: tetris.NewCommands(), mark: -1}
}

// Play plans the falling piece of s, applies the whole plan and reports
// whether the session is still live afterwards.
func (p *Player) Play(s *tetris.Session) bool {
	if s.Over() {
		return false
	}
	p.cmds.Push(p.plan(s)...)
	p.cmds.Flush(s)
	p.pending = nil
	return !s.Over()
}

// Next returns the next intent for s, one step at a time, so that a front
// end can show the piece moving. A new plan is made whenever a new piece
// comes into play, and also when the falling piece is not where the plan
// left it: gravity pulled it down, or an intent was dropped or refused.
func (p *Player) Next(s *tetris.Session) (tetris.Intent, bool) {
	if s.Over() {
		return 0, false
	}
	if m := mark(s); m != p.mark || len(p.pending) == 0 || s.Active() != p.expect {
		p.pending = p.plan(s)
		p.mark = m
		p.expect = s.Active()
	}
	next := p.pending[0]
	p.pending = p.pending[1:]
	p.expect = step(p.expect, next)
	return next, true
}

func (p *Player) plan(s *tetris.Session) []tetris.Intent {
	pl, ok := Plan(s.Board(), s.Active(), p.w)
	if !ok {
		return []tetris.Intent{tetris.IntentHardDrop}
	}
	return Intents(pl)
}

// step returns where piece ends up after intent, for the intents a plan
// is made of before its final hard drop.
func step(piece tetris.Piece, intent tetris.Intent) tetris.Piece {
	switch intent {
	case tetris.IntentMoveLeft:
		return piece.Translate(0, -1)
	case tetris.IntentMoveRight:
		return piece.Translate(0, 1)
	case tetris.IntentRotateCW:
		return piece.Rotate(tetris.Clockwise)
	case tetris.IntentRotateCCW:
		return piece.Rotate(tetris.CounterClockwise)
	}
	return piece
}

// mark changes every time a new piece comes into play.
func mark(s *tetris.Session) int {
	st := s.Stats()
	return st.Locked + st.Holds
}
