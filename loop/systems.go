package loop

import (
	"time"

	"github.com/plus3/tetrad/tetris"
	"github.com/plus3/tetrad/tetris/autoplay"
)

// AutoplaySystem lets a player pick one intent every Interval of unpaused
// time. An Interval of zero moves on every frame.
type AutoplaySystem struct {
	Player   *autoplay.Player
	Interval time.Duration

	elapsed time.Duration
}

func (a *AutoplaySystem) Execute(f *Frame) {
	if f.Paused || f.Session.Over() {
		return
	}
	a.elapsed += f.DeltaTime
	if a.elapsed < a.Interval {
		return
	}
	a.elapsed -= a.Interval
	if intent, ok := a.Player.Next(f.Session); ok {
		f.Commands.Push(intent)
	}
}

// ApplySystem flushes the buffered intents into the session.
type ApplySystem struct {
	// Applied counts the intents that changed the session.
	Applied int
}

func (a *ApplySystem) Execute(f *Frame) {
	a.Applied += f.Commands.Flush(f.Session)
}

// GravitySystem advances the session clock while the game is not paused.
type GravitySystem struct {
	// Rows counts the gravity steps taken.
	Rows int
}

func (g *GravitySystem) Execute(f *Frame) {
	if f.Paused {
		return
	}
	g.Rows += f.Session.Advance(f.DeltaTime)
}

// SnapshotSystem keeps the state at the end of the latest frame.
type SnapshotSystem struct {
	Last tetris.Snapshot
}

func (s *SnapshotSystem) Execute(f *Frame) {
	s.Last = f.Session.Snapshot()
}
