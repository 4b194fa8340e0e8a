package tetris_test

import (
	"testing"
	"time"

	"github.com/plus3/tetrad/tetris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSession(t *testing.T, opts ...tetris.Option) *tetris.Session {
	t.Helper()
	s, err := tetris.NewSession(tetris.DefaultConfig(), opts...)
	require.NoError(t, err)
	return s
}

func sequence(vs ...tetris.Variant) tetris.Option {
	return tetris.WithRandomizer(tetris.NewSequence(vs...))
}

func TestNewSessionSpawnsFirstPiece(t *testing.T) {
	var transitions [][2]tetris.State
	s := newSession(t, sequence(tetris.T), tetris.WithObserver(tetris.ObserverFuncs{
		StateChange: func(from, to tetris.State) {
			transitions = append(transitions, [2]tetris.State{from, to})
		},
	}))

	assert.Equal(t, tetris.StateFalling, s.State())
	assert.Equal(t, tetris.Spawn(tetris.T, 10), s.Active())
	assert.Equal(t, [][2]tetris.State{{tetris.StateSpawning, tetris.StateFalling}}, transitions)
	assert.Equal(t, 1, s.Level())
	assert.Zero(t, s.Score())
	assert.True(t, s.CanHold())
	assert.NotEqual(t, s.ID(), newSession(t).ID())
}

func TestNewSessionRejectsInvalidConfig(t *testing.T) {
	cfg := tetris.DefaultConfig()
	cfg.Width = 2
	_, err := tetris.NewSession(cfg)
	assert.ErrorIs(t, err, tetris.ErrInvalidConfig)
}

func TestConfigReportsSuppliedBoardSize(t *testing.T) {
	s := newSession(t, tetris.WithBoard(tetris.NewBoard(6, 9)))

	cfg := s.Config()
	assert.Equal(t, 6, cfg.Width)
	assert.Equal(t, 9, cfg.Height)
	assert.Equal(t, s.Board().Width(), s.Snapshot().Width)
}

func TestIPieceFallsToTheFloorThenLocks(t *testing.T) {
	var locked []tetris.Piece
	s := newSession(t, sequence(tetris.I, tetris.O), tetris.WithObserver(tetris.ObserverFuncs{
		Lock: func(p tetris.Piece) { locked = append(locked, p) },
	}))

	for _, c := range s.Active().Cells() {
		require.Equal(t, 1, c.Row)
	}
	for i := range 22 {
		require.True(t, s.SoftDrop(), "move %d", i)
	}
	for _, c := range s.Active().Cells() {
		require.Equal(t, 23, c.Row)
	}

	assert.False(t, s.SoftDrop(), "the bottom is reached")
	require.Len(t, locked, 1)
	assert.Equal(t, tetris.I, locked[0].Variant)
	assert.Equal(t, 22, s.Score(), "one point per soft-dropped row at level 1")

	board := s.Board()
	for col := 3; col <= 6; col++ {
		assert.True(t, board.At(23, col).Filled)
	}
	assert.Equal(t, tetris.O, s.Active().Variant)
	assert.Equal(t, 1, s.Stats().Locked)
}

func TestMovesAreRejectedAtWalls(t *testing.T) {
	s := newSession(t, sequence(tetris.I))

	for range 3 {
		require.True(t, s.MoveLeft())
	}
	before := s.Active()
	assert.False(t, s.MoveLeft())
	assert.Equal(t, before, s.Active())
	assert.Equal(t, 0, s.Active().MinCol())

	for range 6 {
		require.True(t, s.MoveRight())
	}
	assert.False(t, s.MoveRight())
}

func TestMovesAreRejectedByLockedCells(t *testing.T) {
	b := tetris.NewBoard(10, 24)
	b.Fill(1, 2, tetris.Z)
	s := newSession(t, sequence(tetris.I), tetris.WithBoard(b))

	assert.False(t, s.MoveLeft())
	assert.True(t, s.MoveRight())
}

func TestRotationIsAllOrNothing(t *testing.T) {
	s := newSession(t, sequence(tetris.I))
	require.True(t, s.RotateCW())
	assert.Equal(t, tetris.RotationRight, s.Active().Rotation)

	// Vertical I in column 5; push it against the right wall.
	for range 4 {
		require.True(t, s.MoveRight())
	}
	before := s.Active()
	require.Equal(t, 9, before.Cells()[0].Col)

	// Turning back to horizontal would need columns 7 to 10.
	assert.False(t, s.RotateCCW())
	assert.Equal(t, before, s.Active())
}

func TestRotationBlockedByLockedCell(t *testing.T) {
	b := tetris.NewBoard(10, 24)
	b.Fill(2, 4, tetris.L)
	s := newSession(t, sequence(tetris.T), tetris.WithBoard(b))

	// Both quarter turns of T need (2,4).
	before := s.Active()
	assert.False(t, s.RotateCW())
	assert.False(t, s.RotateCCW())
	assert.Equal(t, before, s.Active())

	require.True(t, s.MoveRight())
	assert.True(t, s.RotateCW())
}

func TestHardDropScoresTwicePerRow(t *testing.T) {
	s := newSession(t, sequence(tetris.I, tetris.T), tetris.WithBoard(tetris.NewBoard(10, 7)))

	ghost := s.Ghost()
	require.Equal(t, 5, ghost.Row-s.Active().Row)

	before := s.Score()
	require.True(t, s.HardDrop())
	assert.Equal(t, 10, s.Score()-before)
	assert.Equal(t, 1, s.Stats().HardDrops)
	assert.Equal(t, 5, s.Stats().HardDropRows)
	assert.Equal(t, tetris.T, s.Active().Variant)
}

func TestGhostFollowsActivePiece(t *testing.T) {
	b := tetris.NewBoard(10, 24)
	b.Fill(20, 0, tetris.S)
	s := newSession(t, sequence(tetris.I), tetris.WithBoard(b))

	assert.Equal(t, 22, s.Ghost().Row)
	for range 3 {
		s.MoveLeft()
	}
	assert.Equal(t, 18, s.Ghost().Row, "rests on the block in column 0")
	assert.Equal(t, s.Active().Col, s.Ghost().Col)
	assert.Equal(t, s.Active().Rotation, s.Ghost().Rotation)
}

func TestHoldScenario(t *testing.T) {
	var held []tetris.Variant
	s := newSession(t, sequence(tetris.T, tetris.S, tetris.Z, tetris.O), tetris.WithObserver(tetris.ObserverFuncs{
		Hold: func(v tetris.Variant) { held = append(held, v) },
	}))

	// The first hold pulls the next queued piece into play.
	require.True(t, s.RotateCW())
	require.True(t, s.Hold())
	assert.Equal(t, tetris.S, s.Active().Variant)
	v, ok := s.Held()
	assert.True(t, ok)
	assert.Equal(t, tetris.T, v)
	assert.False(t, s.CanHold())

	// A second hold before any lock is refused.
	before := s.Active()
	assert.False(t, s.Hold())
	assert.Equal(t, before, s.Active())

	// After a lock the next piece may be swapped for the held one, which
	// comes back in its spawn orientation.
	require.True(t, s.HardDrop())
	assert.Equal(t, tetris.Z, s.Active().Variant)
	assert.True(t, s.CanHold())
	require.True(t, s.RotateCW())
	require.True(t, s.Hold())
	assert.Equal(t, tetris.Spawn(tetris.T, 10), s.Active())
	v, _ = s.Held()
	assert.Equal(t, tetris.Z, v)

	// The swap did not consume the queue.
	require.True(t, s.HardDrop())
	assert.Equal(t, tetris.O, s.Active().Variant)

	assert.Equal(t, []tetris.Variant{tetris.T, tetris.Z}, held)
	assert.Equal(t, 2, s.Stats().Holds)
	assert.Equal(t, 4, s.Stats().Pieces())
}

func TestHoldDisabled(t *testing.T) {
	cfg := tetris.DefaultConfig()
	cfg.Hold = false
	s, err := tetris.NewSession(cfg, sequence(tetris.T, tetris.S))
	require.NoError(t, err)

	assert.False(t, s.CanHold())
	assert.False(t, s.Hold())
	assert.Equal(t, tetris.T, s.Active().Variant)
}

func TestHoldRefusedWhenIncomingPieceIsBlocked(t *testing.T) {
	b := tetris.NewBoard(10, 24)
	b.Fill(0, 5, tetris.J) // where O would spawn, but not T
	s := newSession(t, sequence(tetris.T, tetris.O, tetris.I), tetris.WithBoard(b))
	require.Equal(t, tetris.T, s.Active().Variant)
	require.True(t, s.MoveLeft())
	before := s.Active()

	assert.False(t, s.Hold())
	assert.Equal(t, before, s.Active())
	_, ok := s.Held()
	assert.False(t, ok)
	assert.Equal(t, []tetris.Variant{tetris.O}, s.Preview(1), "queue was not consumed")
}

func TestLineClearScoresAndShifts(t *testing.T) {
	b := tetris.NewBoard(10, 24)
	fillRow(b, 23, 0)
	b.Fill(22, 5, tetris.T)

	var cleared []int
	s := newSession(t, sequence(tetris.I, tetris.O), tetris.WithBoard(b), tetris.WithObserver(tetris.ObserverFuncs{
		LinesCleared: func(rows []int) { cleared = rows },
	}))

	// Stand the I up in column 4, then walk it to column 0.
	require.True(t, s.RotateCCW())
	for range 4 {
		require.True(t, s.MoveLeft())
	}
	require.True(t, s.HardDrop())

	assert.Equal(t, []int{23}, cleared)
	assert.Equal(t, 1, s.Lines())
	assert.Equal(t, 2*20+100, s.Score())
	assert.Equal(t, 1, s.Stats().Clears[1])

	board := s.Board()
	assert.True(t, board.At(23, 5).Filled, "row 22 dropped into row 23")
	assert.True(t, board.At(23, 0).Filled)
	assert.False(t, board.At(23, 1).Filled)
	for row := 21; row <= 22; row++ {
		assert.True(t, board.At(row, 0).Filled)
	}
	assert.False(t, board.At(20, 0).Filled)
}

func TestLevelAdvancesEveryTenLines(t *testing.T) {
	// A 4 wide board where every O completes two rows.
	cfg := tetris.DefaultConfig()
	cfg.Width = 4
	cfg.Height = 6
	s, err := tetris.NewSession(cfg, sequence(tetris.O))
	require.NoError(t, err)

	for range 5 {
		require.True(t, s.MoveLeft())
		require.True(t, s.HardDrop())
		require.True(t, s.MoveRight())
		require.True(t, s.HardDrop())
	}

	assert.Equal(t, 10, s.Lines())
	assert.Equal(t, 2, s.Level())
	assert.Equal(t, 5, s.Stats().Clears[2])
	assert.Equal(t, 800*time.Millisecond, s.DropInterval())
}

type fixedLevel struct {
	tetris.ClassicScoring
	level int
}

func (f fixedLevel) Level(int) int { return f.level }

func TestDropIntervalIsClamped(t *testing.T) {
	tests := []struct {
		level int
		want  time.Duration
	}{
		{1, 900 * time.Millisecond},
		{5, 500 * time.Millisecond},
		{9, 100 * time.Millisecond},
		{10, 50 * time.Millisecond},
		{25, 50 * time.Millisecond},
	}

	for _, tt := range tests {
		s := newSession(t, tetris.WithScoring(fixedLevel{level: tt.level}))
		assert.Equal(t, tt.level, s.Level())
		assert.Equal(t, tt.want, s.DropInterval(), "level %d", tt.level)
	}
}

func TestAdvanceAppliesGravity(t *testing.T) {
	s := newSession(t, sequence(tetris.I))
	row := s.Active().Row

	assert.Equal(t, 0, s.Advance(899*time.Millisecond))
	assert.Equal(t, row, s.Active().Row)
	assert.Equal(t, 1, s.Advance(time.Millisecond))
	assert.Equal(t, row+1, s.Active().Row)
	assert.Equal(t, 2, s.Advance(1800*time.Millisecond))
	assert.Equal(t, row+3, s.Active().Row)
	assert.Zero(t, s.Score(), "gravity does not score")
	assert.Zero(t, s.Advance(-time.Second))
}

func TestAdvanceLocksRestingPiece(t *testing.T) {
	s := newSession(t, sequence(tetris.I, tetris.T), tetris.WithBoard(tetris.NewBoard(10, 4)))

	// Two rows of fall, then a step that locks.
	assert.Equal(t, 3, s.Advance(2700*time.Millisecond))
	assert.Equal(t, 1, s.Stats().Locked)
	assert.Equal(t, tetris.T, s.Active().Variant)
}

func TestGameOverWhenSpawnIsBlocked(t *testing.T) {
	var overs int
	s := newSession(t, sequence(tetris.I), tetris.WithBoard(tetris.NewBoard(10, 4)), tetris.WithObserver(tetris.ObserverFuncs{
		GameOver: func(tetris.Stats) { overs++ },
	}))

	require.True(t, s.HardDrop())
	require.True(t, s.HardDrop())
	require.Equal(t, tetris.StateFalling, s.State())
	require.True(t, s.HardDrop(), "locks without moving")

	assert.Equal(t, tetris.StateGameOver, s.State())
	assert.True(t, s.Over())
	assert.False(t, s.Quitted())
	assert.Equal(t, 1, overs)

	for _, intent := range tetris.Intents {
		assert.False(t, s.Apply(intent), "%s after game over", intent)
	}
	assert.Zero(t, s.Advance(time.Hour))
}

func TestFirstSpawnBlocked(t *testing.T) {
	b := tetris.NewBoard(10, 24)
	b.Fill(1, 4, tetris.O)
	s := newSession(t, sequence(tetris.I), tetris.WithBoard(b))

	assert.Equal(t, tetris.StateGameOver, s.State())
}

func TestLockCycleStates(t *testing.T) {
	var transitions []tetris.State
	s := newSession(t, sequence(tetris.O), tetris.WithObserver(tetris.ObserverFuncs{
		StateChange: func(_, to tetris.State) { transitions = append(transitions, to) },
	}))
	transitions = nil

	require.True(t, s.HardDrop())
	assert.Equal(t, []tetris.State{
		tetris.StateLocking,
		tetris.StateClearing,
		tetris.StateSpawning,
		tetris.StateFalling,
	}, transitions)
}

func TestQuit(t *testing.T) {
	s := newSession(t)

	assert.True(t, s.Apply(tetris.IntentQuit))
	assert.True(t, s.Over())
	assert.True(t, s.Quitted())
	assert.False(t, s.Quit())
}

func TestApplyDispatches(t *testing.T) {
	s := newSession(t, sequence(tetris.T))
	col := s.Active().Col

	assert.True(t, s.Apply(tetris.IntentMoveRight))
	assert.Equal(t, col+1, s.Active().Col)
	assert.True(t, s.Apply(tetris.IntentMoveLeft))
	assert.True(t, s.Apply(tetris.IntentRotateCW))
	assert.True(t, s.Apply(tetris.IntentRotateCCW))
	assert.True(t, s.Apply(tetris.IntentSoftDrop))
	assert.Equal(t, 1, s.Active().Row)
	assert.True(t, s.Apply(tetris.IntentHold))
	assert.True(t, s.Apply(tetris.IntentHardDrop))
	assert.False(t, s.Apply(tetris.Intent(200)))
}

func TestNoScoringPolicy(t *testing.T) {
	cfg := tetris.DefaultConfig()
	cfg.Scoring = tetris.ScoringNone
	s, err := tetris.NewSession(cfg, sequence(tetris.I))
	require.NoError(t, err)

	s.SoftDrop()
	s.HardDrop()
	assert.Zero(t, s.Score())
	assert.Equal(t, time.Second, s.DropInterval())
}

func TestPreviewIsCappedByConfig(t *testing.T) {
	cfg := tetris.DefaultConfig()
	cfg.Preview = 3
	s, err := tetris.NewSession(cfg)
	require.NoError(t, err)

	assert.Len(t, s.Preview(7), 3)
	assert.Len(t, s.Preview(1), 1)
}

func TestSeededSessionsMatch(t *testing.T) {
	cfg := tetris.DefaultConfig()
	cfg.Seed = 1234
	a, err := tetris.NewSession(cfg)
	require.NoError(t, err)
	b, err := tetris.NewSession(cfg)
	require.NoError(t, err)

	for range 20 {
		require.Equal(t, a.Active().Variant, b.Active().Variant)
		a.HardDrop()
		b.HardDrop()
	}
}
