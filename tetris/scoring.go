package tetris

import "time"

// ScoringPolicy decides points, levels and gravity speed. Session calls it
// and never hard-codes any of these numbers itself.
type ScoringPolicy interface {
	// SoftDrop returns the points for one successful manual down move.
	SoftDrop(level int) int
	// HardDrop returns the points for a hard drop over rows rows.
	HardDrop(level, rows int) int
	// LineClear returns the points for clearing lines rows in one lock.
	LineClear(level, lines int) int
	// Level returns the level reached after clearing lines rows in total.
	Level(lines int) int
	// DropInterval returns the gravity period at level. Session clamps the
	// result to its configured floor.
	DropInterval(level int) time.Duration
}

// ClassicScoring is the default policy.
//
//   - soft drop: level points per row
//   - hard drop: 2 × level points per row
//   - line clears: 100, 300, 500, 1000 × level for 1 to 4 rows
//   - level: lines/10 + 1
//   - gravity: 1000ms − 100ms per level
type ClassicScoring struct{}

var lineClearBase = [...]int{0, 100, 300, 500, 1000}

func (ClassicScoring) SoftDrop(level int) int {
	return level
}

func (ClassicScoring) HardDrop(level, rows int) int {
	return 2 * level * rows
}

// LineClear extrapolates past four rows by 500 points per extra row.
func (ClassicScoring) LineClear(level, lines int) int {
	if lines <= 0 {
		return 0
	}
	if lines < len(lineClearBase) {
		return lineClearBase[lines] * level
	}
	extra := lines - (len(lineClearBase) - 1)
	return (lineClearBase[len(lineClearBase)-1] + 500*extra) * level
}

func (ClassicScoring) Level(lines int) int {
	return lines/10 + 1
}

func (ClassicScoring) DropInterval(level int) time.Duration {
	return time.Second - time.Duration(level)*100*time.Millisecond
}

// NoScoring awards nothing and keeps the game at level 1 with a constant
// one second gravity.
type NoScoring struct{}

func (NoScoring) SoftDrop(int) int { return 0 }
func (NoScoring) HardDrop(int, int) int { return 0 }
func (NoScoring) LineClear(int, int) int { return 0 }
func (NoScoring) Level(int) int { return 1 }
func (NoScoring) DropInterval(int) time.Duration { return time.Second }
