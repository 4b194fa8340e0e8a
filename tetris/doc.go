// Package tetris implements a falling-block puzzle engine.
//
// The engine is made of a small number of pieces:
//
//   - Board holds the locked cells of the playfield. The falling piece is
//     never written into it until it locks.
//   - Piece is a tetromino variant together with a rotation state and a
//     position. Rotation states come from a fixed lookup table.
//   - Randomizer produces the sequence of upcoming variants. Bag is the
//     7-bag randomizer; Uniform draws each piece independently.
//   - Session owns a Board and a Randomizer and runs the
//     spawn/fall/lock/clear cycle, the hold slot, scoring and levels.
//
// A Session is not safe for concurrent use. Hosts that receive input on
// several goroutines should funnel it through a single consumer, for
// example by filling a Commands buffer on the game loop goroutine and
// flushing it once per frame.
//
// Renderers read a Snapshot, which composes the locked grid with the ghost
// and active piece overlays.
package tetris
