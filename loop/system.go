// Package loop runs a session one frame at a time through an ordered list
// of systems: input, autoplay, command application, gravity and snapshot
// capture. Hosts supply the frame clock and render what the systems leave
// behind.
package loop

import (
	"time"

	"github.com/plus3/tetrad/tetris"
)

// System is one step of a frame. Systems run in registration order and may
// keep state between frames.
type System interface {
	Execute(frame *Frame)
}

// Frame is what a system sees while the scheduler runs it.
type Frame struct {
	Index     int64
	DeltaTime time.Duration
	Session   *tetris.Session
	Commands  *tetris.Commands

	// Paused stops gravity and autoplay. A system may change it; the
	// scheduler carries the value into the next frame.
	Paused bool
}
