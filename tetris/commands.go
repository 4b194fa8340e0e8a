package tetris

// Commands buffers intents so that a host can collect input as it arrives
// and apply it to a session in one place, once per frame. It is not safe
// for concurrent use; it is the single-consumer queue in front of a
// session, not a lock around it.
type Commands struct {
	intents []Intent
	defers  []func(*Session)
}

// NewCommands creates an empty buffer.
func NewCommands() *Commands {
	return &Commands{}
}

// Push queues an intent.
func (c *Commands) Push(intents ...Intent) {
	c.intents = append(c.intents, intents...)
}

// Defer queues a function to run after the queued intents.
func (c *Commands) Defer(fn func(*Session)) {
	c.defers = append(c.defers, fn)
}

// Len returns the number of queued intents.
func (c *Commands) Len() int {
	return len(c.intents)
}

// Flush applies the queued intents to s in order and then runs the
// deferred functions, resetting the buffer. Intents left over once the
// session has ended are dropped. Flush returns the number of intents that
// changed the session.
func (c *Commands) Flush(s *Session) int {
	applied := 0
	for _, intent := range c.intents {
		if s.Over() {
			break
		}
		if s.Apply(intent) {
			applied++
		}
	}

	for _, fn := range c.defers {
		fn(s)
	}

	c.intents = c.intents[:0]
	c.defers = c.defers[:0]
	return applied
}
