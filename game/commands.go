package game

// Commands buffers operations that systems request during a frame and that
// run after every system has executed. A lock requested mid-frame therefore
// never changes the chamber under a later system.
type Commands struct {
	lock    bool
	restart bool
	defers  []func()
}

func newCommands() *Commands {
	return &Commands{}
}

// Lock queues settling the falling piece and promoting the next one.
func (c *Commands) Lock() {
	c.lock = true
}

// Restart queues discarding the current game for a new one.
func (c *Commands) Restart() {
	c.restart = true
}

// Defer queues a function execution operation.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// Flush applies all queued operations to s in order: lock, restart, then
// deferred functions. The buffer is reset afterwards.
func (c *Commands) Flush(s *Session) {
	if c.lock {
		s.lock()
	}

	if c.restart {
		s.Restart()
	}

	for _, fn := range c.defers {
		fn()
	}

	c.lock = false
	c.restart = false
	c.defers = c.defers[:0]
}
