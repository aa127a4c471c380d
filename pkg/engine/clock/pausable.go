package clock

import "time"

// PausableClock derives game time from a TimeProvider, excluding paused spans.
// While paused, Now returns the instant the pause began.
// It is not safe for concurrent use; the game loop owns it.
type PausableClock struct {
	source TimeProvider

	paused      bool
	pauseStart  time.Time
	totalPaused time.Duration
}

// NewPausableClock creates a running clock on top of source
func NewPausableClock(source TimeProvider) *PausableClock {
	if source == nil {
		source = SystemTime{}
	}
	return &PausableClock{source: source}
}

// Now returns the current game time
func (c *PausableClock) Now() time.Time {
	if c.paused {
		return c.pauseStart.Add(-c.totalPaused)
	}
	return c.source.Now().Add(-c.totalPaused)
}

// Pause stops game time advancement
func (c *PausableClock) Pause() {
	if c.paused {
		return
	}
	c.paused = true
	c.pauseStart = c.source.Now()
}

// Resume continues game time advancement
func (c *PausableClock) Resume() {
	if !c.paused {
		return
	}
	c.totalPaused += c.source.Now().Sub(c.pauseStart)
	c.paused = false
	c.pauseStart = time.Time{}
}

// IsPaused returns the current pause state
func (c *PausableClock) IsPaused() bool {
	return c.paused
}

// TotalPaused returns the cumulative pause duration, including a pause in progress
func (c *PausableClock) TotalPaused() time.Duration {
	total := c.totalPaused
	if c.paused {
		total += c.source.Now().Sub(c.pauseStart)
	}
	return total
}
