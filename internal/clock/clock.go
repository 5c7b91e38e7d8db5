// Package clock measures animation time with support for pausing.
package clock

import "time"

type Clock struct {
	now   func() time.Time
	start time.Time

	// time spent paused, excluded from Seconds
	paused   time.Duration
	pausedAt time.Time
	isPaused bool
}

func New() *Clock {
	return NewWithNow(time.Now)
}

// NewWithNow creates a clock reading time from now. Used by tests.
func NewWithNow(now func() time.Time) *Clock {
	return &Clock{now: now, start: now()}
}

// Elapsed returns running time since the clock started, not counting pauses.
func (c *Clock) Elapsed() time.Duration {
	end := c.now()
	if c.isPaused {
		end = c.pausedAt
	}
	return end.Sub(c.start) - c.paused
}

// Seconds is Elapsed as a shader-ready float.
func (c *Clock) Seconds() float32 {
	return float32(c.Elapsed().Seconds())
}

func (c *Clock) Paused() bool {
	return c.isPaused
}

// Toggle pauses a running clock or resumes a paused one.
func (c *Clock) Toggle() {
	if c.isPaused {
		c.paused += c.now().Sub(c.pausedAt)
		c.isPaused = false
		return
	}
	c.pausedAt = c.now()
	c.isPaused = true
}
