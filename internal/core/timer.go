package core

import "time"

// FrameClock turns wall-clock readings into the monotonic elapsed and delta
// milliseconds handed to modes.
type FrameClock struct {
	now     func() time.Time
	start   time.Time
	last    time.Time
	elapsed float64
}

// NewFrameClock constructs a clock using now as its time source; nil means
// time.Now.
func NewFrameClock(now func() time.Time) *FrameClock {
	if now == nil {
		now = time.Now
	}
	return &FrameClock{now: now}
}

// Tick samples the time source and returns elapsed and delta milliseconds.
// The first tick reports zero for both. Elapsed never decreases.
func (c *FrameClock) Tick() (elapsedMS, deltaMS float64) {
	t := c.now()
	if c.start.IsZero() {
		c.start = t
		c.last = t
		return 0, 0
	}
	delta := t.Sub(c.last)
	if delta < 0 {
		delta = 0
	}
	c.last = t
	deltaMS = float64(delta) / float64(time.Millisecond)
	c.elapsed += deltaMS
	return c.elapsed, deltaMS
}

// Reset forgets the start time so the next tick reports zero again.
func (c *FrameClock) Reset() {
	c.start = time.Time{}
	c.last = time.Time{}
	c.elapsed = 0
}
