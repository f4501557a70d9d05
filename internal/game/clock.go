package game

import "time"

// FrameClock measures time since the previous frame and since the run began.
type FrameClock struct {
	start time.Time
	last  time.Time
}

// NewFrameClock starts a clock at now.
func NewFrameClock(now time.Time) *FrameClock {
	return &FrameClock{start: now, last: now}
}

// Tick returns the seconds since the previous Tick (or since the start) and
// since the start, then moves the previous-frame mark to now.
func (c *FrameClock) Tick(now time.Time) (dt, elapsed float32) {
	dt = float32(now.Sub(c.last).Seconds())
	elapsed = float32(now.Sub(c.start).Seconds())
	c.last = now
	return dt, elapsed
}
