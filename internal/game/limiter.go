package game

import (
	"time"
)

// spinWindow is how close to the deadline Wait stops sleeping and spins.
const spinWindow = 200 * time.Microsecond

// FrameLimiter caps the loop at a fixed frame rate. A zero limiter never
// blocks.
type FrameLimiter struct {
	target time.Duration
	next   time.Time
}

// NewFrameLimiter returns a limiter for maxFPS frames per second; 0 or less
// leaves the loop uncapped.
func NewFrameLimiter(maxFPS int) *FrameLimiter {
	l := &FrameLimiter{}
	if maxFPS > 0 {
		l.target = time.Second / time.Duration(maxFPS)
	}
	return l
}

// Wait blocks until the next frame is due. Sleeping covers most of the gap
// and a short spin covers the rest.
func (l *FrameLimiter) Wait() {
	if l.target <= 0 {
		return
	}

	if l.next.IsZero() {
		l.next = time.Now().Add(l.target)
	} else {
		l.next = l.next.Add(l.target)
	}

	for {
		remaining := time.Until(l.next)
		if remaining <= 0 {
			break
		}
		if remaining > spinWindow {
			time.Sleep(remaining - spinWindow)
		}
	}

	// Resync after a hitch instead of racing to catch up
	if late := -time.Until(l.next); late > l.target {
		l.next = time.Now().Add(l.target)
	}
}
