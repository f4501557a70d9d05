package platform

// pointerTracker converts absolute cursor positions into deltas.
type pointerTracker struct {
	x, y  float64
	valid bool
}

// Move records a new position and returns the change since the previous
// one. The first position after a reset only seeds the tracker.
func (p *pointerTracker) Move(x, y float64) (dx, dy float64, ok bool) {
	if !p.valid {
		p.x, p.y, p.valid = x, y, true
		return 0, 0, false
	}
	dx, dy = x-p.x, y-p.y
	p.x, p.y = x, y
	if dx == 0 && dy == 0 {
		return 0, 0, false
	}
	return dx, dy, true
}

// Reset forgets the last position.
func (p *pointerTracker) Reset() {
	p.valid = false
}
