// Package scene owns the teapot instances: where they are, how new ones are
// placed and how they drift toward the camera.
package scene

import (
	"math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl32"
)

// Population is an ordered, append-only set of instance positions.
//
// Spawning has no cap: with a nonzero spawn rate the slice grows for as long
// as the program runs.
type Population struct {
	positions []mgl32.Vec3
	spread    float32
	rng       *rand.Rand
}

// NewPopulation places n instances uniformly in [-spread, spread) on each axis
// using a generator seeded with seed. The same seed always yields the same
// layout.
func NewPopulation(n int, spread float32, seed int64) *Population {
	p := &Population{
		positions: make([]mgl32.Vec3, 0, n),
		spread:    spread,
		rng:       rand.New(rand.NewSource(seed)),
	}
	p.Spawn(n)
	return p
}

// Positions returns the live backing slice. Callers may read it; Follow and
// Spawn are the only writers.
func (p *Population) Positions() []mgl32.Vec3 {
	return p.positions
}

// Len returns the number of instances.
func (p *Population) Len() int {
	return len(p.positions)
}

// Spawn appends n freshly sampled instances.
func (p *Population) Spawn(n int) {
	for range n {
		p.positions = append(p.positions, mgl32.Vec3{
			p.sample(),
			p.sample(),
			p.sample(),
		})
	}
}

// Follow moves every instance toward target by factor of the remaining
// distance. A factor of 1 snaps onto the target; callers keep it <= 1.
func (p *Population) Follow(target mgl32.Vec3, factor float32) {
	if factor == 0 {
		return
	}
	for i := range p.positions {
		pos := &p.positions[i]
		pos[0] += (target[0] - pos[0]) * factor
		pos[1] += (target[1] - pos[1]) * factor
		pos[2] += (target[2] - pos[2]) * factor
	}
}

// sample draws one coordinate from [-spread, spread).
func (p *Population) sample() float32 {
	lo, hi := -p.spread, p.spread
	v := lo + p.rng.Float32()*(hi-lo)
	// Rounding can land exactly on hi for some spreads.
	if hi > lo && v >= hi {
		v = math.Nextafter32(hi, lo)
	}
	return v
}
