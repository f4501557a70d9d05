package player

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"teapots/internal/config"
)

// Look applies a raw pointer delta. Moving right or down turns the view
// right or down.
func (c *Controller) Look(dx, dy float64) {
	c.Yaw -= float32(dx * config.MouseSensitivity)
	c.Pitch -= float32(dy * config.MouseSensitivity)

	// Constrain pitch
	c.Pitch = mgl32.Clamp(c.Pitch, -MaxPitch, MaxPitch)
}

// Forward is the horizontal heading derived from yaw alone.
func (c *Controller) Forward() mgl32.Vec3 {
	s, co := sincos(c.Yaw)
	return mgl32.Vec3{co, 0, s}
}

// Right is the horizontal strafe direction, perpendicular to Forward.
func (c *Controller) Right() mgl32.Vec3 {
	s, co := sincos(c.Yaw)
	return mgl32.Vec3{s, 0, -co}
}

// Direction is the unit look vector built from yaw and pitch.
func (c *Controller) Direction() mgl32.Vec3 {
	ys, yc := sincos(c.Yaw)
	ps, pc := sincos(c.Pitch)
	return mgl32.Vec3{yc * pc, ps, ys * pc}
}

func sincos(a float32) (float32, float32) {
	s, c := math.Sincos(float64(a))
	return float32(s), float32(c)
}
