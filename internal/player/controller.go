// Package player holds the fly-camera controller: where the viewer is, where
// it looks and which way the keyboard is pushing it.
package player

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"teapots/internal/config"
)

// Axis indexes the movement intent vector.
type Axis int

const (
	AxisStrafe  Axis = iota // A/D, +1 is right
	AxisUp                  // Q/E, +1 is up
	AxisForward             // S/W, +1 is forward
)

// Controller is the single camera/player state of a run.
type Controller struct {
	Position mgl32.Vec3
	Yaw      float32 // radians
	Pitch    float32 // radians, kept inside MaxPitch

	// Intent is indexed by Axis; every component is -1, 0 or 1.
	Intent mgl32.Vec3
}

// MaxPitch is the largest pitch magnitude the controller allows.
const MaxPitch = float32(math.Pi/2 - config.PitchMargin)

// New returns a controller at the origin looking along +X.
func New() *Controller {
	return &Controller{}
}

// SetIntent overwrites one axis of the movement intent. Values other than
// -1, 0 and 1 are clamped to that set by sign.
func (c *Controller) SetIntent(axis Axis, value float32) {
	switch {
	case value > 0:
		value = 1
	case value < 0:
		value = -1
	default:
		value = 0
	}
	c.Intent[axis] = value
}

// Move integrates the current intent over dt seconds.
func (c *Controller) Move(dt float32) {
	step := c.WorldMove().Mul(dt * config.MoveSpeed)
	c.Position = c.Position.Add(step)
}

// WorldMove converts the camera-local intent into a world-space vector. Only
// yaw rotates it; the vertical component passes through unchanged.
func (c *Controller) WorldMove() mgl32.Vec3 {
	forward := c.Forward()
	right := c.Right()
	return mgl32.Vec3{
		forward[0]*c.Intent[AxisForward] + right[0]*c.Intent[AxisStrafe],
		c.Intent[AxisUp],
		forward[2]*c.Intent[AxisForward] + right[2]*c.Intent[AxisStrafe],
	}
}
