package graphics

import (
	"github.com/go-gl/mathgl/mgl32"
)

// WorldUp is the fixed up vector of the view.
var WorldUp = mgl32.Vec3{0, 1, 0}

// Camera handles the view and projection matrices
type Camera struct {
	Width     int
	Height    int
	FOV       float32 // degrees
	NearPlane float32
	FarPlane  float32
}

func NewCamera(width, height int) *Camera {
	return &Camera{
		Width:     width,
		Height:    height,
		FOV:       60.0,
		NearPlane: 0.1,
		FarPlane:  1024.0,
	}
}

// SetViewport records a new drawable size.
func (c *Camera) SetViewport(width, height int) {
	c.Width = width
	c.Height = height
}

func (c *Camera) GetProjectionMatrix() mgl32.Mat4 {
	return Perspective(c.Width, c.Height, mgl32.DegToRad(c.FOV), c.NearPlane, c.FarPlane)
}

func (c *Camera) GetViewMatrix(position, direction mgl32.Vec3) mgl32.Mat4 {
	return ViewMatrix(position, direction, WorldUp)
}
