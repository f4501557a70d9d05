package renderer

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Scene is what the update step hands to the renderer each frame
type Scene struct {
	Position  mgl32.Vec3
	Direction mgl32.Vec3
	Spin      float32 // radians, shared by every instance
	Instances []mgl32.Vec3
	Colour    mgl32.Vec3

	FPS         float32
	ShowOverlay bool
}

// RenderContext provides shared context for all renderables
type RenderContext struct {
	Scene *Scene
	View  mgl32.Mat4
	Proj  mgl32.Mat4
	Spin  mgl32.Mat4
	Light mgl32.Vec3
}

// Renderable interface defines the lifecycle for renderable features
type Renderable interface {
	Init() error
	Render(ctx RenderContext)
	Dispose()
	SetViewport(width, height int)
}
