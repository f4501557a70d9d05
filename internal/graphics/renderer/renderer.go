package renderer

import (
	"fmt"

	"teapots/internal/config"
	"teapots/internal/graphics"
	"teapots/internal/profiling"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Renderer orchestrates rendering via renderable features
type Renderer struct {
	renderables []Renderable
	camera      *graphics.Camera
}

// NewRenderer creates a new renderer with the given renderables
func NewRenderer(width, height int, rs ...Renderable) (*Renderer, error) {
	// Configure OpenGL
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.DepthMask(true)
	// Cull clockwise faces
	gl.Enable(gl.CULL_FACE)
	gl.FrontFace(gl.CCW)
	gl.CullFace(gl.BACK)
	gl.Viewport(0, 0, int32(width), int32(height))

	renderer := &Renderer{
		renderables: rs,
		camera:      graphics.NewCamera(width, height),
	}

	// Initialize all renderables
	for i, r := range rs {
		if err := r.Init(); err != nil {
			// Dispose the ones that made it
			for j := i - 1; j >= 0; j-- {
				rs[j].Dispose()
			}
			return nil, fmt.Errorf("init renderable %d: %w", i, err)
		}
		r.SetViewport(width, height)
	}

	return renderer, nil
}

// Render clears the frame and draws every feature. Presenting is left to the
// window.
func (r *Renderer) Render(scene *Scene) {
	defer profiling.Track("renderer.Render")()

	// Clear the screen
	gl.ClearColor(0.0, 0.0, 0.0, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	ctx := RenderContext{
		Scene: scene,
		View:  r.camera.GetViewMatrix(scene.Position, scene.Direction),
		Proj:  r.camera.GetProjectionMatrix(),
		Spin:  graphics.SpinMatrix(scene.Spin),
		Light: config.LightDirection,
	}

	// Render all features
	for _, renderable := range r.renderables {
		renderable.Render(ctx)
	}
}

// Dispose cleans up all renderables in reverse order
func (r *Renderer) Dispose() {
	// Dispose in reverse order
	for i := len(r.renderables) - 1; i >= 0; i-- {
		r.renderables[i].Dispose()
	}
}

// UpdateViewport resizes the GL viewport and every feature to a new
// framebuffer size.
func (r *Renderer) UpdateViewport(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
	r.camera.SetViewport(width, height)
	for _, renderable := range r.renderables {
		renderable.SetViewport(width, height)
	}
}
