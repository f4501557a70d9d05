package teapots

import (
	"fmt"

	"teapots/assets"
	"teapots/internal/config"
	"teapots/internal/graphics"
	renderer "teapots/internal/graphics/renderer"
	"teapots/internal/profiling"
	"teapots/internal/teapot"

	"github.com/go-gl/mathgl/mgl32"
)

// Teapots draws one teapot per instance position
type Teapots struct {
	shader   *graphics.Shader
	mesh     *graphics.Mesh
	modelLoc int32
}

// NewTeapots creates a new teapots renderable
func NewTeapots() *Teapots {
	return &Teapots{}
}

// Init compiles the shader and uploads the mesh
func (t *Teapots) Init() error {
	var err error
	t.shader, err = graphics.NewShader(assets.TeapotVertexShader, assets.TeapotFragmentShader)
	if err != nil {
		return fmt.Errorf("teapot shader: %w", err)
	}

	m := teapot.Build()
	t.mesh, err = graphics.NewMesh(m.VertexData(), m.Indices)
	if err != nil {
		t.shader.Delete()
		return fmt.Errorf("teapot mesh: %w", err)
	}

	t.modelLoc = t.shader.Location("model")
	return nil
}

// Render issues one draw call per instance with shared uniforms
func (t *Teapots) Render(ctx renderer.RenderContext) {
	defer profiling.Track("renderer.renderTeapots")()

	t.shader.Use()
	t.shader.SetMatrix4("view", &ctx.View[0])
	t.shader.SetMatrix4("perspective", &ctx.Proj[0])
	t.shader.SetMatrix4("spin", &ctx.Spin[0])
	t.shader.SetVector3("lightDir", ctx.Light.X(), ctx.Light.Y(), ctx.Light.Z())
	c := ctx.Scene.Colour
	t.shader.SetVector3("colour", c.X(), c.Y(), c.Z())

	t.mesh.Bind()
	for _, pos := range ctx.Scene.Instances {
		model := ModelMatrix(pos)
		t.shader.SetMatrix4At(t.modelLoc, &model[0])
		t.mesh.Draw()
	}
}

// ModelMatrix places a teapot at pos at world scale
func ModelMatrix(pos mgl32.Vec3) mgl32.Mat4 {
	return graphics.MoveAndScale(pos, config.ModelScale)
}

// Dispose cleans up OpenGL resources
func (t *Teapots) Dispose() {
	if t.mesh != nil {
		t.mesh.Delete()
	}
	if t.shader != nil {
		t.shader.Delete()
	}
}

// SetViewport is a no-op; the projection comes from the shared camera
func (t *Teapots) SetViewport(width, height int) {}
