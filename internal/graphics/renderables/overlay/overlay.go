package overlay

import (
	"fmt"
	"math"

	"teapots/internal/graphics"
	renderer "teapots/internal/graphics/renderer"
	"teapots/internal/profiling"

	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/image/font/gofont/gomono"
)

const (
	fontPixels = 18
	margin     = 8
)

var textColour = mgl32.Vec3{1, 1, 1}

// Overlay prints the frame rate and teapot count in the top left corner
type Overlay struct {
	font *graphics.FontRenderer

	// smoothed frame rate so the digits stay readable
	fps float32
}

// NewOverlay creates a new overlay renderable
func NewOverlay() *Overlay {
	return &Overlay{}
}

// Init bakes the font atlas
func (o *Overlay) Init() error {
	atlas, err := graphics.BuildFontAtlas(gomono.TTF, fontPixels)
	if err != nil {
		return fmt.Errorf("overlay font: %w", err)
	}
	o.font, err = graphics.NewFontRenderer(atlas, 1, 1)
	if err != nil {
		return err
	}
	return nil
}

// Render draws the readout when enabled
func (o *Overlay) Render(ctx renderer.RenderContext) {
	o.fps = Smooth(o.fps, ctx.Scene.FPS)
	if !ctx.Scene.ShowOverlay {
		return
	}
	defer profiling.Track("renderer.renderOverlay")()

	text := Text(o.fps, len(ctx.Scene.Instances))
	_, h := o.font.Measure(text, 1)
	o.font.Render(text, margin, margin+h, 1, textColour)
}

// Text formats the overlay line
func Text(fps float32, teapots int) string {
	if math.IsInf(float64(fps), 0) || math.IsNaN(float64(fps)) {
		return fmt.Sprintf("FPS: inf  teapots: %d", teapots)
	}
	return fmt.Sprintf("FPS: %.0f  teapots: %d", fps, teapots)
}

// Smooth blends a new frame-rate sample into the running value. Infinite
// samples are skipped.
func Smooth(current, sample float32) float32 {
	if math.IsInf(float64(sample), 0) || math.IsNaN(float64(sample)) {
		return current
	}
	if current == 0 {
		return sample
	}
	return current + (sample-current)*0.05
}

// Dispose cleans up OpenGL resources
func (o *Overlay) Dispose() {
	if o.font != nil {
		o.font.Dispose()
	}
}

// SetViewport keeps the text in pixel coordinates
func (o *Overlay) SetViewport(width, height int) {
	if o.font != nil {
		o.font.SetViewport(width, height)
	}
}
