package graphics

import (
	"fmt"
	"image"
	"image/draw"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"teapots/assets"
)

const (
	atlasWidth   = 512
	glyphPadding = 1
	firstGlyph   = ' '
	lastGlyph    = '~'
)

// Glyph is one character's cell in the atlas, in pixels.
type Glyph struct {
	Rect    image.Rectangle // position in the atlas
	Bearing image.Point     // offset of the top-left corner from the pen, y down
	Advance float32
}

// FontAtlas is a single-channel texture holding printable ASCII.
type FontAtlas struct {
	Texture uint32
	Size    image.Point
	Glyphs  map[rune]Glyph
}

// BuildFontAtlas rasterises printable ASCII from TrueType/OpenType data at
// fontPixels and uploads it as a GL_RED texture.
func BuildFontAtlas(fontBytes []byte, fontPixels int) (*FontAtlas, error) {
	f, err := opentype.Parse(fontBytes)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{Size: float64(fontPixels), DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		return nil, fmt.Errorf("new face: %w", err)
	}
	defer face.Close()

	type raster struct {
		r       rune
		mask    image.Image
		maskp   image.Point
		bounds  image.Rectangle
		advance fixed.Int26_6
	}
	var rasters []raster
	var sizes []image.Point
	for r := rune(firstGlyph); r <= lastGlyph; r++ {
		dr, mask, maskp, advance, ok := face.Glyph(fixed.P(0, 0), r)
		if !ok {
			continue
		}
		rasters = append(rasters, raster{r, mask, maskp, dr, advance})
		sizes = append(sizes, dr.Size())
	}

	origins, height := packGlyphs(sizes, atlasWidth)
	img := image.NewAlpha(image.Rect(0, 0, atlasWidth, height))

	atlas := &FontAtlas{Size: image.Pt(atlasWidth, height), Glyphs: make(map[rune]Glyph, len(rasters))}
	for i, ra := range rasters {
		cell := image.Rectangle{Min: origins[i], Max: origins[i].Add(sizes[i])}
		if ra.mask != nil && !cell.Empty() {
			draw.Draw(img, cell, ra.mask, ra.maskp, draw.Src)
		}
		atlas.Glyphs[ra.r] = Glyph{
			Rect:    cell,
			Bearing: ra.bounds.Min,
			Advance: float32(ra.advance) / 64,
		}
	}

	gl.GenTextures(1, &atlas.Texture)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, atlas.Texture)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RED, int32(atlasWidth), int32(height), 0, gl.RED, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	return atlas, nil
}

// packGlyphs lays cells out left to right in rows of the given width and
// returns each cell's origin plus the total height used.
func packGlyphs(sizes []image.Point, width int) ([]image.Point, int) {
	origins := make([]image.Point, len(sizes))
	x, y, rowH := 0, 0, 0
	for i, s := range sizes {
		if x > 0 && x+s.X > width {
			x, y, rowH = 0, y+rowH+glyphPadding, 0
		}
		origins[i] = image.Pt(x, y)
		x += s.X + glyphPadding
		rowH = max(rowH, s.Y)
	}
	return origins, max(y+rowH, 1)
}

// Measure returns the width and tallest glyph height of text at scale.
func (a *FontAtlas) Measure(text string, scale float32) (float32, float32) {
	var w, h float32
	for _, r := range text {
		g := a.glyph(r)
		w += g.Advance * scale
		h = max(h, float32(g.Rect.Dy())*scale)
	}
	return w, h
}

func (a *FontAtlas) glyph(r rune) Glyph {
	if g, ok := a.Glyphs[r]; ok {
		return g
	}
	return a.Glyphs[' ']
}

// quads lays text out from a baseline at (x, y), two triangles per visible
// glyph, 4 floats per vertex: position then atlas UV.
func (a *FontAtlas) quads(dst []float32, text string, x, y, scale float32) []float32 {
	sw, sh := float32(a.Size.X), float32(a.Size.Y)
	for _, r := range text {
		g := a.glyph(r)
		if !g.Rect.Empty() {
			x0 := x + float32(g.Bearing.X)*scale
			y0 := y + float32(g.Bearing.Y)*scale
			x1 := x0 + float32(g.Rect.Dx())*scale
			y1 := y0 + float32(g.Rect.Dy())*scale
			u0, v0 := float32(g.Rect.Min.X)/sw, float32(g.Rect.Min.Y)/sh
			u1, v1 := float32(g.Rect.Max.X)/sw, float32(g.Rect.Max.Y)/sh
			dst = append(dst,
				x0, y1, u0, v1,
				x0, y0, u0, v0,
				x1, y0, u1, v0,
				x0, y1, u0, v1,
				x1, y0, u1, v0,
				x1, y1, u1, v1,
			)
		}
		x += g.Advance * scale
	}
	return dst
}

// FontRenderer draws single lines of text in pixel coordinates, origin top
// left.
type FontRenderer struct {
	atlas      *FontAtlas
	shader     *Shader
	projection mgl32.Mat4
	vao, vbo   uint32
	verts      []float32
}

// NewFontRenderer takes ownership of atlas.
func NewFontRenderer(atlas *FontAtlas, width, height int) (*FontRenderer, error) {
	if atlas == nil || len(atlas.Glyphs) == 0 {
		return nil, fmt.Errorf("invalid font atlas")
	}
	shader, err := NewShader(assets.FontVertexShader, assets.FontFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("font shader: %w", err)
	}
	fr := &FontRenderer{atlas: atlas, shader: shader}
	fr.SetViewport(width, height)

	gl.GenVertexArrays(1, &fr.vao)
	gl.GenBuffers(1, &fr.vbo)
	gl.BindVertexArray(fr.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, fr.vbo)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 4, gl.FLOAT, false, 4*4, gl.PtrOffset(0))
	gl.BindVertexArray(0)
	return fr, nil
}

// SetViewport updates the pixel-space projection.
func (fr *FontRenderer) SetViewport(width, height int) {
	fr.projection = mgl32.Ortho(0, float32(width), float32(height), 0, 0, 1)
}

// Measure forwards to the atlas.
func (fr *FontRenderer) Measure(text string, scale float32) (float32, float32) {
	return fr.atlas.Measure(text, scale)
}

// Render draws text with its baseline at (x, y).
func (fr *FontRenderer) Render(text string, x, y, scale float32, color mgl32.Vec3) {
	fr.verts = fr.atlas.quads(fr.verts[:0], text, x, y, scale)
	if len(fr.verts) == 0 {
		return
	}

	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	fr.shader.Use()
	fr.shader.SetVector3("textColor", color.X(), color.Y(), color.Z())
	fr.shader.SetMatrix4("projection", &fr.projection[0])
	fr.shader.SetInt("text", 0)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, fr.atlas.Texture)
	gl.BindVertexArray(fr.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, fr.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(fr.verts)*4, gl.Ptr(fr.verts), gl.STREAM_DRAW)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(len(fr.verts)/4))

	gl.Disable(gl.BLEND)
	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.CULL_FACE)
}

// Dispose releases the GL objects, including the atlas texture.
func (fr *FontRenderer) Dispose() {
	gl.DeleteBuffers(1, &fr.vbo)
	gl.DeleteVertexArrays(1, &fr.vao)
	gl.DeleteTextures(1, &fr.atlas.Texture)
	fr.shader.Delete()
}
