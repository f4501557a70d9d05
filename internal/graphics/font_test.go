package graphics

import (
	"image"
	"testing"
)

func TestPackGlyphs(t *testing.T) {
	sizes := []image.Point{{10, 12}, {10, 8}, {10, 5}, {0, 0}}
	origins, height := packGlyphs(sizes, 22)

	want := []image.Point{{0, 0}, {11, 0}, {0, 13}, {11, 13}}
	for i := range want {
		if origins[i] != want[i] {
			t.Errorf("origin %d = %v, want %v", i, origins[i], want[i])
		}
	}
	if height != 18 {
		t.Errorf("height = %d, want 18", height)
	}
}

func TestPackGlyphsEmpty(t *testing.T) {
	if _, h := packGlyphs(nil, 512); h != 1 {
		t.Errorf("height = %d, want 1", h)
	}
}

func testAtlas() *FontAtlas {
	return &FontAtlas{
		Size: image.Pt(100, 20),
		Glyphs: map[rune]Glyph{
			' ': {Advance: 4},
			'A': {Rect: image.Rect(10, 0, 20, 10), Bearing: image.Pt(1, -10), Advance: 11},
		},
	}
}

func TestMeasure(t *testing.T) {
	a := testAtlas()
	w, h := a.Measure("A A", 2)
	if w != (11+4+11)*2 || h != 20 {
		t.Errorf("Measure = (%v, %v), want (52, 20)", w, h)
	}
	// Unknown runes advance like a space.
	if w, _ := a.Measure("é", 1); w != 4 {
		t.Errorf("unknown rune width = %v, want 4", w)
	}
}

func TestQuads(t *testing.T) {
	a := testAtlas()
	v := a.quads(nil, "A A", 100, 50, 1)
	if len(v) != 2*6*4 {
		t.Fatalf("len = %d, want 48", len(v))
	}

	// Second vertex of the first quad is the glyph's top-left corner.
	x, y, u, tv := v[4], v[5], v[6], v[7]
	if x != 101 || y != 40 || u != 0.1 || tv != 0 {
		t.Errorf("top-left = (%v, %v, %v, %v), want (101, 40, 0.1, 0)", x, y, u, tv)
	}
	// The second glyph starts after "A " advanced the pen.
	if got := v[24+4]; got != 100+11+4+1 {
		t.Errorf("second glyph x = %v, want 116", got)
	}
}
