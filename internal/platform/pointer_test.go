package platform

import "testing"

func TestPointerTracker(t *testing.T) {
	var p pointerTracker

	if _, _, ok := p.Move(100, 50); ok {
		t.Fatal("first position should only seed the tracker")
	}

	dx, dy, ok := p.Move(110, 45)
	if !ok || dx != 10 || dy != -5 {
		t.Errorf("Move = (%v, %v, %v), want (10, -5, true)", dx, dy, ok)
	}

	if _, _, ok := p.Move(110, 45); ok {
		t.Error("no motion should not produce a delta")
	}

	p.Reset()
	if _, _, ok := p.Move(500, 500); ok {
		t.Error("jump after reset should not produce a delta")
	}
	dx, dy, ok = p.Move(501, 499)
	if !ok || dx != 1 || dy != -1 {
		t.Errorf("Move after reset = (%v, %v, %v), want (1, -1, true)", dx, dy, ok)
	}
}
