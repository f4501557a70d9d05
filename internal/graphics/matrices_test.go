package graphics

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestViewMatrixMapsCameraToOrigin(t *testing.T) {
	pos := mgl32.Vec3{3, -2, 5}
	dir := mgl32.Vec3{float32(math.Cos(0.4)), 0.2, float32(math.Sin(0.4))}
	view := ViewMatrix(pos, dir, WorldUp)

	origin := mgl32.TransformCoordinate(pos, view)
	if !origin.ApproxEqualThreshold(mgl32.Vec3{}, 1e-5) {
		t.Errorf("camera maps to %v, want origin", origin)
	}

	// A point straight ahead lands on +Z in view space.
	ahead := mgl32.TransformCoordinate(pos.Add(dir.Normalize().Mul(10)), view)
	if !ahead.ApproxEqualThreshold(mgl32.Vec3{0, 0, 10}, 1e-4) {
		t.Errorf("ahead maps to %v, want {0 0 10}", ahead)
	}
}

func TestViewMatrixRightIsScreenRight(t *testing.T) {
	// Yaw 0: forward +X, strafe-right (sin, 0, -cos) = -Z.
	view := ViewMatrix(mgl32.Vec3{}, mgl32.Vec3{1, 0, 0}, WorldUp)
	right := mgl32.TransformCoordinate(mgl32.Vec3{0, 0, -1}, view)
	if !right.ApproxEqual(mgl32.Vec3{1, 0, 0}) {
		t.Errorf("strafe-right maps to %v, want +X", right)
	}
	up := mgl32.TransformCoordinate(mgl32.Vec3{0, 1, 0}, view)
	if !up.ApproxEqual(mgl32.Vec3{0, 1, 0}) {
		t.Errorf("world up maps to %v, want +Y", up)
	}
}

func TestPerspectiveDepthRange(t *testing.T) {
	const near, far = 0.1, 1024
	proj := Perspective(800, 600, math.Pi/3, near, far)

	nearPt := proj.Mul4x1(mgl32.Vec4{0, 0, near, 1})
	farPt := proj.Mul4x1(mgl32.Vec4{0, 0, far, 1})
	if got := nearPt[2] / nearPt[3]; !mgl32.FloatEqualThreshold(got, -1, 1e-4) {
		t.Errorf("near plane depth = %v, want -1", got)
	}
	if got := farPt[2] / farPt[3]; !mgl32.FloatEqualThreshold(got, 1, 1e-4) {
		t.Errorf("far plane depth = %v, want 1", got)
	}

	// Aspect squeezes X by height/width.
	if !mgl32.FloatEqual(proj[0]/proj[5], 600.0/800.0) {
		t.Errorf("aspect scale = %v", proj[0]/proj[5])
	}
}

func TestPerspectiveDegenerateViewport(t *testing.T) {
	proj := Perspective(0, 0, math.Pi/3, 0.1, 100)
	if !mgl32.FloatEqual(proj[0], proj[5]) {
		t.Errorf("zero-sized viewport should fall back to square aspect, got %v vs %v", proj[0], proj[5])
	}
}

func TestMoveAndScale(t *testing.T) {
	m := MoveAndScale(mgl32.Vec3{1, 2, 3}, 0.01)
	got := mgl32.TransformCoordinate(mgl32.Vec3{100, 0, -100}, m)
	if !got.ApproxEqualThreshold(mgl32.Vec3{2, 2, 2}, 1e-5) {
		t.Errorf("MoveAndScale = %v, want {2 2 2}", got)
	}
}

func TestSpinMatrix(t *testing.T) {
	m := SpinMatrix(math.Pi / 2)
	got := mgl32.TransformNormal(mgl32.Vec3{1, 0, 0}, m)
	if !got.ApproxEqualThreshold(mgl32.Vec3{0, 0, 1}, 1e-6) {
		t.Errorf("spin pi/2 maps +X to %v, want +Z", got)
	}
}
