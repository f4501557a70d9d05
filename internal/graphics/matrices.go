package graphics

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// The scene uses a left-handed view space: +X right, +Y up, +Z into the
// screen. mgl32's LookAt/Perspective are right-handed, so these are built by
// hand. All matrices are column-major like mgl32.Mat4.

// ViewMatrix looks from position along direction with the given up vector.
func ViewMatrix(position, direction, up mgl32.Vec3) mgl32.Mat4 {
	f := direction.Normalize()
	s := up.Cross(f).Normalize()
	u := f.Cross(s)

	p := mgl32.Vec3{-position.Dot(s), -position.Dot(u), -position.Dot(f)}

	return mgl32.Mat4{
		s[0], u[0], f[0], 0,
		s[1], u[1], f[1], 0,
		s[2], u[2], f[2], 0,
		p[0], p[1], p[2], 1,
	}
}

// Perspective builds a left-handed projection for the given drawable size.
// fovy is in radians.
func Perspective(width, height int, fovy, near, far float32) mgl32.Mat4 {
	if width <= 0 || height <= 0 {
		width, height = 1, 1
	}
	aspect := float32(height) / float32(width)
	f := float32(1 / math.Tan(float64(fovy)/2))

	return mgl32.Mat4{
		f * aspect, 0, 0, 0,
		0, f, 0, 0,
		0, 0, (far + near) / (far - near), 1,
		0, 0, -(2 * far * near) / (far - near), 0,
	}
}

// MoveAndScale is translate(position) * uniform scale.
func MoveAndScale(position mgl32.Vec3, scale float32) mgl32.Mat4 {
	return mgl32.Translate3D(position[0], position[1], position[2]).Mul4(mgl32.Scale3D(scale, scale, scale))
}

// SpinMatrix rotates by angle radians about Y, turning +X toward +Z.
func SpinMatrix(angle float32) mgl32.Mat4 {
	return mgl32.HomogRotate3DY(-angle)
}
