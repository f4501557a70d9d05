// Package teapot builds the teapot mesh drawn for every instance.
//
// The mesh is tessellated once from the classic Utah teapot Bézier patches
// (see patches.go). Coordinates are in mesh units, about 79 tall with the
// base at y = 0, which the renderer scales down to world size. The spout
// points along +X and the handle along -X.
//
// Triangles are wound clockwise when seen from outside the surface. The
// left-handed view used by the renderer shows front faces counter-clockwise,
// so culling clockwise faces removes the back faces.
package teapot

import (
	"sync"

	"github.com/go-gl/mathgl/mgl32"
)

// Mesh is an indexed triangle list with per-vertex normals.
type Mesh struct {
	Positions []mgl32.Vec3
	Normals   []mgl32.Vec3
	Indices   []uint32
}

// VertexData interleaves position and normal, 6 floats per vertex.
func (m *Mesh) VertexData() []float32 {
	out := make([]float32, 0, len(m.Positions)*6)
	for i, p := range m.Positions {
		n := m.Normals[i]
		out = append(out, p[0], p[1], p[2], n[0], n[1], n[2])
	}
	return out
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

func (m *Mesh) appendMesh(o *Mesh) {
	base := uint32(len(m.Positions))
	m.Positions = append(m.Positions, o.Positions...)
	m.Normals = append(m.Normals, o.Normals...)
	for _, idx := range o.Indices {
		m.Indices = append(m.Indices, base+idx)
	}
}

// patch is a bicubic control grid in mesh space. Rows (u) run along the
// surface, columns (v) across it; du x dv points outward.
type patch [4][4]mgl32.Vec3

// steps is the tessellation density per patch edge.
const steps = 8

var (
	once sync.Once
	mesh *Mesh
)

// Build returns the shared teapot mesh. The result must not be modified.
func Build() *Mesh {
	once.Do(func() {
		m := &Mesh{}
		for _, p := range patches() {
			m.appendMesh(p.tessellate(steps))
		}
		mesh = m
	})
	return mesh
}

// patches returns every surface patch in mesh space, oriented outward.
func patches() []patch {
	var out []patch
	for _, group := range [][]profile{bodyProfiles, lidProfiles} {
		for _, pr := range group {
			for q := range 4 {
				out = append(out, revolve(pr, q))
			}
		}
	}
	for _, group := range [][]halfPatch{handlePatches, spoutPatches} {
		for _, hp := range group {
			out = append(out, mirrored(hp, 1).outward(), mirrored(hp, -1).outward())
		}
	}
	return out
}

// revolve sweeps a profile through quarter q of a turn around +Y, from
// angle q*90° toward the next quarter (+X toward +Z for q = 0).
func revolve(pr profile, q int) patch {
	dirs := [4]mgl32.Vec2{{1, 0}, {1, circleWeight}, {circleWeight, 1}, {0, 1}}
	var p patch
	for i, rh := range pr {
		for j, d := range dirs {
			for range q {
				d = mgl32.Vec2{-d[1], d[0]}
			}
			r := rh[0] * Scale
			p[i][j] = mgl32.Vec3{r * d[0], rh[1] * Scale, r * d[1]}
		}
	}
	return p
}

// mirrored converts a half patch to mesh space (z-up to y-up), with side
// choosing which half of the part it becomes.
func mirrored(hp halfPatch, side float32) patch {
	var p patch
	for i := range hp {
		for j, c := range hp[i] {
			p[i][j] = mgl32.Vec3{c[0], c[2], side * c[1]}.Mul(Scale)
		}
	}
	return p
}

// outward flips the column order when du x dv points into the part. The
// centre of each cross-section lies midway between its first and last
// column, both on the mirror plane.
func (p patch) outward() patch {
	pos, n := p.eval(0.5, 0.5)
	centre := bezier(0.5, column(p, 0)).Add(bezier(0.5, column(p, 3))).Mul(0.5)
	if n.Dot(pos.Sub(centre)) >= 0 {
		return p
	}
	var f patch
	for i := range p {
		for j := range p[i] {
			f[i][j] = p[i][3-j]
		}
	}
	return f
}

// tessellate samples the patch on an (n+1) x (n+1) grid.
func (p patch) tessellate(n int) *Mesh {
	m := &Mesh{}
	for i := 0; i <= n; i++ {
		u := float32(i) / float32(n)
		for j := 0; j <= n; j++ {
			v := float32(j) / float32(n)
			pos, normal := p.eval(u, v)
			// Rows that collapse to a point (lid top, base centre) borrow
			// the normal from just inside the patch.
			if normal.Len() < 1e-6 {
				_, normal = p.eval(mgl32.Clamp(u, 0.01, 0.99), v)
			}
			m.Positions = append(m.Positions, pos)
			m.Normals = append(m.Normals, normal.Normalize())
		}
	}
	m.Indices = grid(n+1, n+1)
	return m
}

// eval returns the surface point and the unnormalised du x dv at (u, v).
func (p patch) eval(u, v float32) (pos, normal mgl32.Vec3) {
	var rows, cols [4]mgl32.Vec3
	for i := range 4 {
		rows[i] = bezier(v, p[i])
		cols[i] = bezier(u, column(p, i))
	}
	pos = bezier(u, rows)
	du := bezierTangent(u, rows)
	dv := bezierTangent(v, cols)
	return pos, du.Cross(dv)
}

func column(p patch, j int) [4]mgl32.Vec3 {
	return [4]mgl32.Vec3{p[0][j], p[1][j], p[2][j], p[3][j]}
}

func bezier(t float32, c [4]mgl32.Vec3) mgl32.Vec3 {
	return mgl32.CubicBezierCurve3D(t, c[0], c[1], c[2], c[3])
}

func bezierTangent(t float32, c [4]mgl32.Vec3) mgl32.Vec3 {
	u := 1 - t
	a := c[1].Sub(c[0]).Mul(3 * u * u)
	b := c[2].Sub(c[1]).Mul(6 * u * t)
	d := c[3].Sub(c[2]).Mul(3 * t * t)
	return a.Add(b).Add(d)
}

// grid stitches rows x cols vertices into triangles. Row i runs along the
// profile (or tube), column j around it.
func grid(rows, cols int) []uint32 {
	idx := make([]uint32, 0, (rows-1)*(cols-1)*6)
	at := func(i, j int) uint32 { return uint32(i*cols + j) }
	for i := 0; i < rows-1; i++ {
		for j := 0; j < cols-1; j++ {
			idx = append(idx,
				at(i, j), at(i, j+1), at(i+1, j),
				at(i+1, j), at(i, j+1), at(i+1, j+1),
			)
		}
	}
	return idx
}
