package graphics

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Mesh is an indexed triangle list uploaded to the GPU.
// Vertex layout: location 0 = position (vec3), location 1 = normal (vec3).
type Mesh struct {
	vao, vbo, ebo uint32
	indexCount    int32
}

// NewMesh uploads interleaved position/normal data (6 floats per vertex) and
// a uint32 index list.
func NewMesh(vertices []float32, indices []uint32) (*Mesh, error) {
	if len(vertices) == 0 || len(vertices)%6 != 0 {
		return nil, fmt.Errorf("vertex data length %d is not a positive multiple of 6", len(vertices))
	}
	if len(indices) == 0 || len(indices)%3 != 0 {
		return nil, fmt.Errorf("index count %d is not a positive multiple of 3", len(indices))
	}

	m := &Mesh{indexCount: int32(len(indices))}

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)

	stride := int32(6 * 4)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, stride, gl.PtrOffset(3*4))

	gl.GenBuffers(1, &m.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), gl.STATIC_DRAW)

	gl.BindVertexArray(0)

	if code := gl.GetError(); code != gl.NO_ERROR {
		m.Delete()
		return nil, fmt.Errorf("mesh upload failed: GL error 0x%x", code)
	}
	return m, nil
}

// Bind makes the mesh's vertex array current.
func (m *Mesh) Bind() {
	gl.BindVertexArray(m.vao)
}

// Draw issues one draw call. The mesh must be bound.
func (m *Mesh) Draw() {
	gl.DrawElements(gl.TRIANGLES, m.indexCount, gl.UNSIGNED_INT, nil)
}

// Delete releases the GPU buffers.
func (m *Mesh) Delete() {
	gl.DeleteBuffers(1, &m.ebo)
	gl.DeleteBuffers(1, &m.vbo)
	gl.DeleteVertexArrays(1, &m.vao)
}
