package openglhelper

import (
	"github.com/go-gl/gl/v4.6-core/gl"
)

// Vertex layout: position (3), normal (3), color (3)
const (
	floatsPerVertex = 9
	vertexStride    = floatsPerVertex * 4
)

// Mesh represents an uploaded mesh with interleaved vertices and indices
type Mesh struct {
	vao        *VertexArrayObject
	vbo        *BufferObject
	ebo        *BufferObject
	indexCount int32
	mode       uint32 // gl.TRIANGLES or gl.LINES
}

// NewMesh uploads vertices and indices. mode is the GL primitive, e.g. gl.TRIANGLES.
func NewMesh(vertices []float32, indices []uint32, mode uint32) *Mesh {
	vao := NewVAO()
	vao.Bind()

	vbo := NewVBO(vertices, StaticDraw)
	ebo := NewEBO(indices, StaticDraw)

	// Position attribute
	vao.SetVertexAttribPointer(0, 3, gl.FLOAT, false, vertexStride, 0)
	// Normal attribute
	vao.SetVertexAttribPointer(1, 3, gl.FLOAT, false, vertexStride, 3*4)
	// Color attribute
	vao.SetVertexAttribPointer(2, 3, gl.FLOAT, false, vertexStride, 6*4)

	vao.Unbind()

	return &Mesh{
		vao:        vao,
		vbo:        vbo,
		ebo:        ebo,
		indexCount: int32(len(indices)),
		mode:       mode,
	}
}

// Draw renders the mesh with whatever shader is in use
func (m *Mesh) Draw() {
	m.vao.Bind()
	gl.DrawElements(m.mode, m.indexCount, gl.UNSIGNED_INT, nil)
	m.vao.Unbind()
}

// Delete releases all resources
func (m *Mesh) Delete() {
	m.vao.Delete()
	m.vbo.Delete()
	m.ebo.Delete()
}
