package gpu

import (
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/artemisgen/artemis/glrt/core"
)

// glOffset converts a byte offset to unsafe.Pointer for VBO offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

// Mesh is an uploaded indexed triangle list.
type Mesh struct {
	vao, vbo, ebo uint32
	indexCount    int32
}

// UploadMesh copies m into a fresh VAO with position, normal and uv at
// attribute locations 0, 1 and 2.
func UploadMesh(m core.MeshData) *Mesh {
	out := &Mesh{indexCount: int32(len(m.Indices))}

	gl.GenVertexArrays(1, &out.vao)
	gl.GenBuffers(1, &out.vbo)
	gl.GenBuffers(1, &out.ebo)

	gl.BindVertexArray(out.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, out.vbo)
	if len(m.Vertices) > 0 {
		gl.BufferData(gl.ARRAY_BUFFER, len(m.Vertices)*4, gl.Ptr(m.Vertices), gl.STATIC_DRAW)
	}
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, out.ebo)
	if len(m.Indices) > 0 {
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(m.Indices)*4, gl.Ptr(m.Indices), gl.STATIC_DRAW)
	}

	stride := int32(core.VertexStride * 4)
	gl.EnableVertexAttribArray(0) // aPos
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, glOffset(0))
	gl.EnableVertexAttribArray(1) // aNormal
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, stride, glOffset(3*4))
	gl.EnableVertexAttribArray(2) // aTexCoord
	gl.VertexAttribPointer(2, 2, gl.FLOAT, false, stride, glOffset(6*4))

	gl.BindVertexArray(0)
	return out
}

func (m *Mesh) Draw() {
	if m.indexCount == 0 {
		return
	}
	gl.BindVertexArray(m.vao)
	gl.DrawElements(gl.TRIANGLES, m.indexCount, gl.UNSIGNED_INT, glOffset(0))
	gl.BindVertexArray(0)
}

func (m *Mesh) Delete() {
	gl.DeleteVertexArrays(1, &m.vao)
	gl.DeleteBuffers(1, &m.vbo)
	gl.DeleteBuffers(1, &m.ebo)
	*m = Mesh{}
}
