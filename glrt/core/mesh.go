package core

import (
	"github.com/go-gl/mathgl/mgl32"
)

// VertexStride is the number of float32s per vertex: position, normal, uv.
const VertexStride = 8

// MeshData is an indexed triangle list with interleaved vertices.
type MeshData struct {
	Vertices []float32
	Indices  []uint32
}

func (m *MeshData) VertexCount() int {
	return len(m.Vertices) / VertexStride
}

func (m *MeshData) addQuad(a, b, c, d, normal mgl32.Vec3, uvScale float32) {
	base := uint32(m.VertexCount())
	uvs := [4][2]float32{{0, 0}, {uvScale, 0}, {uvScale, uvScale}, {0, uvScale}}
	for i, p := range [4]mgl32.Vec3{a, b, c, d} {
		m.Vertices = append(m.Vertices,
			p.X(), p.Y(), p.Z(),
			normal.X(), normal.Y(), normal.Z(),
			uvs[i][0], uvs[i][1],
		)
	}
	m.Indices = append(m.Indices, base, base+1, base+2, base, base+2, base+3)
}

// Plane is a unit square on y=0 centred at the origin, facing +Y.
func Plane() MeshData {
	var m MeshData
	m.addQuad(
		mgl32.Vec3{-1, 0, 1},
		mgl32.Vec3{1, 0, 1},
		mgl32.Vec3{1, 0, -1},
		mgl32.Vec3{-1, 0, -1},
		mgl32.Vec3{0, 1, 0},
		1,
	)
	return m
}

// Box is an axis-aligned box resting on y=0 with the given full extents.
// Faces wind counter-clockwise seen from outside.
func Box(sx, sy, sz float32) MeshData {
	x, z := sx/2, sz/2
	y0, y1 := float32(0), sy

	var m MeshData
	// +Z
	m.addQuad(mgl32.Vec3{-x, y0, z}, mgl32.Vec3{x, y0, z}, mgl32.Vec3{x, y1, z}, mgl32.Vec3{-x, y1, z}, mgl32.Vec3{0, 0, 1}, 1)
	// -Z
	m.addQuad(mgl32.Vec3{x, y0, -z}, mgl32.Vec3{-x, y0, -z}, mgl32.Vec3{-x, y1, -z}, mgl32.Vec3{x, y1, -z}, mgl32.Vec3{0, 0, -1}, 1)
	// +X
	m.addQuad(mgl32.Vec3{x, y0, z}, mgl32.Vec3{x, y0, -z}, mgl32.Vec3{x, y1, -z}, mgl32.Vec3{x, y1, z}, mgl32.Vec3{1, 0, 0}, 1)
	// -X
	m.addQuad(mgl32.Vec3{-x, y0, -z}, mgl32.Vec3{-x, y0, z}, mgl32.Vec3{-x, y1, z}, mgl32.Vec3{-x, y1, -z}, mgl32.Vec3{-1, 0, 0}, 1)
	// +Y
	m.addQuad(mgl32.Vec3{-x, y1, z}, mgl32.Vec3{x, y1, z}, mgl32.Vec3{x, y1, -z}, mgl32.Vec3{-x, y1, -z}, mgl32.Vec3{0, 1, 0}, 1)
	// -Y
	m.addQuad(mgl32.Vec3{-x, y0, -z}, mgl32.Vec3{x, y0, -z}, mgl32.Vec3{x, y0, z}, mgl32.Vec3{-x, y0, z}, mgl32.Vec3{0, -1, 0}, 1)
	return m
}
