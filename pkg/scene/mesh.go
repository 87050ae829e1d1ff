// Package scene builds the geometry the orbit viewers draw around the pivot.
package scene

import "github.com/go-gl/mathgl/mgl32"

// Primitive is how a mesh's indices are assembled
type Primitive int

const (
	Triangles Primitive = iota
	Lines
)

// FloatsPerVertex is the interleaved layout: x, y, z, nx, ny, nz, r, g, b
const FloatsPerVertex = 9

// MeshData is CPU-side geometry ready to upload
type MeshData struct {
	Vertices  []float32
	Indices   []uint32
	Primitive Primitive
}

// AddVertex appends a vertex and returns its index
func (m *MeshData) AddVertex(pos, normal, color mgl32.Vec3) uint32 {
	idx := uint32(m.VertexCount())
	m.Vertices = append(m.Vertices,
		pos[0], pos[1], pos[2],
		normal[0], normal[1], normal[2],
		color[0], color[1], color[2],
	)
	return idx
}

// VertexCount returns the number of vertices
func (m *MeshData) VertexCount() int {
	return len(m.Vertices) / FloatsPerVertex
}

// Position returns the position of vertex i
func (m *MeshData) Position(i int) mgl32.Vec3 {
	base := i * FloatsPerVertex
	return mgl32.Vec3{m.Vertices[base], m.Vertices[base+1], m.Vertices[base+2]}
}

// Color returns the color of vertex i
func (m *MeshData) Color(i int) mgl32.Vec3 {
	base := i*FloatsPerVertex + 6
	return mgl32.Vec3{m.Vertices[base], m.Vertices[base+1], m.Vertices[base+2]}
}

// Edge is a line segment between two vertices
type Edge struct {
	A, B int
}

// Edges returns every distinct segment of the mesh, for wireframe drawing
func (m *MeshData) Edges() []Edge {
	if m.Primitive == Lines {
		edges := make([]Edge, 0, len(m.Indices)/2)
		for i := 0; i+1 < len(m.Indices); i += 2 {
			edges = append(edges, Edge{int(m.Indices[i]), int(m.Indices[i+1])})
		}
		return edges
	}

	seen := make(map[Edge]bool, len(m.Indices))
	edges := make([]Edge, 0, len(m.Indices))
	add := func(a, b uint32) {
		e := Edge{int(a), int(b)}
		if e.A > e.B {
			e.A, e.B = e.B, e.A
		}
		if !seen[e] {
			seen[e] = true
			edges = append(edges, e)
		}
	}
	for i := 0; i+2 < len(m.Indices); i += 3 {
		a, b, c := m.Indices[i], m.Indices[i+1], m.Indices[i+2]
		add(a, b)
		add(b, c)
		add(c, a)
	}
	return edges
}

// cubeFaces lists each face's normal and its four corners in counter-clockwise order
var cubeFaces = []struct {
	normal  mgl32.Vec3
	corners [4]mgl32.Vec3
}{
	{mgl32.Vec3{0, 0, 1}, [4]mgl32.Vec3{{-1, -1, 1}, {1, -1, 1}, {1, 1, 1}, {-1, 1, 1}}},     // Front
	{mgl32.Vec3{0, 0, -1}, [4]mgl32.Vec3{{1, -1, -1}, {-1, -1, -1}, {-1, 1, -1}, {1, 1, -1}}}, // Back
	{mgl32.Vec3{-1, 0, 0}, [4]mgl32.Vec3{{-1, -1, -1}, {-1, -1, 1}, {-1, 1, 1}, {-1, 1, -1}}}, // Left
	{mgl32.Vec3{1, 0, 0}, [4]mgl32.Vec3{{1, -1, 1}, {1, -1, -1}, {1, 1, -1}, {1, 1, 1}}},      // Right
	{mgl32.Vec3{0, -1, 0}, [4]mgl32.Vec3{{-1, -1, -1}, {1, -1, -1}, {1, -1, 1}, {-1, -1, 1}}}, // Bottom
	{mgl32.Vec3{0, 1, 0}, [4]mgl32.Vec3{{-1, 1, 1}, {1, 1, 1}, {1, 1, -1}, {-1, 1, -1}}},      // Top
}

// Cube creates a cube centered on the origin with edge length size
func Cube(size float32, color mgl32.Vec3) MeshData {
	half := size / 2
	mesh := MeshData{Primitive: Triangles}

	for _, face := range cubeFaces {
		base := uint32(mesh.VertexCount())
		for _, corner := range face.corners {
			mesh.AddVertex(corner.Mul(half), face.normal, color)
		}
		// Two triangles per face
		mesh.Indices = append(mesh.Indices, base, base+1, base+2, base, base+2, base+3)
	}

	return mesh
}

// Axis colors
var (
	ColorX = mgl32.Vec3{0.9, 0.2, 0.2}
	ColorY = mgl32.Vec3{0.2, 0.9, 0.2}
	ColorZ = mgl32.Vec3{0.2, 0.4, 0.9}
)

// Axes creates three lines from the origin along +X, +Y and +Z
func Axes(length float32) MeshData {
	mesh := MeshData{Primitive: Lines}
	var zero mgl32.Vec3

	for _, axis := range []struct {
		dir   mgl32.Vec3
		color mgl32.Vec3
	}{
		{mgl32.Vec3{1, 0, 0}, ColorX},
		{mgl32.Vec3{0, 1, 0}, ColorY},
		{mgl32.Vec3{0, 0, 1}, ColorZ},
	} {
		a := mesh.AddVertex(zero, zero, axis.color)
		b := mesh.AddVertex(axis.dir.Mul(length), zero, axis.color)
		mesh.Indices = append(mesh.Indices, a, b)
	}

	return mesh
}

// Grid creates a square grid of lines on the XZ plane, halfExtent cells out from the origin in each direction
func Grid(halfExtent int, spacing float32, color mgl32.Vec3) MeshData {
	mesh := MeshData{Primitive: Lines}
	up := mgl32.Vec3{0, 1, 0}
	limit := float32(halfExtent) * spacing

	for i := -halfExtent; i <= halfExtent; i++ {
		offset := float32(i) * spacing

		// Line along Z
		a := mesh.AddVertex(mgl32.Vec3{offset, 0, -limit}, up, color)
		b := mesh.AddVertex(mgl32.Vec3{offset, 0, limit}, up, color)
		// Line along X
		c := mesh.AddVertex(mgl32.Vec3{-limit, 0, offset}, up, color)
		d := mesh.AddVertex(mgl32.Vec3{limit, 0, offset}, up, color)

		mesh.Indices = append(mesh.Indices, a, b, c, d)
	}

	return mesh
}

// generateNormals averages the face normals around each vertex
func generateNormals(positions [][3]float32, indices []uint32) [][3]float32 {
	sums := make([]mgl32.Vec3, len(positions))
	for i := 0; i+2 < len(indices); i += 3 {
		a, b, c := indices[i], indices[i+1], indices[i+2]
		pa, pb, pc := mgl32.Vec3(positions[a]), mgl32.Vec3(positions[b]), mgl32.Vec3(positions[c])
		n := pb.Sub(pa).Cross(pc.Sub(pa))
		sums[a] = sums[a].Add(n)
		sums[b] = sums[b].Add(n)
		sums[c] = sums[c].Add(n)
	}

	normals := make([][3]float32, len(positions))
	for i, n := range sums {
		if n.Len() > 0 {
			normals[i] = n.Normalize()
		}
	}
	return normals
}
