package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestCube(t *testing.T) {
	color := mgl32.Vec3{1, 0.5, 0}
	cube := Cube(2, color)

	if cube.VertexCount() != 24 {
		t.Fatalf("vertex count = %d, want 24", cube.VertexCount())
	}
	if len(cube.Indices) != 36 {
		t.Fatalf("index count = %d, want 36", len(cube.Indices))
	}
	for i := 0; i < cube.VertexCount(); i++ {
		p := cube.Position(i)
		for axis := 0; axis < 3; axis++ {
			if p[axis] != 1 && p[axis] != -1 {
				t.Fatalf("vertex %d = %v, not on a unit-half cube", i, p)
			}
		}
		if cube.Color(i) != color {
			t.Fatalf("vertex %d color = %v", i, cube.Color(i))
		}
	}
}

func TestCubeWindingFacesOutward(t *testing.T) {
	cube := Cube(1, mgl32.Vec3{1, 1, 1})

	for i := 0; i+2 < len(cube.Indices); i += 3 {
		a := cube.Position(int(cube.Indices[i]))
		b := cube.Position(int(cube.Indices[i+1]))
		c := cube.Position(int(cube.Indices[i+2]))
		normal := b.Sub(a).Cross(c.Sub(a))
		center := a.Add(b).Add(c).Mul(1.0 / 3)
		if normal.Dot(center) <= 0 {
			t.Fatalf("triangle %d faces inward", i/3)
		}
	}
}

func TestAxes(t *testing.T) {
	axes := Axes(3)

	if axes.Primitive != Lines {
		t.Fatal("axes are not lines")
	}
	edges := axes.Edges()
	if len(edges) != 3 {
		t.Fatalf("got %d edges, want 3", len(edges))
	}
	want := []mgl32.Vec3{{3, 0, 0}, {0, 3, 0}, {0, 0, 3}}
	for i, e := range edges {
		if axes.Position(e.A) != (mgl32.Vec3{}) || axes.Position(e.B) != want[i] {
			t.Errorf("edge %d runs %v -> %v", i, axes.Position(e.A), axes.Position(e.B))
		}
	}
}

func TestGrid(t *testing.T) {
	grid := Grid(2, 0.5, mgl32.Vec3{0.3, 0.3, 0.3})

	// 5 lines each way
	if got := len(grid.Edges()); got != 10 {
		t.Fatalf("got %d grid lines, want 10", got)
	}
	for i := 0; i < grid.VertexCount(); i++ {
		if p := grid.Position(i); p.Y() != 0 || p.X() < -1 || p.X() > 1 || p.Z() < -1 || p.Z() > 1 {
			t.Fatalf("grid vertex %v outside the plane", p)
		}
	}
}

func TestTriangleEdgesAreDistinct(t *testing.T) {
	cube := Cube(1, mgl32.Vec3{})

	// Per face: 4 outline edges plus one diagonal
	if got := len(cube.Edges()); got != 6*5 {
		t.Fatalf("got %d edges, want %d", got, 6*5)
	}
}

func TestGenerateNormals(t *testing.T) {
	positions := [][3]float32{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {5, 5, 5}}
	normals := generateNormals(positions, []uint32{0, 1, 2})

	for i := 0; i < 3; i++ {
		if mgl32.Vec3(normals[i]) != (mgl32.Vec3{0, 0, 1}) {
			t.Errorf("normal %d = %v, want +Z", i, normals[i])
		}
	}
	// Unreferenced vertices keep a zero normal
	if mgl32.Vec3(normals[3]) != (mgl32.Vec3{}) {
		t.Errorf("unused normal = %v, want zero", normals[3])
	}
}
