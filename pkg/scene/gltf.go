package scene

import (
	"errors"
	"fmt"
	"io"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

var (
	ErrNoMesh      = errors.New("scene: document has no mesh")
	ErrNoPositions = errors.New("scene: primitive has no POSITION attribute")
	ErrBadAccessor = errors.New("scene: accessor index out of range")
)

// LoadGLTF loads the first mesh of a .gltf or .glb file, painting it color.
// External buffers are resolved relative to path.
func LoadGLTF(path string, color mgl32.Vec3) (MeshData, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return MeshData{}, fmt.Errorf("failed to open %s: %w", path, err)
	}

	mesh, err := meshFromDocument(doc, color)
	if err != nil {
		return MeshData{}, fmt.Errorf("failed to load mesh from %s: %w", path, err)
	}
	return mesh, nil
}

// DecodeGLTF reads a self-contained glTF (embedded buffers) or GLB stream
func DecodeGLTF(r io.Reader, color mgl32.Vec3) (MeshData, error) {
	doc := gltf.NewDocument()
	if err := gltf.NewDecoder(r).Decode(doc); err != nil {
		return MeshData{}, fmt.Errorf("failed to decode glTF: %w", err)
	}
	return meshFromDocument(doc, color)
}

// meshFromDocument merges the triangle primitives of the document's first mesh
func meshFromDocument(doc *gltf.Document, color mgl32.Vec3) (MeshData, error) {
	if len(doc.Meshes) == 0 {
		return MeshData{}, ErrNoMesh
	}

	out := MeshData{Primitive: Triangles}

	for i, prim := range doc.Meshes[0].Primitives {
		if prim.Mode != gltf.PrimitiveTriangles {
			// Points, lines and strips are not drawn
			continue
		}

		posAccessor, ok := prim.Attributes[gltf.POSITION]
		if !ok {
			return MeshData{}, fmt.Errorf("primitive %d: %w", i, ErrNoPositions)
		}
		acc, err := accessor(doc, posAccessor)
		if err != nil {
			return MeshData{}, fmt.Errorf("primitive %d: positions: %w", i, err)
		}
		positions, err := modeler.ReadPosition(doc, acc, nil)
		if err != nil {
			return MeshData{}, fmt.Errorf("primitive %d: failed to read positions: %w", i, err)
		}

		var indices []uint32
		if prim.Indices != nil {
			acc, err = accessor(doc, *prim.Indices)
			if err != nil {
				return MeshData{}, fmt.Errorf("primitive %d: indices: %w", i, err)
			}
			indices, err = modeler.ReadIndices(doc, acc, nil)
			if err != nil {
				return MeshData{}, fmt.Errorf("primitive %d: failed to read indices: %w", i, err)
			}
		} else {
			indices = make([]uint32, len(positions))
			for v := range indices {
				indices[v] = uint32(v)
			}
		}

		for _, idx := range indices {
			if int(idx) >= len(positions) {
				return MeshData{}, fmt.Errorf("primitive %d: index %d out of range of %d vertices", i, idx, len(positions))
			}
		}

		var normals [][3]float32
		if normalAccessor, ok := prim.Attributes[gltf.NORMAL]; ok {
			acc, err = accessor(doc, normalAccessor)
			if err != nil {
				return MeshData{}, fmt.Errorf("primitive %d: normals: %w", i, err)
			}
			normals, err = modeler.ReadNormal(doc, acc, nil)
			if err != nil {
				return MeshData{}, fmt.Errorf("primitive %d: failed to read normals: %w", i, err)
			}
		}
		if len(normals) != len(positions) {
			normals = generateNormals(positions, indices)
		}

		base := uint32(out.VertexCount())
		for v, p := range positions {
			out.AddVertex(mgl32.Vec3(p), mgl32.Vec3(normals[v]), color)
		}
		for _, idx := range indices {
			out.Indices = append(out.Indices, base+idx)
		}
	}

	return out, nil
}

// accessor looks up an accessor by index, rejecting references past the end of the document
func accessor[T ~int | ~uint32](doc *gltf.Document, index T) (*gltf.Accessor, error) {
	i := int(index)
	if i < 0 || i >= len(doc.Accessors) || doc.Accessors[i] == nil {
		return nil, fmt.Errorf("%w: %d of %d", ErrBadAccessor, i, len(doc.Accessors))
	}
	return doc.Accessors[i], nil
}
