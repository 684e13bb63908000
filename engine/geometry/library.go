package geometry

import (
	"fmt"

	"github.com/nestorplata/shapeframes/common"
)

// Submesh describes one named shape's range inside the library's shared
// vertex and index buffers. Draws use the range with an indexed draw call:
// IndexCount indices starting at StartIndex, each offset by BaseVertex.
type Submesh struct {
	// IndexCount is the number of indices in the shape's range.
	IndexCount uint32
	// StartIndex is the first index of the range in the shared index buffer.
	StartIndex uint32
	// BaseVertex is added to every index in the range to address the shape's
	// vertices in the shared vertex buffer.
	BaseVertex int32
}

// Library is an immutable collection of shapes concatenated into one vertex
// buffer and one index buffer, addressed by named submesh ranges. Build it
// once at startup with a LibraryBuilder; afterwards it is safe for concurrent
// reads.
type Library interface {
	// Lookup resolves a shape name to its submesh range.
	//
	// Parameters:
	//   - name: the shape name given at Add time
	//
	// Returns:
	//   - Submesh: the shape's buffer range
	//   - error: non-nil if no shape with that name was added
	Lookup(name string) (Submesh, error)

	// Names returns the shape names in the order they were added.
	Names() []string

	// VertexBytes returns the concatenated vertex data for GPU upload.
	VertexBytes() []byte

	// IndexBytes returns the concatenated uint32 index data for GPU upload.
	IndexBytes() []byte

	// VertexCount returns the total number of vertices across all shapes.
	VertexCount() int

	// IndexCount returns the total number of indices across all shapes.
	IndexCount() int
}

var _ Library = &library{}

type library struct {
	names     []string
	submeshes map[string]Submesh
	vertices  []GPUVertex
	indices   []uint32
}

func (l *library) Lookup(name string) (Submesh, error) {
	sm, ok := l.submeshes[name]
	if !ok {
		return Submesh{}, fmt.Errorf("no shape named %q in mesh library", name)
	}
	return sm, nil
}

func (l *library) Names() []string {
	out := make([]string, len(l.names))
	copy(out, l.names)
	return out
}

func (l *library) VertexBytes() []byte {
	return common.SliceToBytes(l.vertices)
}

func (l *library) IndexBytes() []byte {
	return common.SliceToBytes(l.indices)
}

func (l *library) VertexCount() int {
	return len(l.vertices)
}

func (l *library) IndexCount() int {
	return len(l.indices)
}

// LibraryBuilder accumulates named, per-shape colored meshes and concatenates
// them into a Library. Submesh offsets are assigned in Add order, so the same
// Add sequence always produces the same buffer layout.
type LibraryBuilder interface {
	// Add appends a shape under name with a uniform vertex color. Adding a
	// duplicate name is an error surfaced at Build time.
	//
	// Parameters:
	//   - name: unique shape name used for Lookup
	//   - mesh: generated mesh data
	//   - color: RGBA color applied to every vertex of the shape
	//
	// Returns:
	//   - LibraryBuilder: the builder, for chaining
	Add(name string, mesh MeshData, color [4]float32) LibraryBuilder

	// Build finalizes the library.
	//
	// Returns:
	//   - Library: the immutable concatenated library
	//   - error: non-nil on duplicate names or an empty builder
	Build() (Library, error)
}

var _ LibraryBuilder = &libraryBuilder{}

type libraryBuilder struct {
	names  []string
	meshes []MeshData
	colors [][4]float32
}

// NewLibraryBuilder creates an empty mesh library builder.
//
// Returns:
//   - LibraryBuilder: the builder
func NewLibraryBuilder() LibraryBuilder {
	return &libraryBuilder{}
}

func (b *libraryBuilder) Add(name string, mesh MeshData, color [4]float32) LibraryBuilder {
	b.names = append(b.names, name)
	b.meshes = append(b.meshes, mesh)
	b.colors = append(b.colors, color)
	return b
}

func (b *libraryBuilder) Build() (Library, error) {
	if len(b.names) == 0 {
		return nil, fmt.Errorf("mesh library builder has no shapes")
	}

	lib := &library{
		names:     make([]string, 0, len(b.names)),
		submeshes: make(map[string]Submesh, len(b.names)),
	}

	for i, name := range b.names {
		if _, dup := lib.submeshes[name]; dup {
			return nil, fmt.Errorf("duplicate shape name %q in mesh library", name)
		}

		mesh := b.meshes[i]
		lib.submeshes[name] = Submesh{
			IndexCount: uint32(len(mesh.Indices)),
			StartIndex: uint32(len(lib.indices)),
			BaseVertex: int32(len(lib.vertices)),
		}
		lib.names = append(lib.names, name)

		color := b.colors[i]
		for _, pos := range mesh.Positions {
			lib.vertices = append(lib.vertices, GPUVertex{Position: pos, Color: color})
		}
		lib.indices = append(lib.indices, mesh.Indices...)
	}

	return lib, nil
}
