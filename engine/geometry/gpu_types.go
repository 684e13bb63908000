package geometry

// GPUVertex is the vertex layout shared by every mesh in the library:
// position at shader location 0, color at location 1. Field order matters
// because these structs are uploaded to the GPU verbatim.
type GPUVertex struct {
	// Position is the vertex position in model space (x, y, z).
	Position [3]float32
	// Color is the vertex color (r, g, b, a).
	Color [4]float32
}

// GPUVertexSize is the byte size of one GPUVertex (7 float32 components).
const GPUVertexSize = 28
