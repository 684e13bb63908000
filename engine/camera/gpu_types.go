package camera

import (
	"encoding/binary"
	"math"
	"unsafe"
)

// GPUPassConstants is the per-pass uniform record shared by every draw in a
// frame: the camera matrix family, eye position, render target metrics and
// clock values. Matrices are stored in row-major order, matching the shader's
// vector-on-the-left multiply convention. Size: 432 bytes.
type GPUPassConstants struct {
	View        [16]float32 // offset   0: world -> view
	InvView     [16]float32 // offset  64: view -> world
	Proj        [16]float32 // offset 128: view -> clip
	InvProj     [16]float32 // offset 192: clip -> view
	ViewProj    [16]float32 // offset 256: world -> clip
	InvViewProj [16]float32 // offset 320: clip -> world

	EyePos [3]float32 // offset 384: world-space camera position
	_pad   float32    // offset 396: alignment padding

	RenderTargetSize    [2]float32 // offset 400: viewport size in pixels
	InvRenderTargetSize [2]float32 // offset 408: reciprocal viewport size

	NearZ     float32 // offset 416: near plane distance
	FarZ      float32 // offset 420: far plane distance
	TotalTime float32 // offset 424: seconds since startup
	DeltaTime float32 // offset 428: seconds since the previous frame
}

// Size returns the size of the GPUPassConstants struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (432)
func (g *GPUPassConstants) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUPassConstants struct into a byte buffer suitable
// for GPU upload. Fields are written little-endian in declaration order.
//
// Returns:
//   - []byte: the serialized byte buffer
func (g *GPUPassConstants) Marshal() []byte {
	buf := make([]byte, g.Size())
	off := 0
	put := func(v float32) {
		binary.LittleEndian.PutUint32(buf[off:], math.Float32bits(v))
		off += 4
	}
	for _, m := range [][16]float32{g.View, g.InvView, g.Proj, g.InvProj, g.ViewProj, g.InvViewProj} {
		for _, v := range m {
			put(v)
		}
	}
	for _, v := range g.EyePos {
		put(v)
	}
	put(0) // _pad
	put(g.RenderTargetSize[0])
	put(g.RenderTargetSize[1])
	put(g.InvRenderTargetSize[0])
	put(g.InvRenderTargetSize[1])
	put(g.NearZ)
	put(g.FarZ)
	put(g.TotalTime)
	put(g.DeltaTime)
	return buf
}
