package scene

import (
	"sync"

	"github.com/nestorplata/shapeframes/engine/geometry"
)

// RenderItem is a single drawable instance of a library mesh. Each item owns a
// stable slot in the per-frame object constant buffers and a world transform.
// Mutating the transform marks the item dirty for a full ring of frames so the
// new matrix reaches every in-flight copy of its constants.
type RenderItem interface {
	// Slot returns the item's stable index into the per-frame object constant buffers.
	//
	// Returns:
	//   - int: the item's slot, assigned in registration order
	Slot() int

	// MeshName returns the name of the library mesh this item draws.
	//
	// Returns:
	//   - string: the mesh name
	MeshName() string

	// Submesh returns the item's index range within the shared geometry buffers.
	//
	// Returns:
	//   - geometry.Submesh: the draw range
	Submesh() geometry.Submesh

	// World returns the item's current world transform in column-major order.
	//
	// Returns:
	//   - [16]float32: the world matrix
	World() [16]float32

	// SetWorld replaces the item's world transform and marks it dirty for a full
	// ring of frames. Calling it again before the previous value has propagated
	// simply restarts the countdown with the newest matrix.
	//
	// Parameters:
	//   - world: the new world matrix in column-major order
	SetWorld(world [16]float32)

	// DirtyFrames returns how many upcoming frames still need this item's
	// constants re-uploaded. Zero means every frame in the ring holds the
	// current transform.
	//
	// Returns:
	//   - int: remaining dirty frame count
	DirtyFrames() int
}

type renderItem struct {
	mu *sync.Mutex

	slot     int
	meshName string
	submesh  geometry.Submesh

	world      [16]float32
	dirty      int
	frameCount int
}

var _ RenderItem = &renderItem{}

func newRenderItem(slot int, meshName string, submesh geometry.Submesh, world [16]float32, frameCount int) *renderItem {
	return &renderItem{
		mu:         &sync.Mutex{},
		slot:       slot,
		meshName:   meshName,
		submesh:    submesh,
		world:      world,
		dirty:      frameCount,
		frameCount: frameCount,
	}
}

func (ri *renderItem) Slot() int {
	return ri.slot
}

func (ri *renderItem) MeshName() string {
	return ri.meshName
}

func (ri *renderItem) Submesh() geometry.Submesh {
	return ri.submesh
}

func (ri *renderItem) World() [16]float32 {
	ri.mu.Lock()
	defer ri.mu.Unlock()
	return ri.world
}

func (ri *renderItem) SetWorld(world [16]float32) {
	ri.mu.Lock()
	defer ri.mu.Unlock()
	ri.world = world
	ri.dirty = ri.frameCount
}

func (ri *renderItem) DirtyFrames() int {
	ri.mu.Lock()
	defer ri.mu.Unlock()
	return ri.dirty
}

// consumeDirty decrements the dirty countdown after the item's constants were
// staged into the current frame's arena. No-op at zero.
func (ri *renderItem) consumeDirty() {
	ri.mu.Lock()
	defer ri.mu.Unlock()
	if ri.dirty > 0 {
		ri.dirty--
	}
}
