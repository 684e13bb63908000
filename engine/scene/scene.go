package scene

import (
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/nestorplata/shapeframes/common"
	"github.com/nestorplata/shapeframes/engine/camera"
	"github.com/nestorplata/shapeframes/engine/frame"
	"github.com/nestorplata/shapeframes/engine/geometry"
	"github.com/nestorplata/shapeframes/engine/renderer"
)

// objectConstantsSize is the unpadded byte size of one item's per-object
// constants: a single row-major world matrix.
const objectConstantsSize = 64

// Scene owns a set of RenderItems drawn from one geometry library, a Camera,
// and a Renderer, and drives the frame resource ring that lets the CPU produce
// frames ahead of the GPU. Items are registered with Add before Init; after
// Init the item set is fixed and each Update/Draw pair produces one frame.
// Thread-safe for concurrent access.
type Scene interface {
	// Name returns the scene's identifier.
	Name() string

	// Camera returns the scene's camera.
	Camera() camera.Camera

	// Renderer returns the scene's renderer.
	Renderer() renderer.Renderer

	// Add registers a drawable instance of a library mesh. The item is assigned
	// the next slot in registration order, which is also its draw order. Must be
	// called before Init.
	//
	// Parameters:
	//   - meshName: the name of a mesh in the scene's geometry library
	//   - world: the item's initial world matrix in column-major order
	//
	// Returns:
	//   - RenderItem: the registered item
	//   - error: an error if the mesh is unknown or the scene is already initialized
	Add(meshName string, world [16]float32) (RenderItem, error)

	// Items returns the registered items in slot order.
	//
	// Returns:
	//   - []RenderItem: the scene's items
	Items() []RenderItem

	// Init uploads the geometry library to the GPU, creates the frame resource
	// ring sized for the registered item count, and allocates the per-frame
	// constant buffers. Must be called once, after all Add calls.
	//
	// Returns:
	//   - error: an error if the scene has no items or a GPU resource failed
	Init() error

	// Resize updates the render target size used for the pass constants and
	// the camera's aspect ratio. Safe to call before Init.
	//
	// Parameters:
	//   - width: render target width in pixels
	//   - height: render target height in pixels
	Resize(width, height int)

	// Update advances to the next frame resource — blocking only if the GPU
	// still owns it — then stages object constants for every dirty item and
	// this frame's pass constants into the frame's arenas and uploads them.
	//
	// Parameters:
	//   - totalTime: seconds since startup
	//   - deltaTime: seconds since the previous Update
	//
	// Returns:
	//   - error: an error if the frame resource could not be acquired or uploads failed
	Update(totalTime, deltaTime float32) error

	// Draw records and submits draw calls for every item in slot order against
	// the frame resource acquired by the preceding Update, stamps the frame's
	// completion marker, and presents.
	//
	// Returns:
	//   - error: an error if the swapchain texture could not be acquired
	Draw() error

	// StagedUploads reports how many constant records the most recent Update
	// staged for GPU upload, for profiling.
	//
	// Returns:
	//   - int: the staged record count of the last Update
	StagedUploads() int

	// Release frees the GPU resources held through the scene's renderer.
	Release()
}

type scene struct {
	mu *sync.Mutex

	name string

	cam camera.Camera
	r   renderer.Renderer
	lib geometry.Library

	items       []*renderItem
	pool        frame.Pool
	frameCount  int
	initialized bool

	width  int
	height int

	// Pre-allocated slices reused each frame to avoid per-frame allocations.
	writePool   []renderer.ArenaWrite
	pendingPool []*renderItem

	// computePool manages a bounded set of reusable goroutines for the parallel
	// constant staging phase of Update. Workers persist across frames, avoiding
	// per-frame goroutine spawn/teardown overhead.
	computePool    worker.DynamicWorkerPool
	computeWorkers int
}

// Ensure scene implements Scene interface.
var _ Scene = &scene{}

// NewScene creates a new Scene over the given camera, renderer, and geometry
// library. All three are required and NewScene panics if any of them is nil.
//
// Parameters:
//   - name: the name of the scene
//   - cam: the camera to attach (must not be nil)
//   - r: the renderer to attach (must not be nil)
//   - lib: the geometry library items draw from (must not be nil)
//   - options: functional options to further configure the scene
//
// Returns:
//   - Scene: the newly created scene
func NewScene(name string, cam camera.Camera, r renderer.Renderer, lib geometry.Library, options ...SceneBuilderOption) Scene {
	if cam == nil {
		panic("scene: NewScene requires a non-nil Camera")
	}
	if r == nil {
		panic("scene: NewScene requires a non-nil Renderer")
	}
	if lib == nil {
		panic("scene: NewScene requires a non-nil geometry Library")
	}

	s := &scene{
		mu:   &sync.Mutex{},
		name: name,
		cam:  cam,
		r:    r,
		lib:  lib,
	}

	for _, option := range options {
		option(s)
	}
	s.frameCount = common.Coalesce(s.frameCount, 3)
	s.computeWorkers = common.Coalesce(s.computeWorkers, max(runtime.NumCPU()-1, 1))

	// Initialize the compute pool after options so WithComputeWorkers can override the default.
	// Queue size of 256 accommodates typical staging chunk counts with headroom.
	s.computePool = worker.NewDynamicWorkerPool(s.computeWorkers, 256, 1*time.Second)

	return s
}

func (s *scene) Name() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.name
}

func (s *scene) Camera() camera.Camera {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cam
}

func (s *scene) Renderer() renderer.Renderer {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r
}

func (s *scene) Add(meshName string, world [16]float32) (RenderItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil, fmt.Errorf("scene %q: cannot add items after Init", s.name)
	}
	submesh, err := s.lib.Lookup(meshName)
	if err != nil {
		return nil, fmt.Errorf("scene %q: %w", s.name, err)
	}

	item := newRenderItem(len(s.items), meshName, submesh, world, s.frameCount)
	s.items = append(s.items, item)
	return item, nil
}

func (s *scene) Items() []RenderItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]RenderItem, len(s.items))
	for i, item := range s.items {
		out[i] = item
	}
	return out
}

func (s *scene) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return fmt.Errorf("scene %q: already initialized", s.name)
	}
	if len(s.items) == 0 {
		return fmt.Errorf("scene %q: no items registered", s.name)
	}

	passSize := (&camera.GPUPassConstants{}).Size()

	if err := s.r.InitGeometry(s.lib); err != nil {
		return fmt.Errorf("scene %q: init geometry: %w", s.name, err)
	}
	if err := s.r.InitFrameResources(
		s.frameCount,
		len(s.items),
		frame.AlignRecordSize(objectConstantsSize),
		frame.AlignRecordSize(passSize),
	); err != nil {
		return fmt.Errorf("scene %q: init frame resources: %w", s.name, err)
	}

	s.pool = frame.NewPool(s.r.Queue(), len(s.items), objectConstantsSize, passSize,
		frame.WithFrameCount(s.frameCount))
	s.initialized = true
	return nil
}

func (s *scene) Resize(width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.width = width
	s.height = height
	if height > 0 {
		s.cam.SetAspect(float32(width) / float32(height))
	}
}

func (s *scene) Update(totalTime, deltaTime float32) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return fmt.Errorf("scene %q: Update before Init", s.name)
	}

	res, err := s.pool.Advance()
	if err != nil {
		return fmt.Errorf("scene %q: advance frame: %w", s.name, err)
	}

	// Phase 1: parallel staging. Collect the items whose constants are stale in
	// this frame's copy, then split them into contiguous chunks so each worker
	// transposes and writes a disjoint range of arena slots.
	pending := s.pendingPool[:0]
	for _, item := range s.items {
		if item.DirtyFrames() > 0 {
			pending = append(pending, item)
		}
	}
	s.pendingPool = pending

	if len(pending) > 0 {
		var wg sync.WaitGroup
		chunkSize := (len(pending) + s.computeWorkers - 1) / s.computeWorkers
		taskID := 0
		for start := 0; start < len(pending); start += chunkSize {
			end := min(start+chunkSize, len(pending))
			chunk := pending[start:end]

			wg.Add(1)
			id := taskID
			taskID++
			s.computePool.SubmitTask(worker.Task{
				ID: id,
				Do: func() (any, error) {
					defer wg.Done()
					var transposed [16]float32
					for _, item := range chunk {
						world := item.World()
						common.Transpose4(transposed[:], world[:])
						res.Objects().Write(item.slot, common.SliceToBytes(transposed[:]))
						item.consumeDirty()
					}
					return nil, nil
				},
			})
		}
		wg.Wait()
	}

	// Phase 2: coalesced GPU submission — one upload per staged record, collected
	// into a single slice and handed to the renderer in one call.
	writes := s.writePool[:0]
	for _, item := range pending {
		writes = append(writes, renderer.ArenaWrite{
			Frame: res.Index(),
			Kind:  renderer.ArenaKindObject,
			Slot:  item.slot,
			Data:  res.Objects().Record(item.slot),
		})
	}

	// Pass constants change every frame (camera, time) and are always re-staged.
	res.Pass().Write(0, s.passConstants(totalTime, deltaTime).Marshal())
	writes = append(writes, renderer.ArenaWrite{
		Frame: res.Index(),
		Kind:  renderer.ArenaKindPass,
		Slot:  0,
		Data:  res.Pass().Record(0),
	})
	s.writePool = writes

	if err := s.r.WriteArenas(writes); err != nil {
		return fmt.Errorf("scene %q: upload arenas: %w", s.name, err)
	}
	return nil
}

// passConstants assembles this frame's pass constants from the camera and clock.
// Matrices are transposed to the row-major layout the shaders consume. Callers
// hold s.mu.
func (s *scene) passConstants(totalTime, deltaTime float32) *camera.GPUPassConstants {
	view := s.cam.ViewMatrix()
	proj := s.cam.ProjectionMatrix()

	var viewProj, invView, invProj, invViewProj [16]float32
	common.Mul4(viewProj[:], proj[:], view[:])
	if !common.Invert4(invView[:], view[:]) {
		common.Identity(invView[:])
	}
	if !common.Invert4(invProj[:], proj[:]) {
		common.Identity(invProj[:])
	}
	if !common.Invert4(invViewProj[:], viewProj[:]) {
		common.Identity(invViewProj[:])
	}

	pc := &camera.GPUPassConstants{
		NearZ:     s.cam.Near(),
		FarZ:      s.cam.Far(),
		TotalTime: totalTime,
		DeltaTime: deltaTime,
	}
	common.Transpose4(pc.View[:], view[:])
	common.Transpose4(pc.InvView[:], invView[:])
	common.Transpose4(pc.Proj[:], proj[:])
	common.Transpose4(pc.InvProj[:], invProj[:])
	common.Transpose4(pc.ViewProj[:], viewProj[:])
	common.Transpose4(pc.InvViewProj[:], invViewProj[:])

	x, y, z := s.cam.Position()
	pc.EyePos = [3]float32{x, y, z}
	if s.width > 0 && s.height > 0 {
		pc.RenderTargetSize = [2]float32{float32(s.width), float32(s.height)}
		pc.InvRenderTargetSize = [2]float32{1 / float32(s.width), 1 / float32(s.height)}
	}
	return pc
}

func (s *scene) Draw() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return fmt.Errorf("scene %q: Draw before Init", s.name)
	}
	if s.pool.Current() == nil {
		return fmt.Errorf("scene %q: Draw before the first Update", s.name)
	}

	if err := s.r.BeginFrame(s.pool.FrameIndex()); err != nil {
		return fmt.Errorf("scene %q: begin frame: %w", s.name, err)
	}

	for _, item := range s.items {
		if err := s.r.Draw(item.slot, item.submesh); err != nil {
			return fmt.Errorf("scene %q: draw item %d (%s): %w", s.name, item.slot, item.meshName, err)
		}
	}

	s.r.EndFrame()

	// The marker is stamped after submission so the frame resource pool can
	// tell when the GPU has consumed this frame's constants.
	s.pool.Retire()

	s.r.Present()
	return nil
}

func (s *scene) StagedUploads() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.writePool)
}

func (s *scene) Release() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.r.Release()
}
