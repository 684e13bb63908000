// package renderer exposes a high-level facade over a GPU backend. The facade
// owns the shared geometry buffers, the per-frame constant buffers with their
// precomputed bind group table, and the opaque/wireframe render pipelines;
// callers drive it one frame at a time with BeginFrame/Draw/EndFrame/Present.
package renderer

import (
	"sync"

	"github.com/nestorplata/shapeframes/engine/frame"
	"github.com/nestorplata/shapeframes/engine/geometry"
	"github.com/nestorplata/shapeframes/engine/window"
)

// renderer is the implementation of the Renderer interface.
type renderer struct {
	mu *sync.Mutex

	backendType RendererBackendType
	backend     RendererBackend

	// Pre-creation config collected from builder options
	forceFallbackAdapter bool
	pendingPresentMode   *PresentMode
	pendingMSAA          *MSAASampleCount
}

// Renderer defines the interface for the rendering system.
//
// This is a high-level API designed to simplify rendering tasks into a streamlined and idiomatic flow.
// The Renderer manages the shared mesh buffers, the ring of per-frame constant buffers, and the
// render pipelines. It also implements a backend which allows for multiple backend API
// implementations to exist.
type Renderer interface {
	// Resize configures the underlying backend to handle a new surface size.
	// This should be called when re-sizing the window or when the surface size should change.
	//
	// Parameters:
	//   - width: the new width of the surface in pixels
	//   - height: the new height of the surface in pixels
	Resize(width, height int)

	// SetPresentMode sets the surface present mode which controls how frames are delivered to the display.
	// A call to Resize is required after changing this for the new mode to take effect.
	//
	// Parameters:
	//   - mode: the PresentMode to use (VSync or Uncapped)
	SetPresentMode(mode PresentMode)

	// InitGeometry uploads a mesh library's concatenated vertex and index data
	// into GPU buffers shared by every draw call.
	//
	// Parameters:
	//   - lib: the mesh library to upload
	//
	// Returns:
	//   - error: an error if buffer creation fails
	InitGeometry(lib geometry.Library) error

	// InitFrameResources creates the per-frame object and pass constant
	// buffers plus the bind group table addressing them. Must be called once,
	// after InitGeometry, before the first frame.
	//
	// Parameters:
	//   - frameCount: number of frames in the resource ring
	//   - itemCount: number of per-item records in each frame's object buffer
	//   - objectStride: aligned byte stride of one object record
	//   - passStride: aligned byte stride of the pass record
	//
	// Returns:
	//   - error: an error if buffer or bind group creation fails
	InitFrameResources(frameCount, itemCount, objectStride, passStride int) error

	// Queue returns the completion handshake used by the frame resource pool
	// to know when a frame's GPU work has finished.
	//
	// Returns:
	//   - frame.CommandQueue: the backend's submission queue view
	Queue() frame.CommandQueue

	// WriteArenas uploads staged constant records into the per-frame GPU
	// buffers. All writes are flushed in one pass to keep queue traffic
	// coalesced.
	//
	// Parameters:
	//   - writes: the staged record uploads
	//
	// Returns:
	//   - error: an error if a write targets an unknown frame or slot
	WriteArenas(writes []ArenaWrite) error

	// SetWireframe toggles between the solid and wireframe pipelines for
	// subsequent frames.
	//
	// Parameters:
	//   - enabled: true to draw wireframe, false for solid fill
	SetWireframe(enabled bool)

	// Wireframe reports whether the wireframe pipeline is active.
	//
	// Returns:
	//   - bool: true if wireframe rendering is enabled
	Wireframe() bool

	// BeginFrame acquires the swapchain texture, begins the main render pass
	// for the given frame ring index, and binds that frame's pass constants.
	// Must be paired with EndFrame.
	//
	// Parameters:
	//   - frameIndex: ring index of the frame resource being consumed
	//
	// Returns:
	//   - error: an error if the swapchain texture could not be acquired
	BeginFrame(frameIndex int) error

	// Draw encodes one indexed draw for the item in the given slot using its
	// submesh range of the shared geometry buffers. Multiple Draw invocations
	// can be made between BeginFrame and EndFrame.
	//
	// Parameters:
	//   - slot: the item's logical slot, selecting its object constants
	//   - submesh: the item's range in the shared buffers
	//
	// Returns:
	//   - error: an error if no frame is in progress
	Draw(slot int, submesh geometry.Submesh) error

	// EndFrame ends the render pass, submits the command buffer to the GPU
	// queue, and stamps a new completion marker for the submitted work.
	// Must be called after BeginFrame and all Draw invocations for the frame.
	EndFrame()

	// Present presents the surface to the display and releases the swapchain texture.
	// Must be called once per frame after EndFrame.
	Present()

	// Release frees all GPU resources owned by the renderer.
	Release()
}

var _ Renderer = &renderer{}

// NewRenderer creates a new Renderer instance with the specified backend type,
// targeting the given window's surface.
//
// Parameters:
//   - backendType: the type of rendering backend to use (e.g., WGPU)
//   - win: the window supplying the surface descriptor and initial size
//   - options: variadic list of RendererBuilderOption functions to configure the Renderer
//
// Returns:
//   - Renderer: a new instance of Renderer configured with the specified backend and options
func NewRenderer(backendType RendererBackendType, win window.Window, options ...RendererBuilderOption) Renderer {
	r := &renderer{
		mu:          &sync.Mutex{},
		backendType: backendType,
	}

	// Apply options first so config flags (e.g. forceFallbackAdapter) are
	// available before the backend requests a GPU adapter.
	for _, opt := range options {
		opt(r)
	}

	msaa := MSAA4x // default
	if r.pendingMSAA != nil {
		msaa = *r.pendingMSAA
	}

	switch backendType {
	case BackendTypeWGPU:
		fallthrough
	default:
		r.backend = newWGPURendererBackend(win.SurfaceDescriptor(), r.forceFallbackAdapter, msaa)
	}

	if r.pendingPresentMode != nil {
		r.backend.SetPresentMode(*r.pendingPresentMode)
	}

	r.backend.ConfigureSurface(win.Width(), win.Height())
	return r
}

func (r *renderer) Resize(width, height int) {
	r.backend.ConfigureSurface(width, height)
}

func (r *renderer) SetPresentMode(mode PresentMode) {
	r.backend.SetPresentMode(mode)
}

func (r *renderer) InitGeometry(lib geometry.Library) error {
	return r.backend.InitGeometry(lib)
}

func (r *renderer) InitFrameResources(frameCount, itemCount, objectStride, passStride int) error {
	return r.backend.InitFrameResources(frameCount, itemCount, objectStride, passStride)
}

func (r *renderer) Queue() frame.CommandQueue {
	return r.backend.Queue()
}

func (r *renderer) WriteArenas(writes []ArenaWrite) error {
	return r.backend.WriteArenas(writes)
}

func (r *renderer) SetWireframe(enabled bool) {
	r.backend.SetWireframe(enabled)
}

func (r *renderer) Wireframe() bool {
	return r.backend.Wireframe()
}

func (r *renderer) BeginFrame(frameIndex int) error {
	return r.backend.BeginFrame(frameIndex)
}

func (r *renderer) Draw(slot int, submesh geometry.Submesh) error {
	return r.backend.Draw(slot, submesh)
}

func (r *renderer) EndFrame() {
	r.backend.EndFrame()
}

func (r *renderer) Present() {
	r.backend.Present()
}

func (r *renderer) Release() {
	r.backend.Release()
}
