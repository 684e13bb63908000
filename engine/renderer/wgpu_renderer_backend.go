package renderer

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/nestorplata/shapeframes/engine/frame"
	"github.com/nestorplata/shapeframes/engine/geometry"
)

// shaderSource is the WGSL for both render pipelines. Object and pass
// matrices are stored row-major, so positions multiply with the vector on the
// left.
const shaderSource = `
struct ObjectConstants {
	world : mat4x4<f32>,
};

struct PassConstants {
	view : mat4x4<f32>,
	inv_view : mat4x4<f32>,
	proj : mat4x4<f32>,
	inv_proj : mat4x4<f32>,
	view_proj : mat4x4<f32>,
	inv_view_proj : mat4x4<f32>,
	eye_pos : vec3<f32>,
	pad1 : f32,
	render_target_size : vec2<f32>,
	inv_render_target_size : vec2<f32>,
	near_z : f32,
	far_z : f32,
	total_time : f32,
	delta_time : f32,
};

@group(0) @binding(0) var<uniform> object : ObjectConstants;
@group(1) @binding(0) var<uniform> pass_constants : PassConstants;

struct VertexInput {
	@location(0) position : vec3<f32>,
	@location(1) color : vec4<f32>,
};

struct VertexOutput {
	@builtin(position) position : vec4<f32>,
	@location(0) color : vec4<f32>,
};

@vertex
fn vs_main(vin : VertexInput) -> VertexOutput {
	var vout : VertexOutput;
	let world_pos = vec4<f32>(vin.position, 1.0) * object.world;
	vout.position = world_pos * pass_constants.view_proj;
	vout.color = vin.color;
	return vout;
}

@fragment
fn fs_main(vout : VertexOutput) -> @location(0) vec4<f32> {
	return vout.color;
}
`

type wgpuRendererBackendImpl struct {
	mu     *sync.Mutex
	device *wgpu.Device
	queue  *wgpu.Queue

	instance *wgpu.Instance
	adapter  *wgpu.Adapter
	surface  *wgpu.Surface

	surfaceFormat        *wgpu.TextureFormat
	msaaTextureView      *wgpu.TextureView
	depthTextureView     *wgpu.TextureView
	renderPassDescriptor *wgpu.RenderPassDescriptor

	presentMode wgpu.PresentMode // defaults to PresentModeImmediate (Uncapped)
	sampleCount MSAASampleCount  // MSAA sample count for the main render pass

	// Shared geometry buffers uploaded by InitGeometry.
	vertexBuffer *wgpu.Buffer
	indexBuffer  *wgpu.Buffer

	// Per-frame constant buffers and the bind group table addressing them.
	// The table holds one bind group per (frame, slot) object record followed
	// by one per frame's pass record; both the table construction here and
	// the lookups at draw time use the closed-form offsets from the frame
	// package.
	objectBuffers  []*wgpu.Buffer
	passBuffers    []*wgpu.Buffer
	bindGroupTable []*wgpu.BindGroup
	frameCount     int
	itemCount      int
	objectStride   int
	passStride     int

	solidPipeline *wgpu.RenderPipeline
	wirePipeline  *wgpu.RenderPipeline
	wireframe     bool

	cmdQueue *wgpuCommandQueue

	// Frame state for batched rendering across multiple draw calls
	frameEncoder *wgpu.CommandEncoder
	framePass    *wgpu.RenderPassEncoder
	frameSurface *wgpu.Texture
	frameView    *wgpu.TextureView
	currentFrame int
}

type wgpuRendererBackend interface {
	// ConfigureSurface is a wrapper for boilerplate logic required when calling ConfigureSurface on a surface.
	// This is required when the surface size changes, such as when the window is resized.
	//
	// Parameters:
	//   - width: the new width of the surface in pixels
	//   - height: the new height of the surface in pixels
	ConfigureSurface(width, height int)

	// SetPresentMode sets the surface present mode which controls how frames are delivered to the display.
	//
	// Parameters:
	//   - mode: the PresentMode to use (VSync or Uncapped)
	SetPresentMode(mode PresentMode)

	// InitGeometry uploads a mesh library's vertex and index data into GPU buffers.
	//
	// Parameters:
	//   - lib: the mesh library to upload
	//
	// Returns:
	//   - error: an error if the buffers could not be created, otherwise nil
	InitGeometry(lib geometry.Library) error

	// InitFrameResources creates the per-frame constant buffers, the bind group
	// table addressing every record, and the solid/wireframe render pipelines.
	//
	// Parameters:
	//   - frameCount: number of frames in the resource ring
	//   - itemCount: number of per-item records in each frame's object buffer
	//   - objectStride: aligned byte stride of one object record
	//   - passStride: aligned byte stride of the pass record
	//
	// Returns:
	//   - error: an error if a GPU resource could not be created
	InitFrameResources(frameCount, itemCount, objectStride, passStride int) error

	// Queue returns the backend's completion handshake for the frame resource pool.
	//
	// Returns:
	//   - frame.CommandQueue: the marker-based queue view
	Queue() frame.CommandQueue

	// WriteArenas uploads staged constant records into the per-frame GPU buffers.
	//
	// Parameters:
	//   - writes: the staged record uploads
	//
	// Returns:
	//   - error: an error if a write targets an unknown frame or slot
	WriteArenas(writes []ArenaWrite) error

	// SetWireframe toggles between the solid and wireframe pipelines.
	//
	// Parameters:
	//   - enabled: true to draw wireframe, false for solid fill
	SetWireframe(enabled bool)

	// Wireframe reports whether the wireframe pipeline is active.
	//
	// Returns:
	//   - bool: true if wireframe rendering is enabled
	Wireframe() bool

	// BeginFrame acquires the next swapchain texture, creates a command encoder, begins
	// the main render pass, and binds the given frame's pass constants. Must be paired
	// with EndFrame after all Draw invocations.
	//
	// Parameters:
	//   - frameIndex: ring index of the frame resource being consumed
	//
	// Returns:
	//   - error: an error if the swapchain texture could not be acquired
	BeginFrame(frameIndex int) error

	// Draw encodes a single indexed draw within the current render pass started by
	// BeginFrame, binding the object constants for the given slot of the active frame.
	//
	// Parameters:
	//   - slot: the item's logical slot
	//   - submesh: the item's range in the shared geometry buffers
	//
	// Returns:
	//   - error: an error if no frame is in progress
	Draw(slot int, submesh geometry.Submesh) error

	// EndFrame ends the current render pass and submits the command buffer to the GPU.
	// Does not present the surface — call Present() after EndFrame to display the frame.
	// Must be called after BeginFrame and all Draw invocations.
	EndFrame()

	// Present presents the surface to the display and releases the swapchain texture.
	// Must be called once per frame after EndFrame.
	Present()

	// Release frees all GPU resources owned by the backend.
	Release()
}

var _ RendererBackend = &wgpuRendererBackendImpl{}

func newWGPURendererBackend(surfaceDescriptor *wgpu.SurfaceDescriptor, forceFallbackAdapter bool, sampleCount MSAASampleCount) wgpuRendererBackend {
	runtime.LockOSThread()
	w := &wgpuRendererBackendImpl{
		mu:          &sync.Mutex{},
		instance:    wgpu.CreateInstance(nil),
		presentMode: wgpu.PresentModeImmediate,
		sampleCount: sampleCount,
	}
	w.surface = w.instance.CreateSurface(surfaceDescriptor)

	a, err := w.instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		ForceFallbackAdapter: forceFallbackAdapter,
		CompatibleSurface:    w.surface,
	})
	if err != nil {
		panic(err)
	}
	w.adapter = a

	d, err := a.RequestDevice(&wgpu.DeviceDescriptor{
		Label: "Main Device",
		RequiredLimits: &wgpu.RequiredLimits{
			Limits: wgpu.DefaultLimits(),
		},
	})
	if err != nil {
		panic(err)
	}
	w.device = d
	w.queue = d.GetQueue()
	w.cmdQueue = newWGPUCommandQueue(d)

	return w
}

func (b *wgpuRendererBackendImpl) ConfigureSurface(width, height int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	capabilities := b.surface.GetCapabilities(b.adapter)
	b.surfaceFormat = &capabilities.Formats[0]

	b.surface.Configure(b.adapter, b.device, &wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment,
		Format:      *b.surfaceFormat,
		Width:       uint32(width),
		Height:      uint32(height),
		PresentMode: b.presentMode,
		AlphaMode:   capabilities.AlphaModes[0],
	})

	count := uint32(b.sampleCount)
	msaaEnabled := count > 1

	if msaaEnabled {
		// Create the MSAA texture that the render pass draws into; the resolved
		// result is written to the swapchain view as the ResolveTarget.
		msaaTexture, err := b.device.CreateTexture(&wgpu.TextureDescriptor{
			Label: "MSAA Texture",
			Size: wgpu.Extent3D{
				Width:              uint32(width),
				Height:             uint32(height),
				DepthOrArrayLayers: 1,
			},
			MipLevelCount: 1,
			SampleCount:   count,
			Dimension:     wgpu.TextureDimension2D,
			Format:        *b.surfaceFormat,
			Usage:         wgpu.TextureUsageRenderAttachment,
		})
		if err != nil {
			panic(err)
		}
		b.msaaTextureView, err = msaaTexture.CreateView(nil)
		if err != nil {
			panic(err)
		}
	} else {
		// No MSAA — the render pass draws directly to the swapchain view.
		b.msaaTextureView = nil
	}

	// Depth texture sample count must match the color attachment.
	depthTexture, err := b.device.CreateTexture(&wgpu.TextureDescriptor{
		Label: "Depth Texture",
		Size: wgpu.Extent3D{
			Width:              uint32(width),
			Height:             uint32(height),
			DepthOrArrayLayers: 1,
		},
		MipLevelCount: 1,
		SampleCount:   count,
		Dimension:     wgpu.TextureDimension2D,
		Format:        wgpu.TextureFormatDepth24Plus,
		Usage:         wgpu.TextureUsageRenderAttachment,
	})
	if err != nil {
		panic(err)
	}
	b.depthTextureView, err = depthTexture.CreateView(nil)
	if err != nil {
		panic(err)
	}

	// Build the cached render pass descriptor for the main render target.
	// When MSAA is enabled, View is the MSAA texture and ResolveTarget is
	// set per-frame to the swapchain view. When disabled, View is set
	// per-frame to the swapchain view and ResolveTarget remains nil.
	storeOp := wgpu.StoreOpStore
	if msaaEnabled {
		storeOp = wgpu.StoreOpDiscard // Don't store MSAA data, just resolve
	}
	b.renderPassDescriptor = &wgpu.RenderPassDescriptor{
		ColorAttachments: []wgpu.RenderPassColorAttachment{
			{
				View:          b.msaaTextureView, // nil when MSAA is off; set in BeginFrame
				ResolveTarget: nil,               // set per-frame when MSAA is on
				LoadOp:        wgpu.LoadOpClear,
				StoreOp:       storeOp,
				ClearValue: wgpu.Color{
					R: 0.1, G: 0.1, B: 0.1, A: 1.0,
				},
			},
		},
		DepthStencilAttachment: &wgpu.RenderPassDepthStencilAttachment{
			View:            b.depthTextureView, // Persistent until resize
			DepthLoadOp:     wgpu.LoadOpClear,
			DepthStoreOp:    wgpu.StoreOpDiscard, // Depth not needed after resolving
			DepthClearValue: 1.0,
		},
	}
}

func (b *wgpuRendererBackendImpl) SetPresentMode(mode PresentMode) {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch mode {
	case PresentModeVSync:
		b.presentMode = wgpu.PresentModeFifo
	case PresentModeUncapped:
		fallthrough
	default:
		b.presentMode = wgpu.PresentModeImmediate
	}
}

func (b *wgpuRendererBackendImpl) InitGeometry(lib geometry.Library) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	vertexData := lib.VertexBytes()
	indexData := lib.IndexBytes()

	vb, err := b.device.CreateBuffer(&wgpu.BufferDescriptor{
		Label:            "Shape Vertex Buffer",
		Size:             uint64(len(vertexData)),
		Usage:            wgpu.BufferUsageVertex | wgpu.BufferUsageCopyDst,
		MappedAtCreation: false,
	})
	if err != nil {
		return err
	}
	b.queue.WriteBuffer(vb, 0, vertexData)
	b.vertexBuffer = vb

	ib, err := b.device.CreateBuffer(&wgpu.BufferDescriptor{
		Label:            "Shape Index Buffer",
		Size:             uint64(len(indexData)),
		Usage:            wgpu.BufferUsageIndex | wgpu.BufferUsageCopyDst,
		MappedAtCreation: false,
	})
	if err != nil {
		return err
	}
	b.queue.WriteBuffer(ib, 0, indexData)
	b.indexBuffer = ib

	return nil
}

func (b *wgpuRendererBackendImpl) InitFrameResources(frameCount, itemCount, objectStride, passStride int) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.frameCount = frameCount
	b.itemCount = itemCount
	b.objectStride = objectStride
	b.passStride = passStride

	objectLayout, err := b.device.CreateBindGroupLayout(&wgpu.BindGroupLayoutDescriptor{
		Label: "Object Constants Layout",
		Entries: []wgpu.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: wgpu.ShaderStageVertex,
				Buffer: wgpu.BufferBindingLayout{
					Type:           wgpu.BufferBindingTypeUniform,
					MinBindingSize: uint64(objectStride),
				},
			},
		},
	})
	if err != nil {
		return err
	}
	passLayout, err := b.device.CreateBindGroupLayout(&wgpu.BindGroupLayoutDescriptor{
		Label: "Pass Constants Layout",
		Entries: []wgpu.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: wgpu.ShaderStageVertex,
				Buffer: wgpu.BufferBindingLayout{
					Type:           wgpu.BufferBindingTypeUniform,
					MinBindingSize: uint64(passStride),
				},
			},
		},
	})
	if err != nil {
		return err
	}

	b.objectBuffers = make([]*wgpu.Buffer, frameCount)
	b.passBuffers = make([]*wgpu.Buffer, frameCount)
	for f := 0; f < frameCount; f++ {
		ob, bufErr := b.device.CreateBuffer(&wgpu.BufferDescriptor{
			Label: fmt.Sprintf("Frame %d Object Constants", f),
			Size:  uint64(itemCount * objectStride),
			Usage: wgpu.BufferUsageUniform | wgpu.BufferUsageCopyDst,
		})
		if bufErr != nil {
			return bufErr
		}
		b.objectBuffers[f] = ob

		pb, bufErr := b.device.CreateBuffer(&wgpu.BufferDescriptor{
			Label: fmt.Sprintf("Frame %d Pass Constants", f),
			Size:  uint64(passStride),
			Usage: wgpu.BufferUsageUniform | wgpu.BufferUsageCopyDst,
		})
		if bufErr != nil {
			return bufErr
		}
		b.passBuffers[f] = pb
	}

	// Precompute the full bind group table. Table indices come from the same
	// closed-form offsets Draw uses at bind time.
	b.bindGroupTable = make([]*wgpu.BindGroup, frame.TableSize(frameCount, itemCount))
	for f := 0; f < frameCount; f++ {
		for s := 0; s < itemCount; s++ {
			bg, bgErr := b.device.CreateBindGroup(&wgpu.BindGroupDescriptor{
				Label:  fmt.Sprintf("Frame %d Object %d Bind Group", f, s),
				Layout: objectLayout,
				Entries: []wgpu.BindGroupEntry{
					{
						Binding: 0,
						Buffer:  b.objectBuffers[f],
						Offset:  uint64(s * objectStride),
						Size:    uint64(objectStride),
					},
				},
			})
			if bgErr != nil {
				return bgErr
			}
			b.bindGroupTable[frame.ObjectOffset(f, itemCount, s)] = bg
		}

		bg, bgErr := b.device.CreateBindGroup(&wgpu.BindGroupDescriptor{
			Label:  fmt.Sprintf("Frame %d Pass Bind Group", f),
			Layout: passLayout,
			Entries: []wgpu.BindGroupEntry{
				{
					Binding: 0,
					Buffer:  b.passBuffers[f],
					Offset:  0,
					Size:    uint64(passStride),
				},
			},
		})
		if bgErr != nil {
			return bgErr
		}
		b.bindGroupTable[frame.PassOffset(frameCount, itemCount, f)] = bg
	}

	return b.initPipelines(objectLayout, passLayout)
}

// initPipelines builds the solid and wireframe render pipelines sharing one
// shader module and pipeline layout. Callers hold mu.
func (b *wgpuRendererBackendImpl) initPipelines(objectLayout, passLayout *wgpu.BindGroupLayout) error {
	module, err := b.device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label: "Shape Shader",
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{
			Code: shaderSource,
		},
	})
	if err != nil {
		return err
	}

	pipelineLayout, err := b.device.CreatePipelineLayout(&wgpu.PipelineLayoutDescriptor{
		Label:            "Shape Pipeline Layout",
		BindGroupLayouts: []*wgpu.BindGroupLayout{objectLayout, passLayout},
	})
	if err != nil {
		return err
	}

	vertexLayout := wgpu.VertexBufferLayout{
		ArrayStride: uint64(geometry.GPUVertexSize),
		StepMode:    wgpu.VertexStepModeVertex,
		Attributes: []wgpu.VertexAttribute{
			{
				Format:         wgpu.VertexFormatFloat32x3,
				Offset:         0,
				ShaderLocation: 0,
			},
			{
				Format:         wgpu.VertexFormatFloat32x4,
				Offset:         12,
				ShaderLocation: 1,
			},
		},
	}

	build := func(label string, topology wgpu.PrimitiveTopology) (*wgpu.RenderPipeline, error) {
		return b.device.CreateRenderPipeline(&wgpu.RenderPipelineDescriptor{
			Label:  label,
			Layout: pipelineLayout,
			Vertex: wgpu.VertexState{
				Module:     module,
				EntryPoint: "vs_main",
				Buffers:    []wgpu.VertexBufferLayout{vertexLayout},
			},
			Fragment: &wgpu.FragmentState{
				Module:     module,
				EntryPoint: "fs_main",
				Targets: []wgpu.ColorTargetState{
					{
						Format:    *b.surfaceFormat,
						WriteMask: wgpu.ColorWriteMaskAll,
					},
				},
			},
			Primitive: wgpu.PrimitiveState{
				Topology:  topology,
				FrontFace: wgpu.FrontFaceCW,
				CullMode:  wgpu.CullModeBack,
			},
			Multisample: wgpu.MultisampleState{
				Count: uint32(b.sampleCount),
				Mask:  0xFFFFFFFF,
			},
			DepthStencil: &wgpu.DepthStencilState{
				Format:            wgpu.TextureFormatDepth24Plus,
				DepthWriteEnabled: true,
				DepthCompare:      wgpu.CompareFunctionLess,
				StencilFront: wgpu.StencilFaceState{
					Compare: wgpu.CompareFunctionAlways,
				},
				StencilBack: wgpu.StencilFaceState{
					Compare: wgpu.CompareFunctionAlways,
				},
			},
		})
	}

	solid, err := build("Shape Solid Pipeline", wgpu.PrimitiveTopologyTriangleList)
	if err != nil {
		return err
	}
	b.solidPipeline = solid

	// WebGPU has no fill-mode switch, so the wireframe pipeline reinterprets
	// the triangle index stream as a line list.
	wire, err := build("Shape Wireframe Pipeline", wgpu.PrimitiveTopologyLineList)
	if err != nil {
		return err
	}
	b.wirePipeline = wire

	return nil
}

func (b *wgpuRendererBackendImpl) Queue() frame.CommandQueue {
	return b.cmdQueue
}

func (b *wgpuRendererBackendImpl) WriteArenas(writes []ArenaWrite) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, w := range writes {
		if w.Frame < 0 || w.Frame >= b.frameCount {
			return fmt.Errorf("arena write targets frame %d outside ring of %d", w.Frame, b.frameCount)
		}
		switch w.Kind {
		case ArenaKindObject:
			if w.Slot < 0 || w.Slot >= b.itemCount {
				return fmt.Errorf("arena write targets object slot %d outside capacity %d", w.Slot, b.itemCount)
			}
			b.queue.WriteBuffer(b.objectBuffers[w.Frame], uint64(w.Slot*b.objectStride), w.Data)
		case ArenaKindPass:
			if w.Slot != 0 {
				return fmt.Errorf("arena write targets pass slot %d, pass buffers hold one record", w.Slot)
			}
			b.queue.WriteBuffer(b.passBuffers[w.Frame], 0, w.Data)
		default:
			return fmt.Errorf("arena write has unknown kind %d", w.Kind)
		}
	}
	return nil
}

func (b *wgpuRendererBackendImpl) SetWireframe(enabled bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.wireframe = enabled
}

func (b *wgpuRendererBackendImpl) Wireframe() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.wireframe
}

func (b *wgpuRendererBackendImpl) BeginFrame(frameIndex int) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	surfaceTexture, err := b.surface.GetCurrentTexture()
	if err != nil {
		return err
	}

	view, err := surfaceTexture.CreateView(nil)
	if err != nil {
		surfaceTexture.Release()
		return err
	}

	encoder, err := b.device.CreateCommandEncoder(nil)
	if err != nil {
		view.Release()
		surfaceTexture.Release()
		return err
	}

	// When MSAA is enabled, the MSAA texture is the color attachment View and
	// the swapchain view is the ResolveTarget. When MSAA is off, the swapchain
	// view is the color attachment View directly and ResolveTarget is nil.
	if b.sampleCount > 1 {
		b.renderPassDescriptor.ColorAttachments[0].ResolveTarget = view
	} else {
		b.renderPassDescriptor.ColorAttachments[0].View = view
	}
	pass := encoder.BeginRenderPass(b.renderPassDescriptor)

	pipeline := b.solidPipeline
	if b.wireframe {
		pipeline = b.wirePipeline
	}
	pass.SetPipeline(pipeline)
	pass.SetVertexBuffer(0, b.vertexBuffer, 0, wgpu.WholeSize)
	pass.SetIndexBuffer(b.indexBuffer, wgpu.IndexFormatUint32, 0, wgpu.WholeSize)

	// The pass constants for this ring slot are shared by every draw.
	pass.SetBindGroup(1, b.bindGroupTable[frame.PassOffset(b.frameCount, b.itemCount, frameIndex)], nil)

	b.frameEncoder = encoder
	b.framePass = pass
	b.frameSurface = surfaceTexture
	b.frameView = view
	b.currentFrame = frameIndex

	return nil
}

func (b *wgpuRendererBackendImpl) Draw(slot int, submesh geometry.Submesh) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.framePass == nil {
		return fmt.Errorf("draw called outside BeginFrame/EndFrame")
	}

	offset := frame.ObjectOffset(b.currentFrame, b.itemCount, slot)
	b.framePass.SetBindGroup(0, b.bindGroupTable[offset], nil)
	b.framePass.DrawIndexed(submesh.IndexCount, 1, submesh.StartIndex, submesh.BaseVertex, 0)
	return nil
}

func (b *wgpuRendererBackendImpl) EndFrame() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.framePass.End()

	commandBuffer, err := b.frameEncoder.Finish(nil)
	if err != nil {
		b.frameEncoder.Release()
		b.frameView.Release()
		b.frameSurface.Release()
		b.frameEncoder = nil
		b.framePass = nil
		b.frameSurface = nil
		b.frameView = nil
		return
	}

	b.queue.Submit(commandBuffer)

	commandBuffer.Release()
	b.frameEncoder.Release()
	b.frameEncoder = nil
	b.framePass = nil
}

func (b *wgpuRendererBackendImpl) Present() {
	b.mu.Lock()
	defer b.mu.Unlock()

	// If no frame surface is held, nothing to present.
	if b.frameSurface == nil {
		return
	}

	// Present the acquired surface image and release local references.
	b.surface.Present()

	if b.frameView != nil {
		b.frameView.Release()
		b.frameView = nil
	}
	if b.frameSurface != nil {
		b.frameSurface.Release()
		b.frameSurface = nil
	}
}

func (b *wgpuRendererBackendImpl) Release() {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, bg := range b.bindGroupTable {
		if bg != nil {
			bg.Release()
		}
	}
	for _, buf := range b.objectBuffers {
		if buf != nil {
			buf.Release()
		}
	}
	for _, buf := range b.passBuffers {
		if buf != nil {
			buf.Release()
		}
	}
	if b.vertexBuffer != nil {
		b.vertexBuffer.Release()
	}
	if b.indexBuffer != nil {
		b.indexBuffer.Release()
	}
	if b.solidPipeline != nil {
		b.solidPipeline.Release()
	}
	if b.wirePipeline != nil {
		b.wirePipeline.Release()
	}
	if b.device != nil {
		b.device.Release()
	}
}
