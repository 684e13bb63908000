package renderer

// RendererBackendType identifies the GPU backend implementation used by the Renderer.
type RendererBackendType int

const (
	// BackendTypeWGPU selects the WebGPU-based rendering backend.
	BackendTypeWGPU RendererBackendType = iota
)

// PresentMode controls how rendered frames are presented to the display surface.
type PresentMode int

const (
	// PresentModeVSync waits for the next vertical blank before presenting, capping frame rate
	// to the monitor's refresh rate. Eliminates tearing.
	PresentModeVSync PresentMode = iota

	// PresentModeUncapped presents frames immediately without waiting for vertical blank.
	// May cause screen tearing but provides the lowest latency.
	PresentModeUncapped
)

// MSAASampleCount controls the number of samples used for multisample anti-aliasing (MSAA).
// Only specific power-of-two values are valid for GPU hardware. WebGPU guarantees support for
// 1 (off) and 4; higher values (8, 16) are adapter-dependent and may not be available.
type MSAASampleCount uint32

const (
	// MSAAOff disables multisample anti-aliasing (sample count 1).
	MSAAOff MSAASampleCount = 1

	// MSAA4x enables 4× multisample anti-aliasing. This is the default.
	MSAA4x MSAASampleCount = 4

	// MSAA8x enables 8× multisample anti-aliasing. Adapter-dependent; not all hardware supports this.
	MSAA8x MSAASampleCount = 8

	// MSAA16x enables 16× multisample anti-aliasing. Adapter-dependent; not all hardware supports this.
	MSAA16x MSAASampleCount = 16
)

// ArenaKind distinguishes the two per-frame constant buffer families.
type ArenaKind int

const (
	// ArenaKindObject targets a frame's per-item transform buffer.
	ArenaKindObject ArenaKind = iota

	// ArenaKindPass targets a frame's single pass constant record.
	ArenaKindPass
)

// ArenaWrite stages one record upload into a specific frame's constant
// buffer. Slot selects the record within the buffer (always 0 for
// ArenaKindPass); Data is the record's bytes at the arena stride.
type ArenaWrite struct {
	// Frame is the ring index of the target frame resource.
	Frame int
	// Kind selects the object or pass buffer of that frame.
	Kind ArenaKind
	// Slot is the record index within the buffer.
	Slot int
	// Data is the record payload to upload.
	Data []byte
}

// RendererBackend is the top-level backend interface for the Renderer.
// It embeds the concrete backend interface for the selected GPU API.
type RendererBackend interface {
	wgpuRendererBackend
}
