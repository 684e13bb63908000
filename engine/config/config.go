// package config loads engine settings from a TOML file. Every field has a
// sensible default, so a missing file or a partial file is not an error — the
// file only overrides what it names.
package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// WindowConfig holds the platform window settings.
type WindowConfig struct {
	Title  string `toml:"title"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	// Resizable controls whether the user may resize the window.
	Resizable bool `toml:"resizable"`
}

// RendererConfig holds the renderer settings.
type RendererConfig struct {
	// PresentMode is "vsync" or "uncapped".
	PresentMode string `toml:"present_mode"`
	// MSAASamples is the multisample count: 1, 4, 8, or 16.
	MSAASamples int `toml:"msaa_samples"`
	// ForceSoftware selects the fallback adapter instead of a hardware GPU.
	ForceSoftware bool `toml:"force_software"`
	// Wireframe starts the renderer in wireframe mode.
	Wireframe bool `toml:"wireframe"`
}

// CameraConfig holds the orbit camera settings.
type CameraConfig struct {
	// Radius is the initial orbit distance from the focus point.
	Radius float32 `toml:"radius"`
	// MinRadius and MaxRadius bound the zoom range.
	MinRadius float32 `toml:"min_radius"`
	MaxRadius float32 `toml:"max_radius"`
	// FovDegrees is the vertical field of view.
	FovDegrees float32 `toml:"fov_degrees"`
	Near       float32 `toml:"near"`
	Far        float32 `toml:"far"`
}

// SceneConfig holds the frame pipelining settings.
type SceneConfig struct {
	// FrameCount is the number of frames the CPU may produce ahead of the GPU.
	FrameCount int `toml:"frame_count"`
	// ComputeWorkers is the worker count for parallel constant staging.
	// Zero means one worker per CPU minus one.
	ComputeWorkers int `toml:"compute_workers"`
}

// Config is the root of the engine settings file.
type Config struct {
	Window   WindowConfig   `toml:"window"`
	Renderer RendererConfig `toml:"renderer"`
	Camera   CameraConfig   `toml:"camera"`
	Scene    SceneConfig    `toml:"scene"`
}

// Default returns the settings used when no file overrides them.
//
// Returns:
//   - Config: the default configuration
func Default() Config {
	return Config{
		Window: WindowConfig{
			Title:     "Shape Frames",
			Width:     1280,
			Height:    720,
			Resizable: true,
		},
		Renderer: RendererConfig{
			PresentMode: "vsync",
			MSAASamples: 4,
		},
		Camera: CameraConfig{
			Radius:     15,
			MinRadius:  5,
			MaxRadius:  150,
			FovDegrees: 45,
			Near:       1,
			Far:        1000,
		},
		Scene: SceneConfig{
			FrameCount: 3,
		},
	}
}

// Load reads a TOML settings file over the defaults. A missing file returns
// the defaults without error; a malformed file or invalid value is an error.
//
// Parameters:
//   - path: the settings file path
//
// Returns:
//   - Config: the merged configuration
//   - error: an error if the file exists but could not be parsed or validated
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	}
	switch c.Renderer.PresentMode {
	case "vsync", "uncapped":
	default:
		return fmt.Errorf("present_mode %q must be \"vsync\" or \"uncapped\"", c.Renderer.PresentMode)
	}
	switch c.Renderer.MSAASamples {
	case 1, 4, 8, 16:
	default:
		return fmt.Errorf("msaa_samples %d must be 1, 4, 8, or 16", c.Renderer.MSAASamples)
	}
	if c.Camera.MinRadius <= 0 || c.Camera.MaxRadius < c.Camera.MinRadius {
		return fmt.Errorf("camera radius bounds [%g, %g] are invalid", c.Camera.MinRadius, c.Camera.MaxRadius)
	}
	if c.Camera.FovDegrees <= 0 || c.Camera.FovDegrees >= 180 {
		return fmt.Errorf("fov_degrees %g must be in (0, 180)", c.Camera.FovDegrees)
	}
	if c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near {
		return fmt.Errorf("near/far planes %g/%g are invalid", c.Camera.Near, c.Camera.Far)
	}
	if c.Scene.FrameCount < 1 {
		return fmt.Errorf("frame_count %d must be at least 1", c.Scene.FrameCount)
	}
	if c.Scene.ComputeWorkers < 0 {
		return fmt.Errorf("compute_workers %d cannot be negative", c.Scene.ComputeWorkers)
	}
	return nil
}
