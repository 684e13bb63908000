package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "settings.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, `
[window]
title = "Castle"
width = 1920
height = 1080
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "Castle", cfg.Window.Title)
	assert.Equal(t, 1920, cfg.Window.Width)
	// Untouched sections keep their defaults.
	assert.Equal(t, "vsync", cfg.Renderer.PresentMode)
	assert.Equal(t, float32(15), cfg.Camera.Radius)
	assert.Equal(t, 3, cfg.Scene.FrameCount)
}

func TestLoadFullFile(t *testing.T) {
	path := writeConfig(t, `
[window]
resizable = false

[renderer]
present_mode = "uncapped"
msaa_samples = 8
wireframe = true

[camera]
radius = 40.0
min_radius = 10.0
max_radius = 200.0
fov_degrees = 60.0
near = 0.5
far = 500.0

[scene]
frame_count = 4
compute_workers = 2
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.False(t, cfg.Window.Resizable)
	assert.Equal(t, "uncapped", cfg.Renderer.PresentMode)
	assert.Equal(t, 8, cfg.Renderer.MSAASamples)
	assert.True(t, cfg.Renderer.Wireframe)
	assert.Equal(t, float32(40), cfg.Camera.Radius)
	assert.Equal(t, float32(0.5), cfg.Camera.Near)
	assert.Equal(t, 4, cfg.Scene.FrameCount)
	assert.Equal(t, 2, cfg.Scene.ComputeWorkers)
}

func TestLoadMalformedFile(t *testing.T) {
	path := writeConfig(t, `[window`)
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadValidation(t *testing.T) {
	cases := map[string]string{
		"bad present mode": "[renderer]\npresent_mode = \"triple\"\n",
		"bad msaa":         "[renderer]\nmsaa_samples = 3\n",
		"bad window size":  "[window]\nwidth = 0\nheight = 600\n",
		"bad radius":       "[camera]\nmin_radius = 0.0\n",
		"bad fov":          "[camera]\nfov_degrees = 200.0\n",
		"bad planes":       "[camera]\nnear = 5.0\nfar = 2.0\n",
		"bad frame count":  "[scene]\nframe_count = 0\n",
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeConfig(t, content))
			assert.Error(t, err)
		})
	}
}
