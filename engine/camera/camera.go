// package camera provides the orbit camera that drives the per-pass view and
// projection matrices. The camera orbits the world origin on a sphere
// parameterized by azimuth, elevation and radius, in the style of classic
// arc-ball viewers.
package camera

import (
	"sync"

	"github.com/chewxy/math32"
	"github.com/nestorplata/shapeframes/common"
)

type cameraImpl struct {
	mu *sync.Mutex

	theta  float32
	phi    float32
	radius float32

	fov    float32
	aspect float32
	near   float32
	far    float32

	minRadius float32
	maxRadius float32

	orbitSensitivity float32
	zoomSensitivity  float32
}

// Camera is an orbit camera fixed on the world origin. Rotate and Zoom adjust
// the spherical coordinates; ViewMatrix and ProjectionMatrix derive the
// current matrices on demand. All methods are safe for concurrent use.
type Camera interface {
	// Rotate orbits the camera by a mouse delta in pixels. Horizontal motion
	// changes azimuth, vertical motion changes elevation; elevation is
	// clamped away from the poles so the view never flips.
	//
	// Parameters:
	//   - dx: horizontal mouse delta in pixels
	//   - dy: vertical mouse delta in pixels
	Rotate(dx, dy float32)

	// Zoom moves the camera along its view ray by a mouse delta in pixels,
	// clamped to the configured radius bounds.
	//
	// Parameters:
	//   - dx: horizontal mouse delta in pixels
	//   - dy: vertical mouse delta in pixels
	Zoom(dx, dy float32)

	// SetAspect updates the projection aspect ratio, typically on resize.
	//
	// Parameters:
	//   - aspect: viewport width divided by height
	SetAspect(aspect float32)

	// Position returns the camera's world-space position.
	//
	// Returns:
	//   - x, y, z: eye position components
	Position() (x, y, z float32)

	// ViewMatrix computes the current view matrix (column-major).
	//
	// Returns:
	//   - [16]float32: the view matrix
	ViewMatrix() [16]float32

	// ProjectionMatrix computes the current projection matrix (column-major).
	//
	// Returns:
	//   - [16]float32: the projection matrix
	ProjectionMatrix() [16]float32

	// Near returns the near clipping plane distance.
	Near() float32

	// Far returns the far clipping plane distance.
	Far() float32
}

var _ Camera = &cameraImpl{}

func (c *cameraImpl) Rotate(dx, dy float32) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.theta += dx * c.orbitSensitivity
	c.phi += dy * c.orbitSensitivity
	c.phi = common.Clamp(c.phi, 0.1, math32.Pi-0.1)
}

func (c *cameraImpl) Zoom(dx, dy float32) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.radius += (dx - dy) * c.zoomSensitivity
	c.radius = common.Clamp(c.radius, c.minRadius, c.maxRadius)
}

func (c *cameraImpl) SetAspect(aspect float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.aspect = aspect
}

func (c *cameraImpl) Position() (float32, float32, float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.position()
}

// position converts the spherical coordinates to cartesian. Callers hold mu.
func (c *cameraImpl) position() (float32, float32, float32) {
	x := c.radius * math32.Sin(c.phi) * math32.Cos(c.theta)
	z := c.radius * math32.Sin(c.phi) * math32.Sin(c.theta)
	y := c.radius * math32.Cos(c.phi)
	return x, y, z
}

func (c *cameraImpl) ViewMatrix() [16]float32 {
	c.mu.Lock()
	defer c.mu.Unlock()

	x, y, z := c.position()
	var view [16]float32
	common.LookAt(view[:], x, y, z, 0, 0, 0, 0, 1, 0)
	return view
}

func (c *cameraImpl) ProjectionMatrix() [16]float32 {
	c.mu.Lock()
	defer c.mu.Unlock()

	var proj [16]float32
	common.Perspective(proj[:], c.fov, c.aspect, c.near, c.far)
	return proj
}

func (c *cameraImpl) Near() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.near
}

func (c *cameraImpl) Far() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.far
}
