package camera

import (
	"sync"

	"github.com/chewxy/math32"
)

// CameraOption is a functional option for configuring a Camera during construction.
type CameraOption func(*cameraImpl)

// NewCamera creates an orbit camera with defaults suitable for viewing a
// scene a few tens of units across: azimuth 1.5*pi, elevation 0.2*pi, radius
// 15, a quarter-pi field of view and a [1, 1000] depth range.
//
// Parameters:
//   - opts: optional configuration options
//
// Returns:
//   - Camera: the configured camera
func NewCamera(opts ...CameraOption) Camera {
	c := &cameraImpl{
		mu:               &sync.Mutex{},
		theta:            1.5 * math32.Pi,
		phi:              0.2 * math32.Pi,
		radius:           15.0,
		fov:              0.25 * math32.Pi,
		aspect:           1.0,
		near:             1.0,
		far:              1000.0,
		minRadius:        5.0,
		maxRadius:        150.0,
		orbitSensitivity: 0.25 * math32.Pi / 180.0,
		zoomSensitivity:  0.05,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// WithFov sets the vertical field of view in radians.
//
// Parameters:
//   - fov: field of view in radians
func WithFov(fov float32) CameraOption {
	return func(c *cameraImpl) {
		c.fov = fov
	}
}

// WithAspect sets the initial aspect ratio (width / height).
//
// Parameters:
//   - aspect: the aspect ratio
func WithAspect(aspect float32) CameraOption {
	return func(c *cameraImpl) {
		c.aspect = aspect
	}
}

// WithNearFar sets the near and far clipping plane distances.
//
// Parameters:
//   - near: near plane distance
//   - far: far plane distance
func WithNearFar(near, far float32) CameraOption {
	return func(c *cameraImpl) {
		c.near = near
		c.far = far
	}
}

// WithRadius sets the initial orbit distance from the origin.
//
// Parameters:
//   - radius: orbit radius in world units
func WithRadius(radius float32) CameraOption {
	return func(c *cameraImpl) {
		c.radius = radius
	}
}

// WithRadiusBounds sets the zoom clamp range.
//
// Parameters:
//   - min: minimum orbit radius
//   - max: maximum orbit radius
func WithRadiusBounds(min, max float32) CameraOption {
	return func(c *cameraImpl) {
		c.minRadius = min
		c.maxRadius = max
	}
}

// WithAzimuth sets the initial azimuth angle in radians.
//
// Parameters:
//   - theta: azimuth in radians
func WithAzimuth(theta float32) CameraOption {
	return func(c *cameraImpl) {
		c.theta = theta
	}
}

// WithElevation sets the initial elevation angle in radians.
//
// Parameters:
//   - phi: elevation in radians, measured from the +y axis
func WithElevation(phi float32) CameraOption {
	return func(c *cameraImpl) {
		c.phi = phi
	}
}

// WithOrbitSensitivity sets the rotation applied per pixel of mouse motion.
//
// Parameters:
//   - radiansPerPixel: orbit speed in radians per pixel
func WithOrbitSensitivity(radiansPerPixel float32) CameraOption {
	return func(c *cameraImpl) {
		c.orbitSensitivity = radiansPerPixel
	}
}

// WithZoomSensitivity sets the radius change applied per pixel of mouse motion.
//
// Parameters:
//   - unitsPerPixel: zoom speed in world units per pixel
func WithZoomSensitivity(unitsPerPixel float32) CameraOption {
	return func(c *cameraImpl) {
		c.zoomSensitivity = unitsPerPixel
	}
}
