package scene

import "math"

// Camera defaults.
const (
	DefaultFov = 45
	DefaultZ   = 20
)

// Camera is a perspective camera on the Z axis looking towards the origin.
type Camera struct {
	// Fov is the vertical field of view in degrees.
	Fov float64
	// Z is the camera's distance from the z = 0 plane.
	Z float64
	// Aspect is width over height of the screen.
	Aspect float64
}

// NewCamera creates a camera with the default field of view and distance.
func NewCamera() *Camera {
	return &Camera{Fov: DefaultFov, Z: DefaultZ, Aspect: 1}
}

// SetAspect updates the aspect ratio from a screen size. Degenerate sizes
// are ignored.
func (c *Camera) SetAspect(width, height float64) {
	if width <= 0 || height <= 0 {
		return
	}
	c.Aspect = width / height
}

// Viewport returns the world-space size visible at z = 0.
func (c *Camera) Viewport() (width, height float64) {
	height = 2 * math.Tan(c.Fov*math.Pi/360) * c.Z
	return height * c.Aspect, height
}

// Perspective returns the on-screen magnification of a point at depth z
// relative to z = 0.
func (c *Camera) Perspective(z float64) float64 {
	d := c.Z - z
	if d <= 0 {
		return 0
	}
	return c.Z / d
}
