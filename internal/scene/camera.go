package scene

import (
	"math"

	"obj-raytracer/internal/geom"
	"obj-raytracer/internal/mathutil"
)

// DefaultLensDistance is the Z distance from the camera to the lens plane
// the pixel grid is laid out on.
const DefaultLensDistance = 15.0

// Camera is a screen-aligned pinhole camera looking down +Z. It is not a
// surface and never appears in intersection queries.
type Camera struct {
	Position     mathutil.Vec3
	FovH, FovV   float64 // full field of view, degrees
	Width        int
	Height       int
	Near, Far    float64 // clip offsets along Z from the camera
	LensDistance float64

	minX, maxY   float64
	stepX, stepY float64
}

// NewCamera builds a camera with the default lens distance.
func NewCamera(pos mathutil.Vec3, fovH, fovV float64, width, height int, near, far float64) *Camera {
	c := &Camera{
		Position:     pos,
		FovH:         fovH,
		FovV:         fovV,
		Width:        width,
		Height:       height,
		Near:         near,
		Far:          far,
		LensDistance: DefaultLensDistance,
	}
	c.layout()
	return c
}

// SetLensDistance moves the lens plane and recomputes the pixel grid.
func (c *Camera) SetLensDistance(d float64) {
	c.LensDistance = d
	c.layout()
}

// layout places the pixel grid on the lens plane: each half field of view
// spans lens·tan(fov/2) on its axis.
func (c *Camera) layout() {
	maxX := c.LensDistance * math.Tan(mathutil.Deg2Rad(c.FovH/2))
	maxY := c.LensDistance * math.Tan(mathutil.Deg2Rad(c.FovV/2))
	c.minX = -maxX
	c.maxY = maxY
	if c.Width > 0 {
		c.stepX = 2 * maxX / float64(c.Width)
	}
	if c.Height > 0 {
		c.stepY = 2 * maxY / float64(c.Height)
	}
}

// Ray returns the primary ray for pixel (x, y); (0, 0) is the top-left.
func (c *Camera) Ray(x, y int) geom.Ray {
	dir := mathutil.Vec3{
		c.minX + c.stepX*float64(x),
		c.maxY - c.stepY*float64(y),
		c.LensDistance,
	}
	return geom.NewRay(c.Position, dir)
}

// Clip is the visible depth window: Z in [camZ+near, camZ+far].
func (c *Camera) Clip() geom.DepthWindow {
	z := c.Position.Z()
	return geom.DepthWindow{Min: z + c.Near, Max: z + c.Far}
}

// Pixels is the total number of pixels in the image.
func (c *Camera) Pixels() int {
	return c.Width * c.Height
}
