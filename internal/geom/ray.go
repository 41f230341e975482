package geom

import (
	"math"

	"obj-raytracer/internal/mathutil"
)

// Ray is a half-line from Origin. The stored direction may be unnormalized;
// Direction always returns it normalized.
type Ray struct {
	Origin mathutil.Vec3
	dir    mathutil.Vec3
}

func NewRay(origin, dir mathutil.Vec3) Ray {
	return Ray{Origin: origin, dir: dir}
}

// Direction returns the unit direction of the ray.
func (r Ray) Direction() mathutil.Vec3 {
	return r.dir.Normalize()
}

// At returns the point at distance t along the ray.
func (r Ray) At(t float64) mathutil.Vec3 {
	return r.Origin.Add(r.Direction().Scale(t))
}

// DepthWindow bounds the depth (Z coordinate) of an accepted intersection
// point. It is tested against the hit position, not the ray parameter: the
// camera is screen-aligned along +Z, so near/far planes are Z offsets from
// the camera. Bounce and shadow queries reuse the same convention.
type DepthWindow struct {
	Min, Max float64
}

// NoClip accepts every depth.
var NoClip = DepthWindow{Min: math.Inf(-1), Max: math.Inf(1)}

// Forward returns the window [0, max].
func Forward(max float64) DepthWindow {
	return DepthWindow{Min: 0, Max: max}
}

// Contains reports whether z lies inside the closed window.
func (w DepthWindow) Contains(z float64) bool {
	return z >= w.Min && z <= w.Max
}
