// Package trace resolves pixel colors: nearest-hit queries against the
// scene and an iterative shading loop that follows reflected and refracted
// rays for a bounded number of passes.
package trace

import (
	"image/color"
	"math"

	"obj-raytracer/internal/geom"
	"obj-raytracer/internal/mathutil"
	"obj-raytracer/internal/scene"
)

const (
	// DefaultMaxDepth caps the number of shading passes per pixel.
	DefaultMaxDepth = 4
	// transmission is the fraction of the accumulated color kept each time
	// a ray passes into a refractive surface.
	transmission = 0.5
)

// Sample is the resolved color of one primary ray together with the number
// of shading passes it took.
type Sample struct {
	Color color.RGBA
	Depth int
}

// Resolver shades rays against a read-only scene. It is safe for
// concurrent use.
type Resolver struct {
	Scene    *scene.Scene
	MaxDepth int
}

func NewResolver(sc *scene.Scene) *Resolver {
	return &Resolver{Scene: sc, MaxDepth: DefaultMaxDepth}
}

// Pixel resolves the camera ray through pixel (x, y).
func (r *Resolver) Pixel(x, y int) Sample {
	return r.Resolve(r.Scene.Camera.Ray(x, y))
}

// Resolve shades a primary ray. Each pass lights the current hit; each
// later pass first continues the ray by refraction or, failing
// that, mirror reflection. The loop ends at MaxDepth passes, when a
// continued ray escapes, or when the reflection accumulator reaches zero
// on a pass that did not refract.
func (r *Resolver) Resolve(ray geom.Ray) Sample {
	sc := r.Scene
	cam := sc.Camera

	hit, ok := Raycast(ray, sc.Surfaces, nil, cam.Clip())
	if !ok {
		return Sample{Color: black}
	}

	var (
		px         = black
		reflection = 1.0
		eta        = 1.0
		refracted  bool
		depth      int
	)
	for {
		if depth > 0 {
			refracted = false
			ray, px, eta = r.bounce(ray, hit, px, eta)
			hit, ok = Raycast(ray, sc.Surfaces, hit.Surface, geom.Forward(cam.Far))
		}
		if ok {
			depth++
			for _, l := range sc.Lights {
				if c, lit := directLight(sc.Surfaces, l, hit, ray, reflection); lit {
					px = addColor(px, c)
				}
			}
			mat := hit.Surface.Material()
			if mat.Refractive() {
				refracted = true
			} else {
				reflection *= mat.Reflectivity()
			}
		}
		if depth >= r.MaxDepth || !ok || (reflection <= 0 && !refracted) {
			break
		}
	}
	return Sample{Color: px, Depth: depth}
}

// bounce computes the continuation of prev at hit. A refractive surface
// halves the accumulated color and bends the ray; when it is not
// refractive or the ray is totally internally reflected, the color is
// scaled by 1-reflectivity and the ray is mirrored instead.
func (r *Resolver) bounce(prev geom.Ray, hit geom.Hit, px color.RGBA, eta float64) (geom.Ray, color.RGBA, float64) {
	mat := hit.Surface.Material()
	incident := hit.Position.Sub(prev.Origin).Normalize()
	normal := hit.Normal

	var (
		dir mathutil.Vec3
		ok  bool
	)
	if mat.Refractive() {
		px = scaleColor(px, transmission)
		dir, normal, eta, ok = refract(incident, normal, eta, mat.Refraction())
	}
	if !ok {
		px = scaleColor(px, 1-mat.Reflectivity())
		dir = reflect(incident, normal)
	}
	return geom.NewRay(hit.Position, dir.Normalize()), px, eta
}

// refract bends incident through a boundary from the running index eta
// into the surface index. A ray leaving the surface (incident along the
// normal) swaps the two and flips the normal; the possibly flipped normal
// is returned. ok is false on total internal reflection, in which case the
// running index is returned unchanged.
func refract(incident, normal mathutil.Vec3, eta, index float64) (mathutil.Vec3, mathutil.Vec3, float64, bool) {
	etaI, etaT := eta, index
	cosI := -incident.Dot(normal)
	if cosI < 0 {
		cosI = -cosI
		normal = normal.Neg()
		etaI, etaT = etaT, etaI
	}
	ratio := etaI / etaT
	sinT2 := ratio * ratio * (1 - cosI*cosI)
	if sinT2 > 1 {
		return mathutil.Vec3{}, normal, eta, false
	}
	cosT := math.Sqrt(1 - sinT2)
	dir := incident.Scale(ratio).Add(normal.Scale(ratio*cosI - cosT))
	return dir, normal, etaT, true
}

func reflect(incident, normal mathutil.Vec3) mathutil.Vec3 {
	return incident.Sub(normal.Scale(2 * incident.Dot(normal)))
}
