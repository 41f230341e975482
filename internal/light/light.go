// Package light defines the light sources used by the shading model.
// Lights are not surfaces: rays never hit them.
package light

import (
	"image/color"
	"math"

	"obj-raytracer/internal/geom"
	"obj-raytracer/internal/mathutil"
)

// Light is a source of direct illumination.
type Light interface {
	Position() mathutil.Vec3
	Color() color.RGBA
	Intensity() float64

	// Attenuation is the incidence term at hit, in [0,1]: zero for surfaces
	// facing away from the light or outside its cone.
	Attenuation(hit geom.Hit) float64

	// ShadowRay returns the ray from p toward the light and the depth window
	// an occluder must fall into to block it.
	ShadowRay(p mathutil.Vec3) (geom.Ray, geom.DepthWindow)

	// Falloff is the divisor applied to the diffuse term at p.
	Falloff(p mathutil.Vec3) float64
}

type base struct {
	color     color.RGBA
	intensity float64
}

func (b base) Color() color.RGBA  { return b.color }
func (b base) Intensity() float64 { return b.intensity }

// minFalloff keeps a light sitting on the shaded point from dividing by zero.
const minFalloff = 1e-12

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
