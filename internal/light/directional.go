package light

import (
	"image/color"
	"math"

	"obj-raytracer/internal/geom"
	"obj-raytracer/internal/mathutil"
)

// DirectionalLight shines along a fixed direction from infinitely far away.
// It has no meaningful position; Position reports the origin.
type DirectionalLight struct {
	base
	dir mathutil.Vec3
}

func NewDirectionalLight(dir mathutil.Vec3, c color.RGBA, intensity float64) *DirectionalLight {
	return &DirectionalLight{base: base{color: c, intensity: intensity}, dir: dir.Normalize()}
}

func (l *DirectionalLight) Position() mathutil.Vec3  { return mathutil.Vec3{} }
func (l *DirectionalLight) Direction() mathutil.Vec3 { return l.dir }

func (l *DirectionalLight) Attenuation(hit geom.Hit) float64 {
	return clamp01(hit.Normal.Dot(l.dir.Neg()))
}

func (l *DirectionalLight) ShadowRay(p mathutil.Vec3) (geom.Ray, geom.DepthWindow) {
	return geom.NewRay(p, l.dir.Neg()), geom.NoClip
}

// Falloff is the length of the unit direction: no distance falloff.
func (l *DirectionalLight) Falloff(mathutil.Vec3) float64 {
	return math.Max(l.dir.Len(), minFalloff)
}
