package light

import (
	"image/color"
	"math"

	"obj-raytracer/internal/geom"
	"obj-raytracer/internal/mathutil"
)

// PointLight radiates in every direction from a position. Its diffuse term
// falls off with the squared distance.
type PointLight struct {
	base
	pos mathutil.Vec3
}

func NewPointLight(pos mathutil.Vec3, c color.RGBA, intensity float64) *PointLight {
	return &PointLight{base: base{color: c, intensity: intensity}, pos: pos}
}

func (l *PointLight) Position() mathutil.Vec3 { return l.pos }

func (l *PointLight) Attenuation(hit geom.Hit) float64 {
	toLight := l.pos.Sub(hit.Position).Normalize()
	return clamp01(hit.Normal.Dot(toLight))
}

// ShadowRay is bounded by the segment length so occluders beyond the light
// do not count.
func (l *PointLight) ShadowRay(p mathutil.Vec3) (geom.Ray, geom.DepthWindow) {
	d := l.pos.Sub(p)
	return geom.NewRay(p, d.Normalize()), geom.Forward(d.Len())
}

func (l *PointLight) Falloff(p mathutil.Vec3) float64 {
	d := p.Dist(l.pos)
	return math.Max(d*d, minFalloff)
}
