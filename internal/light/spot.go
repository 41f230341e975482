package light

import (
	"image/color"
	"math"

	"obj-raytracer/internal/geom"
	"obj-raytracer/internal/mathutil"
)

const (
	// outerConeRatio sets the outer cone, where the light reaches zero,
	// relative to the inner half-angle.
	outerConeRatio = 1.5
	// spotDistanceFactor scales the 1/(k·d) distance attenuation.
	spotDistanceFactor = 0.7
)

// SpotLight is a positioned light restricted to a cone around Direction.
// Inside the half-angle it is at full strength; between the half-angle and
// 1.5× the half-angle it fades linearly to zero.
type SpotLight struct {
	base
	pos   mathutil.Vec3
	dir   mathutil.Vec3
	angle float64 // half-angle, degrees
}

func NewSpotLight(pos, dir mathutil.Vec3, c color.RGBA, intensity, angleDeg float64) *SpotLight {
	return &SpotLight{
		base:  base{color: c, intensity: intensity},
		pos:   pos,
		dir:   dir.Normalize(),
		angle: angleDeg,
	}
}

func (l *SpotLight) Position() mathutil.Vec3  { return l.pos }
func (l *SpotLight) Direction() mathutil.Vec3 { return l.dir }
func (l *SpotLight) Angle() float64           { return l.angle }

func (l *SpotLight) Attenuation(hit geom.Hit) float64 {
	fromLight := hit.Position.Sub(l.pos)
	dist := fromLight.Len()
	if dist < mathutil.Epsilon {
		return 0
	}
	fromLight = fromLight.Scale(1 / dist)

	cos := math.Max(-1, math.Min(1, l.dir.Dot(fromLight)))
	off := mathutil.Rad2Deg(math.Acos(cos))
	outer := l.angle * outerConeRatio
	if off >= outer {
		return 0
	}

	cone := 1.0
	if off > l.angle {
		cone = (outer - off) / (outer - l.angle)
	}
	atten := 1 / (spotDistanceFactor * dist)
	return clamp01(hit.Normal.Dot(fromLight.Neg()) * cone * atten)
}

// ShadowRay follows the directional convention: the ray leaves along the
// negated spot direction and is unbounded.
func (l *SpotLight) ShadowRay(p mathutil.Vec3) (geom.Ray, geom.DepthWindow) {
	return geom.NewRay(p, l.dir.Neg()), geom.NoClip
}

func (l *SpotLight) Falloff(mathutil.Vec3) float64 {
	return math.Max(l.dir.Len(), minFalloff)
}
