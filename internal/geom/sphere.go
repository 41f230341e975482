package geom

import (
	"math"

	"obj-raytracer/internal/mathutil"
)

// Sphere is centered at Center with radius Radius.
type Sphere struct {
	Center mathutil.Vec3
	Radius float64
	mat    Material
}

func NewSphere(center mathutil.Vec3, radius float64, mat Material) *Sphere {
	return &Sphere{Center: center, Radius: radius, mat: mat}
}

func (s *Sphere) Material() Material { return s.mat }

// Intersect solves the ray/sphere quadratic geometrically and reports the
// smaller root, even when it lies behind the ray origin.
func (s *Sphere) Intersect(ray Ray) (Hit, bool) {
	dir := ray.Direction()
	l := s.Center.Sub(ray.Origin)
	tca := l.Dot(dir)
	// Squared distance from the center to the ray line; never negative.
	c := l.Cross(dir)
	d2 := c.Dot(c)
	thc2 := s.Radius*s.Radius - d2
	if thc2 < 0 {
		return Hit{}, false
	}
	thc := math.Sqrt(thc2)
	t := math.Min(tca-thc, tca+thc)

	pos := ray.Origin.Add(dir.Scale(t))
	return Hit{
		Position: pos,
		Distance: t,
		Normal:   pos.Sub(s.Center).Normalize(),
		Surface:  s,
	}, true
}
