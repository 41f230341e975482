package geom

import (
	"math"

	"obj-raytracer/internal/mathutil"
)

const (
	// barycentricEpsilon widens the u+v <= 1 edge so rays through a shared
	// edge of two triangles hit at least one of them.
	barycentricEpsilon = 1e-13
	// detEpsilon rejects rays parallel to the triangle plane.
	detEpsilon = 1e-12
)

// Triangle holds three vertices and one normal per vertex.
type Triangle struct {
	V   [3]mathutil.Vec3
	N   [3]mathutil.Vec3
	mat Material
}

// NewTriangle builds a flat-shaded triangle: its face normal is replicated
// to all three vertices. Winding is counter-clockwise.
func NewTriangle(v0, v1, v2 mathutil.Vec3, mat Material) *Triangle {
	n := FaceNormal(v0, v1, v2)
	return &Triangle{
		V:   [3]mathutil.Vec3{v0, v1, v2},
		N:   [3]mathutil.Vec3{n, n, n},
		mat: mat,
	}
}

// NewSmoothTriangle builds a triangle with explicit per-vertex normals.
func NewSmoothTriangle(v, n [3]mathutil.Vec3, mat Material) *Triangle {
	return &Triangle{V: v, N: n, mat: mat}
}

// FaceNormal returns the unit normal of the counter-clockwise triangle
// (v0, v1, v2), or zero for a degenerate triangle.
func FaceNormal(v0, v1, v2 mathutil.Vec3) mathutil.Vec3 {
	return v1.Sub(v0).Cross(v2.Sub(v0)).Normalize()
}

func (t *Triangle) Material() Material { return t.mat }

// Intersect uses Möller–Trumbore. The reported normal is the barycentric
// blend of the vertex normals.
func (t *Triangle) Intersect(ray Ray) (Hit, bool) {
	dist, w, ok := t.intersect(ray)
	if !ok {
		return Hit{}, false
	}
	return Hit{
		Position: ray.At(dist),
		Distance: dist,
		Normal:   t.blend(w),
		Surface:  t,
	}, true
}

// intersect returns the signed distance along the ray and the barycentric
// weights of V[0], V[1], V[2].
func (t *Triangle) intersect(ray Ray) (float64, [3]float64, bool) {
	dir := ray.Direction()
	e1 := t.V[1].Sub(t.V[0])
	e2 := t.V[2].Sub(t.V[0])

	p := dir.Cross(e1)
	det := e2.Dot(p)
	if math.Abs(det) < detEpsilon {
		return 0, [3]float64{}, false
	}
	invDet := 1.0 / det

	tv := ray.Origin.Sub(t.V[0])
	u := invDet * tv.Dot(p) // weight of V[2]
	if u < 0 || u > 1 {
		return 0, [3]float64{}, false
	}
	q := tv.Cross(e2)
	v := invDet * dir.Dot(q) // weight of V[1]
	if v < 0 || u+v > 1+barycentricEpsilon {
		return 0, [3]float64{}, false
	}

	dist := invDet * e1.Dot(q)
	return dist, [3]float64{1 - u - v, v, u}, true
}

// Barycentric returns the weights of V[0], V[1], V[2] for a point in the
// triangle's plane. The weights sum to one.
func (t *Triangle) Barycentric(p mathutil.Vec3) [3]float64 {
	v0 := t.V[1].Sub(t.V[0])
	v1 := t.V[2].Sub(t.V[0])
	v2 := p.Sub(t.V[0])
	d00 := v0.Dot(v0)
	d01 := v0.Dot(v1)
	d11 := v1.Dot(v1)
	d20 := v2.Dot(v0)
	d21 := v2.Dot(v1)
	denom := d00*d11 - d01*d01
	if math.Abs(denom) < detEpsilon {
		return [3]float64{1, 0, 0}
	}
	b := (d11*d20 - d01*d21) / denom
	c := (d00*d21 - d01*d20) / denom
	return [3]float64{1 - b - c, b, c}
}

func (t *Triangle) blend(w [3]float64) mathutil.Vec3 {
	var n mathutil.Vec3
	for i := range t.N {
		n = n.Add(t.N[i].Scale(w[i]))
	}
	return n
}
