package geom

import "obj-raytracer/internal/mathutil"

// Mesh is a triangle soup placed in world space. It owns its triangles and
// reports itself, not the triangle, as the hit surface.
type Mesh struct {
	Origin    mathutil.Vec3
	Triangles []Triangle
	mat       Material
}

// NewMesh copies tris and translates every vertex by origin.
func NewMesh(origin mathutil.Vec3, tris []Triangle, mat Material) *Mesh {
	owned := make([]Triangle, len(tris))
	for i, tri := range tris {
		for k := range tri.V {
			tri.V[k] = tri.V[k].Add(origin)
		}
		tri.mat = mat
		owned[i] = tri
	}
	return &Mesh{Origin: origin, Triangles: owned, mat: mat}
}

func (m *Mesh) Material() Material { return m.mat }

// Intersect scans every triangle and keeps the closest hit in front of the
// ray origin.
func (m *Mesh) Intersect(ray Ray) (Hit, bool) {
	best := -1.0
	var bestTri *Triangle
	for i := range m.Triangles {
		tri := &m.Triangles[i]
		dist, _, ok := tri.intersect(ray)
		if !ok || dist <= 0 {
			continue
		}
		if best < 0 || dist < best {
			best = dist
			bestTri = tri
		}
	}
	if bestTri == nil {
		return Hit{}, false
	}

	pos := ray.At(best)
	return Hit{
		Position: pos,
		Distance: best,
		Normal:   bestTri.blend(bestTri.Barycentric(pos)),
		Surface:  m,
	}, true
}

// Bounds returns the axis-aligned extent of the placed mesh.
func (m *Mesh) Bounds() (min, max mathutil.Vec3) {
	if len(m.Triangles) == 0 {
		return m.Origin, m.Origin
	}
	min = m.Triangles[0].V[0]
	max = min
	for _, tri := range m.Triangles {
		for _, v := range tri.V {
			for k := 0; k < 3; k++ {
				if v[k] < min[k] {
					min[k] = v[k]
				}
				if v[k] > max[k] {
					max[k] = v[k]
				}
			}
		}
	}
	return min, max
}
