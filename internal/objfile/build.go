package objfile

import (
	"image/color"

	"obj-raytracer/internal/geom"
	"obj-raytracer/internal/mathutil"
)

// Placement positions a model in the world.
type Placement struct {
	Origin   mathutil.Vec3
	Rotation [3]float64 // degrees about X, then Y, then Z
	Scale    float64    // uniform; 0 means 1
}

// Transform is the linear part of the placement as an affine matrix; the
// translation is applied by the mesh itself.
func (p Placement) Transform() mathutil.Mat4 {
	s := p.Scale
	if s == 0 {
		s = 1
	}
	rot := mathutil.RotXYZDeg(p.Rotation[0], p.Rotation[1], p.Rotation[2])
	return mathutil.FromMat3Translation(rot.Scale(s), mathutil.Vec3{})
}

// Build triangulates the model and places it. Vertices are rotated and
// scaled, normals only rotated. Polygons are split as a fan around their
// first corner. Faces with a full set of file normals keep them; others
// get the flat face normal. Inside a smoothing group each vertex normal is
// then replaced by the mean of the corner normals that share the vertex.
func (m *Model) Build(p Placement, mat geom.Material) *geom.Mesh {
	xf := p.Transform()
	rot := mathutil.RotXYZDeg(p.Rotation[0], p.Rotation[1], p.Rotation[2])

	verts := m.Vertices
	normals := m.Normals
	if !xf.IsIdentity() {
		verts = make([]mathutil.Vec3, len(m.Vertices))
		for i, v := range m.Vertices {
			verts[i] = xf.MulPoint(v)
		}
		normals = make([]mathutil.Vec3, len(m.Normals))
		for i, n := range m.Normals {
			normals[i] = rot.MulVec3(n)
		}
	}

	var (
		tris    []geom.Triangle
		corners []corner
	)
	for _, f := range m.Faces {
		for k := 1; k+1 < len(f.Vertices); k++ {
			idx := [3]int{0, k, k + 1}
			var v, n [3]mathutil.Vec3
			for c, i := range idx {
				v[c] = verts[f.Vertices[i]]
			}
			if f.Normals != nil {
				for c, i := range idx {
					n[c] = normals[f.Normals[i]]
				}
			} else {
				fn := geom.FaceNormal(v[0], v[1], v[2])
				n = [3]mathutil.Vec3{fn, fn, fn}
			}
			if f.Group != NoGroup {
				for c, i := range idx {
					corners = append(corners, corner{tri: len(tris), k: c, vertex: f.Vertices[i], group: f.Group})
				}
			}
			tris = append(tris, *geom.NewSmoothTriangle(v, n, mat))
		}
	}

	smooth(tris, corners)
	return geom.NewMesh(p.Origin, tris, mat)
}

// corner is one triangle corner that belongs to a smoothing group.
type corner struct {
	tri, k int // triangle index and corner within it
	vertex int // vertex index in the file
	group  int
}

type smoothKey struct{ group, vertex int }

type normalSum struct {
	sum   mathutil.Vec3
	count int
}

// smooth averages corner normals per (group, vertex). The mean is not
// renormalized.
func smooth(tris []geom.Triangle, corners []corner) {
	if len(corners) == 0 {
		return
	}
	sums := make(map[smoothKey]*normalSum)
	for _, c := range corners {
		key := smoothKey{c.group, c.vertex}
		s, ok := sums[key]
		if !ok {
			s = &normalSum{}
			sums[key] = s
		}
		s.sum = s.sum.Add(tris[c.tri].N[c.k])
		s.count++
	}
	for _, c := range corners {
		s := sums[smoothKey{c.group, c.vertex}]
		tris[c.tri].N[c.k] = s.sum.Scale(1 / float64(s.count))
	}
}

// DefaultMaterial is a plain white matte material for tools that only need
// the geometry.
var DefaultMaterial = geom.NewMaterial(color.RGBA{255, 255, 255, 255}, 1, 0, 0)
