package geom

import "obj-raytracer/internal/mathutil"

// Hit describes where a ray met a surface. Surface is a reference only;
// the hit does not own it.
type Hit struct {
	Position mathutil.Vec3
	Distance float64
	Normal   mathutil.Vec3
	Surface  Surface
}
