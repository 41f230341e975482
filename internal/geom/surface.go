package geom

// Surface is anything a ray can hit. Intersect returns the nearest hit and
// true, or false when the ray misses; every surface kind uses the same
// "no hit" form. Reported distances may be negative (behind the origin);
// callers filter them.
type Surface interface {
	Intersect(ray Ray) (Hit, bool)
	Material() Material
}
