package trace

import "obj-raytracer/internal/geom"

// Raycast returns the nearest hit of ray against surfaces.
//
// caster, when non-nil, is skipped so a ray leaving a surface does not
// immediately hit it again. A hit is accepted only when its distance is
// non-negative and the Z coordinate of its position lies inside clip.
// Surfaces are scanned in order; on equal distance the earlier one wins.
func Raycast(ray geom.Ray, surfaces []geom.Surface, caster geom.Surface, clip geom.DepthWindow) (geom.Hit, bool) {
	var (
		best  geom.Hit
		found bool
	)
	for _, s := range surfaces {
		if caster != nil && s == caster {
			continue
		}
		hit, ok := s.Intersect(ray)
		if !ok || hit.Distance < 0 {
			continue
		}
		if found && hit.Distance >= best.Distance {
			continue
		}
		if !clip.Contains(hit.Position.Z()) {
			continue
		}
		best, found = hit, true
	}
	return best, found
}
