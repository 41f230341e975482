package trace

import (
	"image/color"
	"math"

	"obj-raytracer/internal/geom"
	"obj-raytracer/internal/light"
)

// directLight returns what l adds at hit for a ray arriving along ray,
// scaled by the reflection accumulator. Occluded lights add nothing.
//
// The diffuse term divides by the light's falloff, which is the squared
// distance for point lights and 1 for directional and spot lights.
func directLight(surfaces []geom.Surface, l light.Light, hit geom.Hit, ray geom.Ray, reflection float64) (color.RGBA, bool) {
	shadow, window := l.ShadowRay(hit.Position)
	if _, blocked := Raycast(shadow, surfaces, hit.Surface, window); blocked {
		return color.RGBA{}, false
	}

	mat := hit.Surface.Material()
	intensity := l.Intensity() * l.Attenuation(hit)
	diffuse := intensity / l.Falloff(hit.Position)

	// Blinn-Phong half vector between the viewer and the light.
	half := ray.Direction().Neg().Add(shadow.Direction()).Normalize()
	ndh := hit.Normal.Dot(half)
	if ndh < 0 {
		ndh = 0
	}
	specular := math.Pow(ndh, mat.Shininess)

	intensity *= diffuse + specular

	lc := l.Color()
	k := intensity * reflection / (255 * 255)
	return unitColor(
		float64(mat.Albedo.R)*float64(lc.R)*k,
		float64(mat.Albedo.G)*float64(lc.G)*k,
		float64(mat.Albedo.B)*float64(lc.B)*k,
	), true
}
