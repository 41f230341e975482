package geom

import "image/color"

// Material holds the shading parameters shared by every surface kind.
// Reflectivity and refraction are mutually exclusive: setting one to a
// nonzero value clears the other.
type Material struct {
	Albedo    color.RGBA
	Shininess float64

	reflectivity float64
	refraction   float64
}

// NewMaterial applies reflectivity first and refraction second, so when both
// are nonzero the refraction index is kept.
func NewMaterial(albedo color.RGBA, shininess, reflectivity, refraction float64) Material {
	m := Material{Albedo: albedo, Shininess: shininess}
	m.SetReflectivity(reflectivity)
	m.SetRefraction(refraction)
	return m
}

func (m *Material) SetReflectivity(r float64) {
	m.reflectivity = r
	if r != 0 {
		m.refraction = 0
	}
}

func (m *Material) SetRefraction(eta float64) {
	m.refraction = eta
	if eta != 0 {
		m.reflectivity = 0
	}
}

// Reflectivity is the mirror coefficient in [0,1].
func (m Material) Reflectivity() float64 { return m.reflectivity }

// Refraction is the refractive index; zero means opaque.
func (m Material) Refraction() float64 { return m.refraction }

// Refractive reports whether rays continue through the surface.
func (m Material) Refractive() bool { return m.refraction != 0 }
