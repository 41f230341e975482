package geom

import (
	"image/color"
	"testing"
)

func TestMaterial_ReflectionRefractionExclusive(t *testing.T) {
	tests := []struct {
		name         string
		apply        func(m *Material)
		reflectivity float64
		refraction   float64
	}{
		{"reflect then refract", func(m *Material) { m.SetReflectivity(0.5); m.SetRefraction(1.3) }, 0, 1.3},
		{"refract then reflect", func(m *Material) { m.SetRefraction(1.3); m.SetReflectivity(0.5) }, 0.5, 0},
		{"zero write keeps other", func(m *Material) { m.SetRefraction(1.3); m.SetReflectivity(0) }, 0, 1.3},
		{"reflect only", func(m *Material) { m.SetReflectivity(1) }, 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var m Material
			tt.apply(&m)
			if m.Reflectivity() != tt.reflectivity || m.Refraction() != tt.refraction {
				t.Errorf("got reflectivity=%v refraction=%v, want %v/%v",
					m.Reflectivity(), m.Refraction(), tt.reflectivity, tt.refraction)
			}
			if m.Reflectivity() != 0 && m.Refraction() != 0 {
				t.Error("both coefficients nonzero")
			}
		})
	}
}

func TestNewMaterial_RefractionWrittenLast(t *testing.T) {
	m := NewMaterial(color.RGBA{255, 0, 0, 255}, 8, 0.7, 1.5)
	if m.Reflectivity() != 0 || m.Refraction() != 1.5 {
		t.Errorf("got reflectivity=%v refraction=%v", m.Reflectivity(), m.Refraction())
	}
	if !m.Refractive() {
		t.Error("expected refractive material")
	}
}
