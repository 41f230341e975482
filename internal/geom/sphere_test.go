package geom

import (
	"image/color"
	"math"
	"testing"

	"obj-raytracer/internal/mathutil"
)

var gray = NewMaterial(color.RGBA{128, 128, 128, 255}, 16, 0, 0)

func TestSphere_Intersect_Miss(t *testing.T) {
	s := NewSphere(mathutil.Vec3{0, 0, 0}, 1, gray)
	ray := NewRay(mathutil.Vec3{2, 0, -5}, mathutil.Vec3{0, 0, 1})

	if hit, ok := s.Intersect(ray); ok {
		t.Errorf("expected miss, got hit at t=%f", hit.Distance)
	}
}

func TestSphere_Intersect_PointOnSurface(t *testing.T) {
	s := NewSphere(mathutil.Vec3{0.5, -1, 3}, 1.5, gray)

	rays := []Ray{
		NewRay(mathutil.Vec3{0, 0, -10}, mathutil.Vec3{0.05, -0.1, 1}),
		NewRay(mathutil.Vec3{5, 5, 5}, mathutil.Vec3{-4.5, -6, -2}),
		NewRay(mathutil.Vec3{0.5, -1, 3}, mathutil.Vec3{1, 1, 0}), // from inside
		NewRay(mathutil.Vec3{-3, -1, 3}, mathutil.Vec3{1, 0, 0}),
		NewRay(mathutil.Vec3{2, -1, -4}, mathutil.Vec3{0, 0, 1}), // grazing
	}

	for i, ray := range rays {
		hit, ok := s.Intersect(ray)
		if !ok {
			t.Errorf("ray %d: expected hit", i)
			continue
		}
		p := ray.Origin.Add(ray.Direction().Scale(hit.Distance))
		if d := p.Dist(s.Center); math.Abs(d-s.Radius) > 1e-9 {
			t.Errorf("ray %d: |p - c| = %f, want %f", i, d, s.Radius)
		}
		if hit.Position.Sub(p).Len() > 1e-9 {
			t.Errorf("ray %d: position %v, want %v", i, hit.Position, p)
		}
		if math.Abs(hit.Normal.Len()-1) > 1e-9 {
			t.Errorf("ray %d: normal not unit: %v", i, hit.Normal)
		}
	}
}

func TestSphere_Intersect_ReportsNearRoot(t *testing.T) {
	s := NewSphere(mathutil.Vec3{0, 0, 0}, 1, gray)

	tests := []struct {
		name   string
		origin mathutil.Vec3
		dir    mathutil.Vec3
		want   float64
	}{
		{"in front", mathutil.Vec3{0, 0, -5}, mathutil.Vec3{0, 0, 1}, 4},
		{"from inside", mathutil.Vec3{0, 0, 0}, mathutil.Vec3{0, 0, 1}, -1},
		{"behind", mathutil.Vec3{0, 0, 5}, mathutil.Vec3{0, 0, 1}, -6},
		{"unnormalized direction", mathutil.Vec3{0, 0, -5}, mathutil.Vec3{0, 0, 10}, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, ok := s.Intersect(NewRay(tt.origin, tt.dir))
			if !ok {
				t.Fatal("expected hit")
			}
			if math.Abs(hit.Distance-tt.want) > 1e-9 {
				t.Errorf("distance = %f, want %f", hit.Distance, tt.want)
			}
			if hit.Surface != Surface(s) {
				t.Error("hit does not reference the sphere")
			}
		})
	}
}

func TestSphere_Intersect_CenterAimed(t *testing.T) {
	s := NewSphere(mathutil.Vec3{0.5, -1, 3}, 1.5, gray)

	for i := 0; i < 1000; i++ {
		f := float64(i) / 1000
		origin := mathutil.Vec3{5 + f, 5 - 0.7*f, 5 + 0.3*f}
		ray := NewRay(origin, s.Center.Sub(origin))

		hit, ok := s.Intersect(ray)
		if !ok {
			t.Fatalf("origin %v: center-aimed ray missed", origin)
		}
		want := origin.Dist(s.Center) - s.Radius
		if math.Abs(hit.Distance-want) > 1e-9 {
			t.Fatalf("origin %v: distance %f, want %f", origin, hit.Distance, want)
		}
	}
}
