package geom

import (
	"math"
	"testing"

	"obj-raytracer/internal/mathutil"
)

func TestTriangle_Intersect(t *testing.T) {
	tri := NewTriangle(mathutil.Vec3{0, 0, 0}, mathutil.Vec3{1, 0, 0}, mathutil.Vec3{0, 1, 0}, gray)

	tests := []struct {
		name   string
		origin mathutil.Vec3
		dir    mathutil.Vec3
		hit    bool
		dist   float64
	}{
		{"center", mathutil.Vec3{0.25, 0.25, -2}, mathutil.Vec3{0, 0, 1}, true, 2},
		{"vertex", mathutil.Vec3{0, 0, -1}, mathutil.Vec3{0, 0, 1}, true, 1},
		{"hypotenuse", mathutil.Vec3{0.5, 0.5, -1}, mathutil.Vec3{0, 0, 1}, true, 1},
		{"outside u+v", mathutil.Vec3{0.6, 0.6, -1}, mathutil.Vec3{0, 0, 1}, false, 0},
		{"outside negative", mathutil.Vec3{-0.1, 0.5, -1}, mathutil.Vec3{0, 0, 1}, false, 0},
		{"behind origin", mathutil.Vec3{0.2, 0.2, 3}, mathutil.Vec3{0, 0, 1}, true, -3},
		{"parallel", mathutil.Vec3{0.2, 0.2, 1}, mathutil.Vec3{1, 0, 0}, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, ok := tri.Intersect(NewRay(tt.origin, tt.dir))
			if ok != tt.hit {
				t.Fatalf("hit = %v, want %v", ok, tt.hit)
			}
			if !ok {
				return
			}
			if math.Abs(hit.Distance-tt.dist) > 1e-9 {
				t.Errorf("distance = %f, want %f", hit.Distance, tt.dist)
			}
			if hit.Surface != Surface(tri) {
				t.Error("hit does not reference the triangle")
			}
		})
	}
}

func TestTriangle_BarycentricWeightsSumToOne(t *testing.T) {
	tri := NewTriangle(mathutil.Vec3{-1, 0, 2}, mathutil.Vec3{2, 0.5, 3}, mathutil.Vec3{0, 3, 2.5}, gray)

	origins := []mathutil.Vec3{
		{0, 1, -5}, {0.5, 0.5, -5}, {1, 1, -5}, {-0.5, 0.2, -5}, {0.2, 2, -5},
	}
	for _, o := range origins {
		target := tri.V[0].Scale(0.2).Add(tri.V[1].Scale(0.3)).Add(tri.V[2].Scale(0.5))
		ray := NewRay(o, target.Sub(o))
		dist, w, ok := tri.intersect(ray)
		if !ok {
			t.Fatalf("ray from %v missed", o)
		}
		if sum := w[0] + w[1] + w[2]; math.Abs(sum-1) > 1e-9 {
			t.Errorf("Möller–Trumbore weights %v sum to %f", w, sum)
		}
		want := [3]float64{0.2, 0.3, 0.5}
		for k := range w {
			if math.Abs(w[k]-want[k]) > 1e-9 {
				t.Errorf("weight %d = %f, want %f", k, w[k], want[k])
			}
		}

		b := tri.Barycentric(ray.At(dist))
		if sum := b[0] + b[1] + b[2]; math.Abs(sum-1) > 1e-9 {
			t.Errorf("Barycentric %v sums to %f", b, sum)
		}
		for k := range b {
			if math.Abs(b[k]-w[k]) > 1e-9 {
				t.Errorf("Barycentric[%d] = %f, intersection weight %f", k, b[k], w[k])
			}
		}
	}
}

func TestTriangle_DegenerateIsNeverHit(t *testing.T) {
	tri := NewTriangle(mathutil.Vec3{0, 0, 0}, mathutil.Vec3{1, 1, 1}, mathutil.Vec3{2, 2, 2}, gray)
	if tri.N[0] != (mathutil.Vec3{}) {
		t.Errorf("degenerate face normal = %v, want zero", tri.N[0])
	}
	if _, ok := tri.Intersect(NewRay(mathutil.Vec3{1, 1, -3}, mathutil.Vec3{0, 0, 1})); ok {
		t.Error("degenerate triangle reported a hit")
	}
}

func TestTriangle_FlatNormal(t *testing.T) {
	tri := NewTriangle(mathutil.Vec3{0, 0, 0}, mathutil.Vec3{1, 0, 0}, mathutil.Vec3{0, 1, 0}, gray)
	want := mathutil.Vec3{0, 0, 1}
	for i, n := range tri.N {
		if n != want {
			t.Errorf("N[%d] = %v, want %v", i, n, want)
		}
	}
}

func TestTriangle_InterpolatesNormals(t *testing.T) {
	tri := NewSmoothTriangle(
		[3]mathutil.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}},
		[3]mathutil.Vec3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}},
		gray,
	)
	hit, ok := tri.Intersect(NewRay(mathutil.Vec3{0.25, 0.5, -1}, mathutil.Vec3{0, 0, 1}))
	if !ok {
		t.Fatal("expected hit")
	}
	want := mathutil.Vec3{0.25, 0.25, 0.5}
	if hit.Normal.Sub(want).Len() > 1e-9 {
		t.Errorf("normal = %v, want %v", hit.Normal, want)
	}
}
