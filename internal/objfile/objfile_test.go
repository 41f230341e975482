package objfile

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"obj-raytracer/internal/geom"
	"obj-raytracer/internal/mathutil"
)

const quadOBJ = `# unit quad and a triangle
o Thing
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
vt 0 0
vn 0 0 1
f 1//1 2//1 3//1 4//1
f -4/1 -3/1 -1/1
`

func near(a, b mathutil.Vec3) bool {
	for i := 0; i < 3; i++ {
		if math.Abs(a[i]-b[i]) > 1e-9 {
			return false
		}
	}
	return true
}

func TestParse(t *testing.T) {
	m, err := Parse(strings.NewReader(quadOBJ), "quad.obj")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(m.Vertices) != 4 || len(m.Normals) != 1 || len(m.Faces) != 2 {
		t.Fatalf("got %d vertices, %d normals, %d faces", len(m.Vertices), len(m.Normals), len(m.Faces))
	}
	if got := m.Faces[0].Normals; len(got) != 4 || got[0] != 0 {
		t.Errorf("quad normals = %v", got)
	}
	if got := m.Faces[1].Vertices; got[0] != 0 || got[1] != 1 || got[2] != 3 {
		t.Errorf("negative indices resolved to %v", got)
	}
	if m.Faces[1].Normals != nil {
		t.Errorf("face without normals got %v", m.Faces[1].Normals)
	}

	st := m.Stats()
	if st.Triangles != 3 || st.Groups != 0 || st.Max != (mathutil.Vec3{1, 1, 0}) {
		t.Errorf("Stats = %+v", st)
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"bad number", "v 0 0 x\nf 1 1 1\n", "bad.obj:1"},
		{"short vertex", "v 0 0\n", "needs 3 components"},
		{"index out of range", "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 9\n", "bad.obj:4: vertex index 9 out of range"},
		{"zero index", "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 0 1 2\n", "out of range"},
		{"short face", "v 0 0 0\nv 1 0 0\nf 1 2\n", "at least 3"},
		{"bad normal", "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1//1 2//1 3//1\n", "normal index 1 out of range"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.src), "bad.obj")
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("err = %v, want containing %q", err, tt.want)
			}
		})
	}

	_, err := Parse(strings.NewReader("v 0 0 0\n"), "empty.obj")
	if !errors.Is(err, ErrNoFaces) {
		t.Errorf("err = %v, want ErrNoFaces", err)
	}
}

func TestParse_SmoothingGroups(t *testing.T) {
	src := "v 0 0 0\nv 1 0 0\nv 0 1 0\n" +
		"f 1 2 3\n" +
		"s 0\nf 1 2 3\n" +
		"s 4\nf 1 2 3\n" +
		"s off\nf 1 2 3\n" +
		"s smooth\nf 1 2 3\n"
	m, err := Parse(strings.NewReader(src), "groups.obj")
	if err != nil {
		t.Fatal(err)
	}
	want := []int{NoGroup, 0, 4, NoGroup, NoGroup}
	for i, f := range m.Faces {
		if f.Group != want[i] {
			t.Errorf("face %d group = %d, want %d", i, f.Group, want[i])
		}
	}
}

func TestBuild_Placement(t *testing.T) {
	m := &Model{
		Vertices: []mathutil.Vec3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}},
		Normals:  []mathutil.Vec3{{1, 0, 0}},
		Faces:    []Face{{Vertices: []int{0, 1, 2}, Normals: []int{0, 0, 0}, Group: NoGroup}},
	}
	mesh := m.Build(Placement{
		Origin:   mathutil.Vec3{0, 0, 5},
		Rotation: [3]float64{0, 0, 90},
		Scale:    2,
	}, geom.Material{})

	tri := mesh.Triangles[0]
	if !near(tri.V[0], mathutil.Vec3{0, 2, 5}) {
		t.Errorf("V[0] = %v, want (0,2,5)", tri.V[0])
	}
	if !near(tri.V[2], mathutil.Vec3{0, 0, 7}) {
		t.Errorf("V[2] = %v, want (0,0,7)", tri.V[2])
	}
	// Normals rotate but do not scale.
	if !near(tri.N[0], mathutil.Vec3{0, 1, 0}) {
		t.Errorf("N[0] = %v, want (0,1,0)", tri.N[0])
	}
	if m.Vertices[0] != (mathutil.Vec3{1, 0, 0}) {
		t.Error("Build mutated the model")
	}
}

func TestBuild_FanAndFlatNormals(t *testing.T) {
	m, err := Parse(strings.NewReader("v 0 0 0\nv 1 0 0\nv 1 1 0\nv 0 1 0\nv -1 1 0\nf 1 2 3 4 5\n"), "fan.obj")
	if err != nil {
		t.Fatal(err)
	}
	mesh := m.Build(Placement{}, geom.Material{})
	if len(mesh.Triangles) != 3 {
		t.Fatalf("got %d triangles, want 3", len(mesh.Triangles))
	}
	for i, tri := range mesh.Triangles {
		if tri.V[0] != (mathutil.Vec3{}) {
			t.Errorf("triangle %d does not fan from the first corner", i)
		}
		for _, n := range tri.N {
			if !near(n, mathutil.Vec3{0, 0, 1}) {
				t.Errorf("triangle %d normal %v, want +Z", i, n)
			}
		}
	}
}

func TestBuild_Smoothing(t *testing.T) {
	const verts = "v 0 0 0\nv 1 0 0\nv 0 1 0\nv 0 0 1\n"

	tests := []struct {
		name   string
		group  string
		shared mathutil.Vec3
	}{
		{"group 1", "s 1\n", mathutil.Vec3{0.5, 0, 0.5}},
		{"group 0", "s 0\n", mathutil.Vec3{0.5, 0, 0.5}},
		{"off", "s off\n", mathutil.Vec3{0, 0, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := Parse(strings.NewReader(verts+tt.group+"f 1 2 3\nf 1 3 4\n"), "wedge.obj")
			if err != nil {
				t.Fatal(err)
			}
			mesh := m.Build(Placement{}, geom.Material{})
			a := mesh.Triangles[0]
			if !near(a.N[0], tt.shared) || !near(a.N[2], tt.shared) {
				t.Errorf("shared vertex normals = %v, %v, want %v", a.N[0], a.N[2], tt.shared)
			}
			if !near(a.N[1], mathutil.Vec3{0, 0, 1}) {
				t.Errorf("unshared vertex normal = %v", a.N[1])
			}
		})
	}
}

func writeOBJ(t *testing.T, dir, rel, src string) string {
	t.Helper()
	path := filepath.Join(dir, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(src), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestIndexAndCache(t *testing.T) {
	dir := t.TempDir()
	cube := writeOBJ(t, dir, filepath.Join("shapes", "Cube.obj"), quadOBJ)
	writeOBJ(t, dir, "broken.obj", "v 0 0 0\n")
	writeOBJ(t, dir, "notes.txt", "not a model")

	idx := BuildIndex(dir)
	if idx.Len() != 2 {
		t.Errorf("Len = %d, want 2", idx.Len())
	}
	for _, name := range []string{"cube", "CUBE.OBJ", "shapes/Cube.obj", cube} {
		if path, ok := idx.ResolvePath(name); !ok || path != cube {
			t.Errorf("ResolvePath(%q) = %q, %v", name, path, ok)
		}
	}
	if _, ok := idx.ResolvePath("sphere"); ok {
		t.Error("resolved a missing model")
	}

	cache := NewCache(idx)
	a, err := cache.Model("cube")
	if err != nil {
		t.Fatal(err)
	}
	b, _ := cache.Model("Cube.obj")
	if a != b {
		t.Error("model parsed twice")
	}
	if _, err := cache.Model("broken"); !errors.Is(err, ErrNoFaces) {
		t.Errorf("broken model err = %v", err)
	}
	if cache.Len() != 2 {
		t.Errorf("cache Len = %d", cache.Len())
	}
	if _, err := cache.Load("missing", Placement{}, geom.Material{}); err == nil {
		t.Error("expected an error for a missing model")
	}

	mesh, err := Load(cube, Placement{Origin: mathutil.Vec3{0, 0, 3}}, geom.Material{})
	if err != nil {
		t.Fatal(err)
	}
	if _, max := mesh.Bounds(); max.Z() != 3 {
		t.Errorf("mesh not translated: max %v", max)
	}
}
