package main

import (
	"fmt"
	"math"
	"os"

	"obj-raytracer/internal/mathutil"
	"obj-raytracer/internal/objfile"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: inspectobj <file.obj>...")
		os.Exit(2)
	}

	failed := false
	for _, path := range os.Args[1:] {
		m, err := objfile.ReadFile(path)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			failed = true
			continue
		}
		st := m.Stats()
		fmt.Printf("%s\n", path)
		fmt.Printf("  Vertices: %d, Normals: %d, Faces: %d, Triangles: %d\n", st.Vertices, st.Normals, st.Faces, st.Triangles)
		fmt.Printf("  BBox: X[%.3f, %.3f] Y[%.3f, %.3f] Z[%.3f, %.3f]\n",
			st.Min.X(), st.Max.X(), st.Min.Y(), st.Max.Y(), st.Min.Z(), st.Max.Z())
		size := st.Max.Sub(st.Min)
		fmt.Printf("  Size: %.3f x %.3f x %.3f\n", size.X(), size.Y(), size.Z())

		// Faces per smoothing group
		perGroup := map[int]int{}
		withNormals := 0
		for _, f := range m.Faces {
			perGroup[f.Group]++
			if f.Normals != nil {
				withNormals++
			}
		}
		fmt.Printf("  Smoothing groups: %d, faces with normals: %d\n", st.Groups, withNormals)
		for g, n := range perGroup {
			if g == objfile.NoGroup {
				fmt.Printf("    off: %d faces\n", n)
			} else {
				fmt.Printf("    s %d: %d faces\n", g, n)
			}
		}

		// Degenerate triangles (zero area after fan split)
		mesh := m.Build(objfile.Placement{}, objfile.DefaultMaterial)
		degenerate := 0
		minArea := math.Inf(1)
		for _, tri := range mesh.Triangles {
			area := 0.5 * tri.V[1].Sub(tri.V[0]).Cross(tri.V[2].Sub(tri.V[0])).Len()
			if area < mathutil.Epsilon {
				degenerate++
			}
			minArea = math.Min(minArea, area)
		}
		fmt.Printf("  Degenerate triangles: %d, smallest area: %.6g\n", degenerate, minArea)
	}

	if failed {
		os.Exit(1)
	}
}
