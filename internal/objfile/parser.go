// Package objfile reads Wavefront OBJ geometry and places it in a scene as
// a triangle mesh.
package objfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"obj-raytracer/internal/mathutil"
)

// ErrNoFaces is returned for a file that declares no faces.
var ErrNoFaces = errors.New("objfile: no faces")

// NoGroup marks a face outside any smoothing group.
const NoGroup = -1

// Face is one polygon of the model. Indices are 0-based into the model's
// vertex and normal lists. Normals is nil unless every corner has one.
type Face struct {
	Vertices []int
	Normals  []int
	Group    int
}

// Model is a parsed OBJ file in model space.
type Model struct {
	Name     string
	Vertices []mathutil.Vec3
	Normals  []mathutil.Vec3
	Faces    []Face
}

// Parse reads v, vn, f and s statements from r. Texture coordinates,
// objects, groups and materials are ignored. name is used in errors.
func Parse(r io.Reader, name string) (*Model, error) {
	m := &Model{Name: name}
	group := NoGroup

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)
	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}

		var err error
		switch fields[0] {
		case "v":
			var v mathutil.Vec3
			v, err = parseVec3(fields)
			m.Vertices = append(m.Vertices, v)
		case "vn":
			var n mathutil.Vec3
			n, err = parseVec3(fields)
			m.Normals = append(m.Normals, n)
		case "f":
			var f Face
			f, err = m.parseFace(fields[1:])
			f.Group = group
			m.Faces = append(m.Faces, f)
		case "s":
			group = parseGroup(fields)
		}
		if err != nil {
			return nil, fmt.Errorf("objfile: %s:%d: %w", name, line, err)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("objfile: read %s: %w", name, err)
	}
	if len(m.Faces) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoFaces, name)
	}
	return m, nil
}

func parseVec3(fields []string) (mathutil.Vec3, error) {
	if len(fields) < 4 {
		return mathutil.Vec3{}, fmt.Errorf("%s needs 3 components, got %d", fields[0], len(fields)-1)
	}
	var v mathutil.Vec3
	for i := 0; i < 3; i++ {
		f, err := strconv.ParseFloat(fields[i+1], 64)
		if err != nil {
			return mathutil.Vec3{}, fmt.Errorf("bad %s component %q", fields[0], fields[i+1])
		}
		v[i] = f
	}
	return v, nil
}

// parseFace reads corners of the form v, v/vt, v//vn or v/vt/vn.
func (m *Model) parseFace(corners []string) (Face, error) {
	if len(corners) < 3 {
		return Face{}, fmt.Errorf("face needs at least 3 vertices, got %d", len(corners))
	}
	f := Face{Vertices: make([]int, len(corners))}
	normals := make([]int, 0, len(corners))
	for i, c := range corners {
		parts := strings.Split(c, "/")
		vi, err := resolveIndex(parts[0], len(m.Vertices), "vertex")
		if err != nil {
			return Face{}, err
		}
		f.Vertices[i] = vi
		if len(parts) >= 3 && parts[2] != "" {
			ni, err := resolveIndex(parts[2], len(m.Normals), "normal")
			if err != nil {
				return Face{}, err
			}
			normals = append(normals, ni)
		}
	}
	if len(normals) == len(corners) {
		f.Normals = normals
	}
	return f, nil
}

// resolveIndex converts a 1-based or negative (relative to the end) OBJ
// index into a 0-based one.
func resolveIndex(s string, n int, kind string) (int, error) {
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("bad %s index %q", kind, s)
	}
	switch {
	case i > 0 && i <= n:
		return i - 1, nil
	case i < 0 && -i <= n:
		return n + i, nil
	}
	return 0, fmt.Errorf("%s index %d out of range", kind, i)
}

// parseGroup handles "s <id>" and "s off". Any id that is not a
// non-negative integer turns smoothing off.
func parseGroup(fields []string) int {
	if len(fields) < 2 || fields[1] == "off" {
		return NoGroup
	}
	g, err := strconv.Atoi(fields[1])
	if err != nil || g < 0 {
		return NoGroup
	}
	return g
}

// Stats summarizes a model for inspection tools.
type Stats struct {
	Vertices  int
	Normals   int
	Faces     int
	Triangles int
	Groups    int // distinct smoothing groups
	Min, Max  mathutil.Vec3
}

func (m *Model) Stats() Stats {
	s := Stats{Vertices: len(m.Vertices), Normals: len(m.Normals), Faces: len(m.Faces)}
	groups := make(map[int]bool)
	for _, f := range m.Faces {
		s.Triangles += len(f.Vertices) - 2
		if f.Group != NoGroup {
			groups[f.Group] = true
		}
	}
	s.Groups = len(groups)
	if len(m.Vertices) > 0 {
		s.Min, s.Max = m.Vertices[0], m.Vertices[0]
		for _, v := range m.Vertices[1:] {
			for k := 0; k < 3; k++ {
				s.Min[k] = min(s.Min[k], v[k])
				s.Max[k] = max(s.Max[k], v[k])
			}
		}
	}
	return s
}
