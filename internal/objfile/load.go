package objfile

import (
	"fmt"
	"os"
	"path/filepath"

	"obj-raytracer/internal/geom"
)

// ReadFile parses the OBJ file at path.
func ReadFile(path string) (*Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("objfile: open %s: %w", path, err)
	}
	defer f.Close()

	return Parse(f, filepath.Base(path))
}

// Load reads the OBJ file at path and places it as a mesh.
func Load(path string, p Placement, mat geom.Material) (*geom.Mesh, error) {
	m, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	return m.Build(p, mat), nil
}
