// Package scenefile describes scenes as JSON documents and assembles them
// into a renderable scene.Scene.
package scenefile

import (
	"encoding/json"
	"fmt"
	"image/color"
	"os"

	"obj-raytracer/internal/mathutil"
)

// Document is the on-disk scene description. Optional numbers are pointers
// so that an explicit zero can be told apart from an absent field.
type Document struct {
	Name    string       `json:"name"`
	Camera  CameraSpec   `json:"camera"`
	Lights  []LightSpec  `json:"lights"`
	Objects []ObjectSpec `json:"objects"`
}

type CameraSpec struct {
	Position     mathutil.Vec3 `json:"position"`
	FovH         float64       `json:"fov_h"`
	FovV         float64       `json:"fov_v"`
	Width        int           `json:"width"`
	Height       int           `json:"height"`
	Near         float64       `json:"near"`
	Far          float64       `json:"far"`
	LensDistance *float64      `json:"lens_distance,omitempty"`
}

// LightSpec is a point, directional or spot light.
type LightSpec struct {
	Type      string        `json:"type"`
	Position  mathutil.Vec3 `json:"position"`
	Direction mathutil.Vec3 `json:"direction"`
	Color     *RGB          `json:"color,omitempty"`
	Intensity *float64      `json:"intensity,omitempty"`
	Angle     float64       `json:"angle,omitempty"` // spot half-angle, degrees
}

// ObjectSpec is a sphere, a triangle or an OBJ model.
type ObjectSpec struct {
	Type string `json:"type"`

	// sphere
	Center mathutil.Vec3 `json:"center"`
	Radius float64       `json:"radius,omitempty"`

	// triangle
	Vertices []mathutil.Vec3 `json:"vertices,omitempty"`
	Normals  []mathutil.Vec3 `json:"normals,omitempty"`

	// model
	File     string        `json:"file,omitempty"`
	Origin   mathutil.Vec3 `json:"origin"`
	Rotation [3]float64    `json:"rotation"`
	Scale    *float64      `json:"scale,omitempty"`

	Material MaterialSpec `json:"material"`
}

type MaterialSpec struct {
	Color        *RGB    `json:"color,omitempty"`
	Shininess    float64 `json:"shininess"`
	Reflectivity float64 `json:"reflectivity,omitempty"`
	Refraction   float64 `json:"refraction,omitempty"`
}

// RGB is an 8-bit color written as [r, g, b].
type RGB [3]uint8

func (c *RGB) rgba() color.RGBA {
	if c == nil {
		return color.RGBA{255, 255, 255, 255}
	}
	return color.RGBA{c[0], c[1], c[2], 255}
}

// Parse decodes a scene document.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("scenefile: parse: %w", err)
	}
	return &doc, nil
}

// ReadFile reads and decodes the scene document at path.
func ReadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scenefile: read %s: %w", path, err)
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%w (%s)", err, path)
	}
	return doc, nil
}

func floatOr(p *float64, def float64) float64 {
	if p == nil {
		return def
	}
	return *p
}

func ptr[T any](v T) *T { return &v }
