// Package scene holds the render input: one camera, the surfaces it sees
// and the lights that illuminate them. A Scene is read-only while rendering.
package scene

import (
	"errors"
	"fmt"

	"obj-raytracer/internal/geom"
	"obj-raytracer/internal/light"
)

var (
	ErrNoCamera      = errors.New("scene: no camera")
	ErrBadResolution = errors.New("scene: resolution must be positive")
)

type Scene struct {
	Name     string
	Camera   *Camera
	Surfaces []geom.Surface
	Lights   []light.Light
}

func New(name string, cam *Camera) *Scene {
	return &Scene{Name: name, Camera: cam}
}

// AddSurface appends s. Order only matters as a tie-break between hits at
// equal distance: the earlier surface wins.
func (s *Scene) AddSurface(surf geom.Surface) {
	s.Surfaces = append(s.Surfaces, surf)
}

func (s *Scene) AddLight(l light.Light) {
	s.Lights = append(s.Lights, l)
}

// Validate checks the scene can be rendered.
func (s *Scene) Validate() error {
	if s.Camera == nil {
		return ErrNoCamera
	}
	if s.Camera.Width <= 0 || s.Camera.Height <= 0 {
		return fmt.Errorf("%w: got %dx%d", ErrBadResolution, s.Camera.Width, s.Camera.Height)
	}
	return nil
}
