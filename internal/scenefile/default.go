package scenefile

import (
	"obj-raytracer/internal/mathutil"
	"obj-raytracer/internal/scene"
)

// DefaultDocument is the built-in demo scene: a mirror sphere, a glass
// sphere and two matte spheres on a ground quad, lit by a point, a
// directional and a spot light.
func DefaultDocument() *Document {
	gray := &RGB{180, 180, 180}
	ground := []mathutil.Vec3{{-8, -1, -2}, {8, -1, -2}, {8, -1, 14}, {-8, -1, 14}}

	return &Document{
		Name: "demo",
		Camera: CameraSpec{
			Position: mathutil.Vec3{0, 1, -6},
			FovH:     60,
			FovV:     45,
			Width:    800,
			Height:   600,
			Near:     0.6,
			Far:      50,
		},
		Lights: []LightSpec{
			{Type: "directional", Direction: mathutil.Vec3{0, -1, 0.3}, Intensity: ptr(0.5)},
			{Type: "point", Position: mathutil.Vec3{3, 5, -2}, Intensity: ptr(2.5)},
			{Type: "point", Position: mathutil.Vec3{-3, 4, 1}, Color: &RGB{255, 220, 180}, Intensity: ptr(2.5)},
			{Type: "spot", Position: mathutil.Vec3{0, 6, 4}, Direction: mathutil.Vec3{0, -1, 0}, Angle: 25, Intensity: ptr(1.0)},
		},
		Objects: []ObjectSpec{
			{Type: "sphere", Center: mathutil.Vec3{-1.6, 0.2, 4}, Radius: 1.2,
				Material: MaterialSpec{Color: gray, Shininess: 32, Reflectivity: 0.8}},
			{Type: "sphere", Center: mathutil.Vec3{0.9, -0.2, 2}, Radius: 0.8,
				Material: MaterialSpec{Shininess: 64, Refraction: 1.5}},
			{Type: "sphere", Center: mathutil.Vec3{2.6, -0.3, 5}, Radius: 0.7,
				Material: MaterialSpec{Color: &RGB{200, 40, 40}, Shininess: 16}},
			{Type: "sphere", Center: mathutil.Vec3{-0.2, -0.5, 7}, Radius: 0.5,
				Material: MaterialSpec{Color: &RGB{40, 90, 200}, Shininess: 8}},
			{Type: "triangle", Vertices: []mathutil.Vec3{ground[0], ground[2], ground[1]},
				Material: MaterialSpec{Color: gray, Shininess: 4, Reflectivity: 0.2}},
			{Type: "triangle", Vertices: []mathutil.Vec3{ground[0], ground[3], ground[2]},
				Material: MaterialSpec{Color: gray, Shininess: 4, Reflectivity: 0.2}},
		},
	}
}

// Default assembles DefaultDocument. It has no models, so it cannot fail.
func Default() *scene.Scene {
	asm, err := DefaultDocument().Assemble(nil)
	if err != nil {
		panic(err)
	}
	return asm.Scene
}
