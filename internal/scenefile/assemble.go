package scenefile

import (
	"fmt"

	"obj-raytracer/internal/geom"
	"obj-raytracer/internal/light"
	"obj-raytracer/internal/mathutil"
	"obj-raytracer/internal/objfile"
	"obj-raytracer/internal/scene"
)

// Assembly is a built scene plus the objects that could not be loaded.
// Model load failures do not stop assembly.
type Assembly struct {
	Scene   *scene.Scene
	Skipped []error
}

// Load reads the document at path and assembles it, resolving model files
// against modelDir.
func Load(path, modelDir string) (*Assembly, error) {
	doc, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	return doc.Assemble(objfile.NewCache(objfile.BuildIndex(modelDir)))
}

// Assemble builds the scene. models resolves "model" objects; when nil
// every model is skipped. Malformed lights or primitives are errors.
func (d *Document) Assemble(models *objfile.Cache) (*Assembly, error) {
	cs := d.Camera
	cam := scene.NewCamera(cs.Position, cs.FovH, cs.FovV, cs.Width, cs.Height, cs.Near, cs.Far)
	if cs.LensDistance != nil {
		cam.SetLensDistance(*cs.LensDistance)
	}

	asm := &Assembly{Scene: scene.New(d.Name, cam)}
	sc := asm.Scene

	for i, ls := range d.Lights {
		l, err := ls.build()
		if err != nil {
			return nil, fmt.Errorf("scenefile: light %d: %w", i, err)
		}
		sc.AddLight(l)
	}

	for i, obj := range d.Objects {
		mat := obj.Material.build()
		switch obj.Type {
		case "sphere":
			if obj.Radius <= 0 {
				return nil, fmt.Errorf("scenefile: object %d: sphere radius must be positive", i)
			}
			sc.AddSurface(geom.NewSphere(obj.Center, obj.Radius, mat))
		case "triangle":
			tri, err := obj.triangle(mat)
			if err != nil {
				return nil, fmt.Errorf("scenefile: object %d: %w", i, err)
			}
			sc.AddSurface(tri)
		case "model":
			if models == nil {
				asm.Skipped = append(asm.Skipped, fmt.Errorf("scenefile: object %d (%s): no model directory", i, obj.File))
				continue
			}
			p := objfile.Placement{Origin: obj.Origin, Rotation: obj.Rotation, Scale: floatOr(obj.Scale, 1)}
			mesh, err := models.Load(obj.File, p, mat)
			if err != nil {
				asm.Skipped = append(asm.Skipped, fmt.Errorf("scenefile: object %d (%s): %w", i, obj.File, err))
				continue
			}
			sc.AddSurface(mesh)
		default:
			return nil, fmt.Errorf("scenefile: object %d: unknown type %q", i, obj.Type)
		}
	}

	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return asm, nil
}

func (ls LightSpec) build() (light.Light, error) {
	c := ls.Color.rgba()
	intensity := floatOr(ls.Intensity, 1)
	switch ls.Type {
	case "point":
		return light.NewPointLight(ls.Position, c, intensity), nil
	case "directional":
		if ls.Direction.IsZero() {
			return nil, fmt.Errorf("directional light needs a direction")
		}
		return light.NewDirectionalLight(ls.Direction, c, intensity), nil
	case "spot":
		if ls.Direction.IsZero() {
			return nil, fmt.Errorf("spot light needs a direction")
		}
		if ls.Angle <= 0 {
			return nil, fmt.Errorf("spot light angle must be positive")
		}
		return light.NewSpotLight(ls.Position, ls.Direction, c, intensity, ls.Angle), nil
	}
	return nil, fmt.Errorf("unknown type %q", ls.Type)
}

func (ms MaterialSpec) build() geom.Material {
	return geom.NewMaterial(ms.Color.rgba(), ms.Shininess, ms.Reflectivity, ms.Refraction)
}

func (obj ObjectSpec) triangle(mat geom.Material) (*geom.Triangle, error) {
	if len(obj.Vertices) != 3 {
		return nil, fmt.Errorf("triangle needs 3 vertices, got %d", len(obj.Vertices))
	}
	v := [3]mathutil.Vec3{obj.Vertices[0], obj.Vertices[1], obj.Vertices[2]}
	switch len(obj.Normals) {
	case 0:
		return geom.NewTriangle(v[0], v[1], v[2], mat), nil
	case 3:
		return geom.NewSmoothTriangle(v, [3]mathutil.Vec3{obj.Normals[0], obj.Normals[1], obj.Normals[2]}, mat), nil
	}
	return nil, fmt.Errorf("triangle needs 0 or 3 normals, got %d", len(obj.Normals))
}
