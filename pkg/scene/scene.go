package scene

import (
	"github.com/bagraVansh/Ray-Tracing/pkg/core"
	"github.com/bagraVansh/Ray-Tracing/pkg/geometry"
	"github.com/bagraVansh/Ray-Tracing/pkg/lights"
)

// Scene contains the lights and objects to render
type Scene struct {
	Lights  []*lights.Light
	Objects []*geometry.Sphere
}

// Hit describes the nearest intersection along a ray
type Hit struct {
	Point  core.Vec3
	T      float64
	Object *geometry.Sphere
}

// New creates a scene from lights and objects
func New(sceneLights []*lights.Light, objects []*geometry.Sphere) *Scene {
	return &Scene{Lights: sceneLights, Objects: objects}
}

// AddObject appends a sphere to the scene.
// Scenes must not be mutated once rendering has started.
func (s *Scene) AddObject(obj *geometry.Sphere) {
	s.Objects = append(s.Objects, obj)
}

// AddLight appends a light to the scene
func (s *Scene) AddLight(light *lights.Light) {
	s.Lights = append(s.Lights, light)
}

// Hit returns the nearest intersection of the ray with the scene objects
func (s *Scene) Hit(ray core.Ray) (Hit, bool) {
	var nearest Hit
	found := false

	for _, obj := range s.Objects {
		t, ok := obj.Intersect(ray)
		if !ok {
			continue
		}
		if !found || t < nearest.T {
			nearest = Hit{Point: ray.At(t), T: t, Object: obj}
			found = true
		}
	}

	return nearest, found
}
