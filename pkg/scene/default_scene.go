package scene

import (
	"github.com/bagraVansh/Ray-Tracing/pkg/core"
	"github.com/bagraVansh/Ray-Tracing/pkg/geometry"
	"github.com/bagraVansh/Ray-Tracing/pkg/lights"
	"github.com/bagraVansh/Ray-Tracing/pkg/material"
)

// NewDefaultScene creates the showcase scene: three spheres of plastic,
// glass and chrome over the sky gradient, lit by three point lights
func NewDefaultScene(cameraOverrides ...geometry.CameraConfig) (*Scene, geometry.CameraConfig) {
	defaultCameraConfig := geometry.CameraConfig{
		Position: core.NewVec3(0, 0, 0),
		Target:   core.NewVec3(0, 0, 5),
		FOV:      75,
		Width:    1000,
		Height:   800,
	}

	// Apply any overrides using the reusable merge function
	cameraConfig := defaultCameraConfig
	if len(cameraOverrides) > 0 {
		cameraConfig = geometry.MergeCameraConfig(defaultCameraConfig, cameraOverrides[0])
	}

	// Create materials
	plasticRed := material.New(core.NewVec3(1, 0, 0),
		material.WithSpecular(core.NewVec3(1, 1, 1)),
		material.WithShininess(64),
		material.WithReflectivity(0.05),
	)
	glassBlue := material.New(core.NewVec3(0.1, 0.2, 0.9),
		material.WithShininess(128),
		material.WithReflectivity(0.1),
		material.WithTransparency(0.9),
		material.WithRefractiveIndex(1.52),
	)
	chromeSilver := material.New(core.NewVec3(0.6, 0.6, 0.6),
		material.WithShininess(256),
		material.WithReflectivity(0.9),
	)

	s := New(nil, nil)

	s.AddObject(geometry.NewSphere(core.NewVec3(0, 0, 6), 1.0, glassBlue))
	s.AddObject(geometry.NewSphere(core.NewVec3(-1.8, -0.5, 4.5), 0.7, plasticRed))
	s.AddObject(geometry.NewSphere(core.NewVec3(1.8, -0.5, 5), 0.7, chromeSilver))

	s.AddLight(lights.New(core.NewVec3(5, 5, -2), core.NewVec3(1, 1, 1), 1.2))
	s.AddLight(lights.New(core.NewVec3(-4, 2, -1), core.NewVec3(0.6, 0.6, 1), 0.5))
	s.AddLight(lights.New(core.NewVec3(0, 5, 10), core.NewVec3(1, 1, 1), 0.3))

	return s, cameraConfig
}
