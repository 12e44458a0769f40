package scene

import (
	"github.com/bagraVansh/Ray-Tracing/pkg/core"
	"github.com/bagraVansh/Ray-Tracing/pkg/geometry"
	"github.com/bagraVansh/Ray-Tracing/pkg/lights"
	"github.com/bagraVansh/Ray-Tracing/pkg/material"
)

// NewMirrorScene creates two facing chrome spheres around a small red one,
// so the bounce limit is visible in the nested inter-reflections
func NewMirrorScene(cameraOverrides ...geometry.CameraConfig) (*Scene, geometry.CameraConfig) {
	defaultCameraConfig := geometry.CameraConfig{
		Position: core.NewVec3(0, 0.5, 0),
		Target:   core.NewVec3(0, 0, 5),
		FOV:      60,
		Width:    800,
		Height:   600,
	}

	cameraConfig := defaultCameraConfig
	if len(cameraOverrides) > 0 {
		cameraConfig = geometry.MergeCameraConfig(defaultCameraConfig, cameraOverrides[0])
	}

	chrome := material.New(core.NewVec3(0.7, 0.7, 0.7),
		material.WithShininess(256),
		material.WithReflectivity(0.9),
	)
	red := material.New(core.NewVec3(1, 0.1, 0.1),
		material.WithShininess(64),
		material.WithReflectivity(0.05),
	)

	s := New(nil, nil)

	s.AddObject(geometry.NewSphere(core.NewVec3(-1.2, 0, 5), 1.0, chrome))
	s.AddObject(geometry.NewSphere(core.NewVec3(1.2, 0, 5), 1.0, chrome))
	s.AddObject(geometry.NewSphere(core.NewVec3(0, -0.3, 3.5), 0.4, red))

	s.AddLight(lights.New(core.NewVec3(0, 6, 2), core.NewVec3(1, 1, 1), 1.0))
	s.AddLight(lights.New(core.NewVec3(-3, 2, 0), core.NewVec3(0.8, 0.8, 1), 0.5))

	return s, cameraConfig
}
