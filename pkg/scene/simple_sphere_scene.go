package scene

import (
	"github.com/bagraVansh/Ray-Tracing/pkg/core"
	"github.com/bagraVansh/Ray-Tracing/pkg/geometry"
	"github.com/bagraVansh/Ray-Tracing/pkg/lights"
	"github.com/bagraVansh/Ray-Tracing/pkg/material"
)

// NewSimpleSphereScene creates a single red sphere lit from the camera
// position, useful for sanity checks and timing runs
func NewSimpleSphereScene(cameraOverrides ...geometry.CameraConfig) (*Scene, geometry.CameraConfig) {
	defaultCameraConfig := geometry.CameraConfig{
		Position: core.NewVec3(0, 0, 0),
		Target:   core.NewVec3(0, 0, 5),
		FOV:      90,
		Width:    500,
		Height:   500,
	}

	cameraConfig := defaultCameraConfig
	if len(cameraOverrides) > 0 {
		cameraConfig = geometry.MergeCameraConfig(defaultCameraConfig, cameraOverrides[0])
	}

	red := material.New(core.NewVec3(1, 0, 0),
		material.WithShininess(64),
	)

	s := New(nil, nil)
	s.AddObject(geometry.NewSphere(core.NewVec3(0, 0, 5), 1.0, red))
	s.AddLight(lights.New(core.NewVec3(0, 0, 0), core.NewVec3(1, 1, 1), 1.0))

	return s, cameraConfig
}
