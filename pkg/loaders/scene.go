package loaders

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/bagraVansh/Ray-Tracing/pkg/core"
	"github.com/bagraVansh/Ray-Tracing/pkg/geometry"
	"github.com/bagraVansh/Ray-Tracing/pkg/lights"
	"github.com/bagraVansh/Ray-Tracing/pkg/material"
	"github.com/bagraVansh/Ray-Tracing/pkg/scene"
)

// Vec represents a point, direction or color triple in a scene file
type Vec struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Vec3 converts the file value to a core vector
func (v Vec) Vec3() core.Vec3 {
	return core.NewVec3(v.X, v.Y, v.Z)
}

// CameraSpec mirrors the camera block of a scene file. Zero-valued
// fields fall back to the default camera.
type CameraSpec struct {
	Position Vec     `json:"position"`
	Target   Vec     `json:"target"`
	FOV      float64 `json:"fov"`
	Width    int     `json:"width"`
	Height   int     `json:"height"`
}

// SamplingSpec mirrors the sampling block of a scene file. Fields are
// plain ints so callers can merge them over their own defaults.
type SamplingSpec struct {
	SamplesPerAxis int `json:"samples_per_axis"`
	InitialDepth   int `json:"initial_depth"`
	MaxDepth       int `json:"max_depth"`
}

// MaterialSpec mirrors one entry of the materials list. Optional fields
// are pointers so that an absent value and an explicit zero can be told
// apart when material defaults are applied.
type MaterialSpec struct {
	ID              string   `json:"id"`
	Diffuse         Vec      `json:"diffuse"`
	Specular        *Vec     `json:"specular,omitempty"`
	Ambient         *Vec     `json:"ambient,omitempty"`
	Shininess       *float64 `json:"shininess,omitempty"`
	Reflectivity    float64  `json:"reflectivity,omitempty"`
	Transparency    float64  `json:"transparency,omitempty"`
	RefractiveIndex *float64 `json:"refractive_index,omitempty"`
	Emission        *Vec     `json:"emission,omitempty"`
}

// LightSpec mirrors one entry of the lights list
type LightSpec struct {
	Position  Vec      `json:"position"`
	Color     *Vec     `json:"color,omitempty"`
	Intensity *float64 `json:"intensity,omitempty"`
}

// SphereSpec mirrors one entry of the spheres list
type SphereSpec struct {
	Center   Vec     `json:"center"`
	Radius   float64 `json:"radius"`
	Material string  `json:"material"`
}

// SceneFile contains everything a JSON scene file can describe
type SceneFile struct {
	Name      string         `json:"name"`
	Camera    CameraSpec     `json:"camera"`
	Sampling  SamplingSpec   `json:"sampling"`
	Materials []MaterialSpec `json:"materials"`
	Lights    []LightSpec    `json:"lights"`
	Spheres   []SphereSpec   `json:"spheres"`
}

// defaultCameraConfig is the fallback view for files that omit camera fields
var defaultCameraConfig = geometry.CameraConfig{
	Position: core.NewVec3(0, 0, 0),
	Target:   core.NewVec3(0, 0, 5),
	FOV:      75,
	Width:    1000,
	Height:   800,
}

// ParseScene parses a JSON scene description from a reader
func ParseScene(reader io.Reader) (*SceneFile, error) {
	var file SceneFile
	if err := json.NewDecoder(reader).Decode(&file); err != nil {
		return nil, fmt.Errorf("decode scene: %w", err)
	}
	return &file, nil
}

// LoadScene reads a JSON scene description from disk
func LoadScene(filename string) (*SceneFile, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("open scene: %w", err)
	}
	defer f.Close()
	return ParseScene(f)
}

// Build resolves the file into a renderable scene and camera config.
// Material references are checked, defaults applied, and geometry
// validated; sampling settings stay on the file for the caller.
func (sf *SceneFile) Build(cameraOverrides ...geometry.CameraConfig) (*scene.Scene, geometry.CameraConfig, error) {
	cameraConfig := geometry.MergeCameraConfig(defaultCameraConfig, geometry.CameraConfig{
		Position: sf.Camera.Position.Vec3(),
		Target:   sf.Camera.Target.Vec3(),
		FOV:      sf.Camera.FOV,
		Width:    sf.Camera.Width,
		Height:   sf.Camera.Height,
	})
	if len(cameraOverrides) > 0 {
		cameraConfig = geometry.MergeCameraConfig(cameraConfig, cameraOverrides[0])
	}

	materials := make(map[string]*material.Material, len(sf.Materials))
	for i, spec := range sf.Materials {
		if spec.ID == "" {
			return nil, geometry.CameraConfig{}, fmt.Errorf("material %d has no id", i)
		}
		if _, exists := materials[spec.ID]; exists {
			return nil, geometry.CameraConfig{}, fmt.Errorf("duplicate material id %q", spec.ID)
		}
		materials[spec.ID] = buildMaterial(spec)
	}

	sc := scene.New(nil, nil)
	for i, spec := range sf.Spheres {
		if spec.Radius <= 0 {
			return nil, geometry.CameraConfig{}, fmt.Errorf("sphere %d: radius must be positive, got %g", i, spec.Radius)
		}
		mat, ok := materials[spec.Material]
		if !ok {
			return nil, geometry.CameraConfig{}, fmt.Errorf("sphere %d references unknown material %q", i, spec.Material)
		}
		sc.AddObject(geometry.NewSphere(spec.Center.Vec3(), spec.Radius, mat))
	}

	for _, spec := range sf.Lights {
		color := core.NewVec3(1, 1, 1)
		if spec.Color != nil {
			color = spec.Color.Vec3()
		}
		intensity := 1.0
		if spec.Intensity != nil {
			intensity = *spec.Intensity
		}
		sc.AddLight(lights.New(spec.Position.Vec3(), color, intensity))
	}

	return sc, cameraConfig, nil
}

func buildMaterial(spec MaterialSpec) *material.Material {
	opts := []material.Option{
		material.WithReflectivity(spec.Reflectivity),
		material.WithTransparency(spec.Transparency),
	}
	if spec.Specular != nil {
		opts = append(opts, material.WithSpecular(spec.Specular.Vec3()))
	}
	if spec.Ambient != nil {
		opts = append(opts, material.WithAmbient(spec.Ambient.Vec3()))
	}
	if spec.Shininess != nil {
		opts = append(opts, material.WithShininess(*spec.Shininess))
	}
	if spec.RefractiveIndex != nil {
		opts = append(opts, material.WithRefractiveIndex(*spec.RefractiveIndex))
	}
	if spec.Emission != nil {
		opts = append(opts, material.WithEmission(spec.Emission.Vec3()))
	}
	return material.New(spec.Diffuse.Vec3(), opts...)
}
