package loaders

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bagraVansh/Ray-Tracing/pkg/core"
	"github.com/bagraVansh/Ray-Tracing/pkg/geometry"
)

const testSceneJSON = `{
  "name": "two spheres",
  "camera": {
    "position": {"x": 0, "y": 1, "z": 0},
    "target": {"x": 0, "y": 0, "z": 5},
    "fov": 60,
    "width": 320,
    "height": 240
  },
  "sampling": {"samples_per_axis": 3, "initial_depth": 0, "max_depth": 4},
  "materials": [
    {"id": "red", "diffuse": {"x": 1}, "shininess": 64, "reflectivity": 0.05},
    {"id": "chrome", "diffuse": {"x": 0.6, "y": 0.6, "z": 0.6},
     "specular": {"x": 1, "y": 1, "z": 1}, "shininess": 256, "reflectivity": 0.9}
  ],
  "lights": [
    {"position": {"x": 5, "y": 5, "z": -2}, "color": {"x": 1, "y": 1, "z": 1}, "intensity": 1.2},
    {"position": {"x": 0, "y": 3, "z": 0}}
  ],
  "spheres": [
    {"center": {"x": 0, "y": 0, "z": 6}, "radius": 1, "material": "red"},
    {"center": {"x": 1.8, "y": -0.5, "z": 5}, "radius": 0.7, "material": "chrome"}
  ]
}`

func TestParseScene(t *testing.T) {
	file, err := ParseScene(strings.NewReader(testSceneJSON))
	if err != nil {
		t.Fatalf("ParseScene() error = %v", err)
	}

	if file.Name != "two spheres" {
		t.Errorf("Expected name %q, got %q", "two spheres", file.Name)
	}
	if file.Camera.FOV != 60 || file.Camera.Width != 320 || file.Camera.Height != 240 {
		t.Errorf("Unexpected camera block: %+v", file.Camera)
	}
	if file.Sampling.SamplesPerAxis != 3 || file.Sampling.InitialDepth != 0 || file.Sampling.MaxDepth != 4 {
		t.Errorf("Unexpected sampling block: %+v", file.Sampling)
	}
	if len(file.Materials) != 2 || len(file.Lights) != 2 || len(file.Spheres) != 2 {
		t.Fatalf("Expected 2 of each list, got %d materials, %d lights, %d spheres",
			len(file.Materials), len(file.Lights), len(file.Spheres))
	}

	red := file.Materials[0]
	if red.Specular != nil {
		t.Error("Expected absent specular to stay nil")
	}
	if red.Shininess == nil || *red.Shininess != 64 {
		t.Errorf("Expected shininess 64, got %v", red.Shininess)
	}
	if file.Lights[1].Color != nil || file.Lights[1].Intensity != nil {
		t.Error("Expected absent light fields to stay nil")
	}
}

func TestParseScene_InvalidJSON(t *testing.T) {
	_, err := ParseScene(strings.NewReader("{not json"))
	if err == nil {
		t.Fatal("Expected an error for malformed JSON")
	}
}

func TestLoadScene(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.json")
	if err := os.WriteFile(path, []byte(testSceneJSON), 0o644); err != nil {
		t.Fatalf("Failed to write fixture: %v", err)
	}

	file, err := LoadScene(path)
	if err != nil {
		t.Fatalf("LoadScene() error = %v", err)
	}
	if len(file.Spheres) != 2 {
		t.Errorf("Expected 2 spheres, got %d", len(file.Spheres))
	}
}

func TestLoadScene_MissingFile(t *testing.T) {
	_, err := LoadScene(filepath.Join(t.TempDir(), "absent.json"))
	if err == nil {
		t.Fatal("Expected an error for a missing file")
	}
}

func TestSceneFile_Build(t *testing.T) {
	file, err := ParseScene(strings.NewReader(testSceneJSON))
	if err != nil {
		t.Fatalf("ParseScene() error = %v", err)
	}

	sc, cameraConfig, err := file.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if len(sc.Objects) != 2 {
		t.Fatalf("Expected 2 objects, got %d", len(sc.Objects))
	}
	if len(sc.Lights) != 2 {
		t.Fatalf("Expected 2 lights, got %d", len(sc.Lights))
	}

	if cameraConfig.FOV != 60 || cameraConfig.Width != 320 || cameraConfig.Height != 240 {
		t.Errorf("Unexpected camera config: %+v", cameraConfig)
	}
	if cameraConfig.Position != core.NewVec3(0, 1, 0) {
		t.Errorf("Expected camera position (0,1,0), got %v", cameraConfig.Position)
	}

	red := sc.Objects[0].Material
	if red.DiffuseColor != core.NewVec3(1, 0, 0) {
		t.Errorf("Expected red diffuse, got %v", red.DiffuseColor)
	}
	// Absent specular falls back to white
	if red.SpecularColor != core.NewVec3(1, 1, 1) {
		t.Errorf("Expected default white specular, got %v", red.SpecularColor)
	}
	if red.Shininess != 64 || red.Reflectivity != 0.05 {
		t.Errorf("Unexpected red material: %+v", red)
	}

	chrome := sc.Objects[1].Material
	if chrome.Shininess != 256 || chrome.Reflectivity != 0.9 {
		t.Errorf("Unexpected chrome material: %+v", chrome)
	}

	// Bare light picks up white color and unit intensity
	second := sc.Lights[1]
	if second.Color != core.NewVec3(1, 1, 1) {
		t.Errorf("Expected white light, got %v", second.Color)
	}
	if second.Intensity != 1 {
		t.Errorf("Expected intensity 1, got %g", second.Intensity)
	}
}

func TestSceneFile_Build_EmptyFileUsesDefaults(t *testing.T) {
	file, err := ParseScene(strings.NewReader("{}"))
	if err != nil {
		t.Fatalf("ParseScene() error = %v", err)
	}

	sc, cameraConfig, err := file.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if len(sc.Objects) != 0 || len(sc.Lights) != 0 {
		t.Errorf("Expected an empty scene, got %d objects, %d lights", len(sc.Objects), len(sc.Lights))
	}
	if cameraConfig != defaultCameraConfig {
		t.Errorf("Expected default camera config, got %+v", cameraConfig)
	}
}

func TestSceneFile_Build_CameraOverrides(t *testing.T) {
	file, err := ParseScene(strings.NewReader(testSceneJSON))
	if err != nil {
		t.Fatalf("ParseScene() error = %v", err)
	}

	_, cameraConfig, err := file.Build(geometry.CameraConfig{Width: 64, Height: 48})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if cameraConfig.Width != 64 || cameraConfig.Height != 48 {
		t.Errorf("Expected override dimensions 64x48, got %dx%d", cameraConfig.Width, cameraConfig.Height)
	}
	// Fields the override leaves zero keep the file values
	if cameraConfig.FOV != 60 {
		t.Errorf("Expected file FOV 60, got %g", cameraConfig.FOV)
	}
}

func TestSceneFile_Build_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errPart string
	}{
		{
			name: "unknown material reference",
			content: `{"materials": [{"id": "red", "diffuse": {"x": 1}}],
			           "spheres": [{"center": {"z": 5}, "radius": 1, "material": "blue"}]}`,
			errPart: "unknown material",
		},
		{
			name: "duplicate material id",
			content: `{"materials": [{"id": "red", "diffuse": {"x": 1}},
			                         {"id": "red", "diffuse": {"y": 1}}]}`,
			errPart: "duplicate material",
		},
		{
			name:    "missing material id",
			content: `{"materials": [{"diffuse": {"x": 1}}]}`,
			errPart: "no id",
		},
		{
			name: "non-positive radius",
			content: `{"materials": [{"id": "red", "diffuse": {"x": 1}}],
			           "spheres": [{"center": {"z": 5}, "radius": 0, "material": "red"}]}`,
			errPart: "radius",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			file, err := ParseScene(strings.NewReader(tt.content))
			if err != nil {
				t.Fatalf("ParseScene() error = %v", err)
			}

			_, _, err = file.Build()
			if err == nil {
				t.Fatal("Expected Build() to fail")
			}
			if !strings.Contains(err.Error(), tt.errPart) {
				t.Errorf("Expected error mentioning %q, got %v", tt.errPart, err)
			}
		})
	}
}
