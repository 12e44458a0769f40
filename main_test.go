package main

import (
	"testing"

	"github.com/bagraVansh/Ray-Tracing/pkg/geometry"
)

func TestCreateScene(t *testing.T) {
	tests := []struct {
		name        string
		sceneType   string
		expectError bool
	}{
		// Built-in scenes
		{"default scene", "default", false},
		{"simple sphere scene", "simple-sphere", false},
		{"mirror scene", "mirror", false},

		// JSON scenes by path
		{"three spheres JSON", "scenes/three-spheres.json", false},
		{"mirror hall JSON", "scenes/mirror-hall.json", false},

		// Invalid scenes
		{"unknown scene", "nonexistent", true},
		{"missing JSON path", "scenes/nonexistent.json", true},
		{"empty scene name", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sc, cameraConfig, _, err := createScene(tt.sceneType)

			if tt.expectError {
				if err == nil {
					t.Errorf("Expected error for scene type '%s', but got none", tt.sceneType)
				}
				return
			}

			if err != nil {
				t.Fatalf("Unexpected error for scene type '%s': %v", tt.sceneType, err)
			}
			if sc == nil {
				t.Fatalf("Expected scene for valid scene type '%s', got nil", tt.sceneType)
			}
			if cameraConfig.Width <= 0 || cameraConfig.Height <= 0 {
				t.Errorf("Camera dimensions should be positive, got %dx%d", cameraConfig.Width, cameraConfig.Height)
			}
			if cameraConfig.FOV <= 0 {
				t.Errorf("Camera FOV should be positive, got %g", cameraConfig.FOV)
			}
		})
	}
}

func TestCreateScene_CameraOverrides(t *testing.T) {
	_, cameraConfig, _, err := createScene("default", geometry.CameraConfig{Width: 64, Height: 48})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if cameraConfig.Width != 64 || cameraConfig.Height != 48 {
		t.Errorf("Expected 64x48 override, got %dx%d", cameraConfig.Width, cameraConfig.Height)
	}
}

func TestCreateScene_JSONSampling(t *testing.T) {
	_, _, sampling, err := createScene("scenes/three-spheres.json")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if sampling.SamplesPerAxis != 2 {
		t.Errorf("Expected 2 samples per axis from file, got %d", sampling.SamplesPerAxis)
	}
	if sampling.MaxDepth != 3 {
		t.Errorf("Expected max depth 3 from file, got %d", sampling.MaxDepth)
	}
}

func TestSceneDirName(t *testing.T) {
	tests := []struct {
		name      string
		sceneType string
		expected  string
	}{
		{"built-in name", "default", "default"},
		{"JSON path", "scenes/three-spheres.json", "three-spheres"},
		{"bare JSON file", "mirror-hall.json", "mirror-hall"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sceneDirName(tt.sceneType); got != tt.expected {
				t.Errorf("sceneDirName(%q) = %q, want %q", tt.sceneType, got, tt.expected)
			}
		})
	}
}
