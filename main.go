package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image/png"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/bagraVansh/Ray-Tracing/pkg/geometry"
	"github.com/bagraVansh/Ray-Tracing/pkg/loaders"
	"github.com/bagraVansh/Ray-Tracing/pkg/renderer"
	"github.com/bagraVansh/Ray-Tracing/pkg/scene"
)

func main() {
	// Parse command line flags
	sceneType := flag.String("scene", "default", "Scene: 'default', 'simple-sphere', 'mirror', or a path to a .json scene file")
	width := flag.Int("width", 0, "Image width in pixels (0 = scene default)")
	height := flag.Int("height", 0, "Image height in pixels (0 = scene default)")
	samples := flag.Int("samples", 0, "Samples per pixel axis (0 = scene default)")
	depth := flag.Int("depth", 0, "Maximum recursion depth (0 = scene default)")
	workers := flag.Int("workers", 0, "Worker goroutines (0 = all CPUs, 1 = serial)")
	scale := flag.Int("scale", 1, "Integer upscale factor for the output PNG")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	// Show help if requested
	if *help {
		fmt.Println("Whitted Raytracer")
		fmt.Println("Usage: raytracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Available scenes:")
		fmt.Println("  default       - Three spheres (matte, glass-like, mirror) with colored lights")
		fmt.Println("  simple-sphere - Single red sphere with a headlamp light")
		fmt.Println("  mirror        - Facing mirror spheres with a small red sphere between")
		fmt.Println("  <file>.json   - Scene loaded from a JSON description")
		fmt.Println()
		fmt.Println("Output will be saved to output/<scene>/render_<timestamp>.png")
		return
	}

	fmt.Println("Starting raytracer...")

	// Create scene based on command line argument
	overrides := geometry.CameraConfig{Width: *width, Height: *height}
	selectedScene, cameraConfig, sampling, err := createScene(*sceneType, overrides)
	if err != nil {
		fmt.Printf("Error creating scene: %v\n", err)
		return
	}
	fmt.Printf("Using %s scene (%dx%d)...\n", *sceneType, cameraConfig.Width, cameraConfig.Height)

	// Create output directory for this scene
	outputDir := filepath.Join("output", sceneDirName(*sceneType))
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		fmt.Printf("Error creating output directory: %v\n", err)
		return
	}

	// Create raytracer; file sampling first, then flag overrides
	camera := geometry.NewCamera(cameraConfig)
	raytracer := renderer.NewRaytracer(selectedScene, camera, nil)
	raytracer.MergeSamplingConfig(renderer.SamplingConfig{
		SamplesPerAxis: sampling.SamplesPerAxis,
		InitialDepth:   sampling.InitialDepth,
		MaxDepth:       sampling.MaxDepth,
	})
	raytracer.MergeSamplingConfig(renderer.SamplingConfig{
		SamplesPerAxis: *samples,
		MaxDepth:       *depth,
	})

	// Ctrl-C cancels a parallel render
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var fb *renderer.Framebuffer
	var stats renderer.RenderStats
	if *workers == 1 {
		fb, stats, err = raytracer.RenderPass()
	} else {
		fb, stats, err = raytracer.RenderParallel(ctx, renderer.RenderOptions{Workers: *workers})
	}
	if err != nil {
		if errors.Is(err, context.Canceled) {
			fmt.Println("Render cancelled")
			return
		}
		fmt.Printf("Render failed: %v\n", err)
		return
	}

	fmt.Printf("Render completed in %v using %d workers\n", stats.Elapsed, stats.Workers)
	fmt.Printf("Traced %d rays for %d samples across %d pixels\n",
		stats.RaysTraced, stats.TotalSamples, stats.TotalPixels)

	// Create timestamped filename
	timestamp := time.Now().Format("20060102_150405")
	filename := filepath.Join(outputDir, fmt.Sprintf("render_%s.png", timestamp))

	file, err := os.Create(filename)
	if err != nil {
		fmt.Printf("Error creating file: %v\n", err)
		return
	}
	defer file.Close()

	if err := png.Encode(file, fb.ScaledRGBA(*scale)); err != nil {
		fmt.Printf("Error saving PNG: %v\n", err)
		return
	}

	fmt.Printf("Render saved as %s\n", filename)
}

// createScene builds the scene, camera config and file sampling settings
// for a preset name or a JSON scene path.
func createScene(name string, cameraOverrides ...geometry.CameraConfig) (*scene.Scene, geometry.CameraConfig, loaders.SamplingSpec, error) {
	if strings.HasSuffix(name, ".json") {
		file, err := loaders.LoadScene(name)
		if err != nil {
			return nil, geometry.CameraConfig{}, loaders.SamplingSpec{}, err
		}
		sc, cameraConfig, err := file.Build(cameraOverrides...)
		if err != nil {
			return nil, geometry.CameraConfig{}, loaders.SamplingSpec{}, err
		}
		return sc, cameraConfig, file.Sampling, nil
	}

	switch name {
	case "default":
		sc, cameraConfig := scene.NewDefaultScene(cameraOverrides...)
		return sc, cameraConfig, loaders.SamplingSpec{}, nil
	case "simple-sphere":
		sc, cameraConfig := scene.NewSimpleSphereScene(cameraOverrides...)
		return sc, cameraConfig, loaders.SamplingSpec{}, nil
	case "mirror":
		sc, cameraConfig := scene.NewMirrorScene(cameraOverrides...)
		return sc, cameraConfig, loaders.SamplingSpec{}, nil
	default:
		return nil, geometry.CameraConfig{}, loaders.SamplingSpec{}, fmt.Errorf("unknown scene: %s", name)
	}
}

// sceneDirName maps the scene argument to an output directory name
func sceneDirName(name string) string {
	if strings.HasSuffix(name, ".json") {
		return strings.TrimSuffix(filepath.Base(name), ".json")
	}
	return name
}
