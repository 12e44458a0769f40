package renderer

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/bagraVansh/Ray-Tracing/pkg/core"
	"github.com/bagraVansh/Ray-Tracing/pkg/geometry"
	"github.com/bagraVansh/Ray-Tracing/pkg/scene"
)

// progressInterval is the row spacing between progress log lines
const progressInterval = 50

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	SamplesPerAxis int // Stratified sub-samples per pixel axis (N gives N^2 rays per pixel)
	InitialDepth   int // Depth value primary rays start at
	MaxDepth       int // Depth bound that terminates the reflection recursion
}

// DefaultSamplingConfig returns sensible default values
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		SamplesPerAxis: 2,
		InitialDepth:   2,
		MaxDepth:       3,
	}
}

// MergeSamplingConfig merges override values into a base config.
// Zero-valued override fields keep the base values, and the sample
// count is clamped to at least one per axis.
func MergeSamplingConfig(base, override SamplingConfig) SamplingConfig {
	merged := base
	if override.SamplesPerAxis > 0 {
		merged.SamplesPerAxis = override.SamplesPerAxis
	}
	if override.InitialDepth > 0 {
		merged.InitialDepth = override.InitialDepth
	}
	if override.MaxDepth > 0 {
		merged.MaxDepth = override.MaxDepth
	}
	if merged.SamplesPerAxis < 1 {
		merged.SamplesPerAxis = 1
	}
	return merged
}

// Raytracer renders a scene viewed through a camera
type Raytracer struct {
	scene      *scene.Scene
	camera     *geometry.Camera
	config     SamplingConfig
	logger     core.Logger
	raysTraced atomic.Int64
}

// NewRaytracer creates a raytracer with the default sampling configuration.
// A nil logger falls back to the stdout logger.
func NewRaytracer(sc *scene.Scene, camera *geometry.Camera, logger core.Logger) *Raytracer {
	if logger == nil {
		logger = NewDefaultLogger()
	}
	return &Raytracer{
		scene:  sc,
		camera: camera,
		config: DefaultSamplingConfig(),
		logger: logger,
	}
}

// SetSamplingConfig replaces the sampling configuration
func (rt *Raytracer) SetSamplingConfig(config SamplingConfig) {
	rt.config = config
}

// MergeSamplingConfig merges non-zero override fields into the current configuration
func (rt *Raytracer) MergeSamplingConfig(override SamplingConfig) {
	rt.config = MergeSamplingConfig(rt.config, override)
}

// renderPixel averages the stratified sub-pixel samples for one pixel.
// Sample offsets are fixed, so repeated renders produce identical output.
func (rt *Raytracer) renderPixel(x, y int) (core.Vec3, error) {
	n := rt.config.SamplesPerAxis
	width := float64(rt.camera.Width())
	height := float64(rt.camera.Height())

	total := core.NewVec3(0, 0, 0)
	for sy := 0; sy < n; sy++ {
		for sx := 0; sx < n; sx++ {
			u := (float64(x) + (float64(sx)+0.5)/float64(n)) / width
			v := (float64(y) + (float64(sy)+0.5)/float64(n)) / height

			ray := rt.camera.GetRay(u, v)
			total = total.Add(rt.rayColor(ray, rt.config.InitialDepth, rt.config.MaxDepth))
		}
	}

	return total.Divide(float64(n * n))
}

// renderRow renders one framebuffer row
func (rt *Raytracer) renderRow(fb *Framebuffer, y int) error {
	for x := 0; x < fb.Width; x++ {
		colorVec, err := rt.renderPixel(x, y)
		if err != nil {
			return fmt.Errorf("render pixel (%d,%d): %w", x, y, err)
		}
		r, g, b := colorVec.RGB8()
		fb.SetRGB(x, y, r, g, b)
	}
	return nil
}

// RenderPass renders every pixel serially and returns the framebuffer.
// This is the reference behavior that parallel rendering must reproduce.
func (rt *Raytracer) RenderPass() (*Framebuffer, RenderStats, error) {
	start := time.Now()
	rt.raysTraced.Store(0)

	width, height := rt.camera.Width(), rt.camera.Height()
	fb := NewFramebuffer(width, height)

	for y := 0; y < height; y++ {
		if y%progressInterval == 0 {
			rt.logger.Printf("  Row %d/%d\n", y, height)
		}
		if err := rt.renderRow(fb, y); err != nil {
			return nil, RenderStats{}, err
		}
	}

	n := rt.config.SamplesPerAxis
	stats := RenderStats{
		TotalPixels:  width * height,
		TotalSamples: width * height * n * n,
		RaysTraced:   rt.raysTraced.Load(),
		Workers:      1,
		Elapsed:      time.Since(start),
	}
	return fb, stats, nil
}
