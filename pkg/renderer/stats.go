package renderer

import (
	"fmt"
	"time"

	"github.com/bagraVansh/Ray-Tracing/pkg/core"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels  int           // Number of pixels rendered
	TotalSamples int           // Primary samples taken (pixels x samples per pixel)
	RaysTraced   int64         // Rays traced, including reflection bounces
	Workers      int           // Workers used for the render
	Elapsed      time.Duration // Wall-clock render time
}

// DefaultLogger implements core.Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}
