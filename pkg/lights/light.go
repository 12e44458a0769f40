package lights

import "github.com/bagraVansh/Ray-Tracing/pkg/core"

// Light is a point light source.
// Intensity is carried for scene files; the shading formula does not scale by it.
type Light struct {
	Position  core.Vec3
	Color     core.Vec3
	Intensity float64
}

// New creates a point light
func New(position, color core.Vec3, intensity float64) *Light {
	return &Light{Position: position, Color: color, Intensity: intensity}
}
