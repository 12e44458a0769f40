package geometry

import (
	"math"

	"github.com/bagraVansh/Ray-Tracing/pkg/core"
)

// CameraConfig describes a pinhole camera and the image it renders
type CameraConfig struct {
	Position core.Vec3
	Target   core.Vec3
	FOV      float64 // field of view in degrees
	Width    int     // image width in pixels
	Height   int     // image height in pixels
}

// MergeCameraConfig merges override values into a base config.
// Zero-valued override fields keep the base values.
func MergeCameraConfig(base, override CameraConfig) CameraConfig {
	merged := base
	if override.Position != (core.Vec3{}) {
		merged.Position = override.Position
	}
	if override.Target != (core.Vec3{}) {
		merged.Target = override.Target
	}
	if override.FOV > 0 {
		merged.FOV = override.FOV
	}
	if override.Width > 0 {
		merged.Width = override.Width
	}
	if override.Height > 0 {
		merged.Height = override.Height
	}
	return merged
}

// Camera generates primary rays through a virtual screen one unit in front
// of the camera position
type Camera struct {
	config       CameraConfig
	forward      core.Vec3
	right        core.Vec3
	up           core.Vec3
	screenWidth  float64
	screenHeight float64
}

// NewCamera builds the view basis and screen dimensions from a config
func NewCamera(config CameraConfig) *Camera {
	forward := config.Target.Subtract(config.Position).Normalize()

	// World up switches to the Z axis when the view direction is nearly vertical
	right := core.NewVec3(0, 1, 0).Cross(forward)
	if right.Length() < 0.001 {
		right = core.NewVec3(0, 0, 1).Cross(forward)
	}
	right = right.Normalize()
	up := forward.Cross(right).Normalize()

	aspectRatio := float64(config.Width) / float64(config.Height)
	screenWidth := 2 * math.Tan(config.FOV*math.Pi/180/2)
	screenHeight := screenWidth / aspectRatio

	return &Camera{
		config:       config,
		forward:      forward,
		right:        right,
		up:           up,
		screenWidth:  screenWidth,
		screenHeight: screenHeight,
	}
}

// GetRay generates the ray through normalized screen coordinates (u, v)
// where 0 <= u,v <= 1 and (0, 0) is the top-left corner of the image
func (c *Camera) GetRay(u, v float64) core.Ray {
	screenX := (2*u - 1) * c.screenWidth / 2
	screenY := (1 - 2*v) * c.screenHeight / 2

	direction := c.right.Multiply(screenX).
		Add(c.up.Multiply(screenY)).
		Add(c.forward).
		Normalize()

	return core.NewRay(c.config.Position, direction)
}

// Forward returns the camera view direction
func (c *Camera) Forward() core.Vec3 {
	return c.forward
}

// Width returns the image width in pixels
func (c *Camera) Width() int {
	return c.config.Width
}

// Height returns the image height in pixels
func (c *Camera) Height() int {
	return c.config.Height
}
