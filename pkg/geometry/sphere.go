package geometry

import (
	"math"

	"github.com/bagraVansh/Ray-Tracing/pkg/core"
	"github.com/bagraVansh/Ray-Tracing/pkg/material"
)

// hitEpsilon is the smallest ray parameter accepted as a hit, rejecting
// intersections at or just behind the ray origin.
const hitEpsilon = 0.001

// Sphere represents a sphere shape
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material *material.Material
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, mat *material.Material) *Sphere {
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Material: mat,
	}
}

// Intersect returns the nearest ray parameter at which the ray hits the
// sphere. Roots at or below hitEpsilon are rejected.
func (s *Sphere) Intersect(ray core.Ray) (float64, bool) {
	// Quadratic equation coefficients: at² + bt + c = 0
	oc := ray.Origin.Subtract(s.Center)
	a := ray.Direction.Dot(ray.Direction)
	halfB := oc.Dot(ray.Direction)
	c := oc.LengthSquared() - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return 0, false
	}

	sqrtD := math.Sqrt(discriminant)

	// Try the closer root first; the farther one covers a ray origin
	// inside or on the sphere
	root := (-halfB - sqrtD) / a
	if root <= hitEpsilon {
		root = (-halfB + sqrtD) / a
		if root <= hitEpsilon {
			return 0, false
		}
	}

	return root, true
}

// NormalAt returns the outward unit normal at a point on the sphere surface
func (s *Sphere) NormalAt(point core.Vec3) core.Vec3 {
	return point.Subtract(s.Center).Normalize()
}
