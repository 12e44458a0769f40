package renderer

import (
	"math"

	"github.com/bagraVansh/Ray-Tracing/pkg/core"
)

// reflectionBias offsets reflection ray origins along the surface normal so
// a bounced ray cannot immediately re-hit the surface it left
const reflectionBias = 0.01

var (
	backgroundTop    = core.NewVec3(0.5, 0.7, 1.0)
	backgroundBottom = core.NewVec3(1, 1, 1)
)

// backgroundGradient returns the sky color for a ray that leaves the scene.
// Direction Y is used as supplied; camera rays are unit length.
func (rt *Raytracer) backgroundGradient(ray core.Ray) core.Vec3 {
	t := 0.5 * (ray.Direction.Y + 1)
	return backgroundBottom.Multiply(1 - t).Add(backgroundTop.Multiply(t))
}

// rayColor returns the color seen along a ray, recursing into mirror
// reflections until depth reaches maxDepth
func (rt *Raytracer) rayColor(ray core.Ray, depth, maxDepth int) core.Vec3 {
	rt.raysTraced.Add(1)

	if depth >= maxDepth {
		return rt.backgroundGradient(ray)
	}

	hit, ok := rt.scene.Hit(ray)
	if !ok {
		return rt.backgroundGradient(ray)
	}

	mat := hit.Object.Material
	normal := hit.Object.NormalAt(hit.Point)
	viewDir := ray.Direction.Normalize().Negate()

	// Lights are accumulated without occlusion tests, so every light
	// reaches every surface point
	color := core.NewVec3(0, 0, 0)
	for _, light := range rt.scene.Lights {
		lightDir := light.Position.Subtract(hit.Point).Normalize()

		diffuseIntensity := math.Max(normal.Dot(lightDir), 0)
		diffuse := mat.DiffuseColor.MultiplyVec(light.Color).Multiply(diffuseIntensity)

		// Highlight follows the view reflection, independent of the light direction
		reflectDir := viewDir.Negate().Reflect(normal)
		specularIntensity := math.Pow(math.Max(reflectDir.Dot(viewDir), 0), mat.Shininess)
		specular := mat.SpecularColor.MultiplyVec(light.Color).Multiply(specularIntensity)

		color = color.Add(diffuse).Add(specular)
	}

	if mat.Reflectivity > 0 {
		origin := hit.Point.Add(normal.Multiply(reflectionBias))
		reflected := rt.rayColor(core.NewRay(origin, ray.Direction.Reflect(normal)), depth+1, maxDepth)
		color = color.Multiply(1 - mat.Reflectivity).Add(reflected.Multiply(mat.Reflectivity))
	}

	return color
}
