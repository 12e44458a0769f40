package material

import "github.com/bagraVansh/Ray-Tracing/pkg/core"

// Material holds the Phong shading parameters for a surface
type Material struct {
	DiffuseColor    core.Vec3
	SpecularColor   core.Vec3
	AmbientColor    core.Vec3
	Shininess       float64
	Reflectivity    float64 // mirror blend weight in [0, 1]
	Transparency    float64 // carried for scene files, not used by shading
	RefractiveIndex float64 // carried for scene files, not used by shading
	EmissionColor   core.Vec3
}

// Option configures a material created by New
type Option func(*Material)

// New creates a material with the given diffuse color and defaults applied.
// The ambient color defaults to a copy of the diffuse color.
func New(diffuse core.Vec3, opts ...Option) *Material {
	m := &Material{
		DiffuseColor:    diffuse,
		SpecularColor:   core.NewVec3(1, 1, 1),
		AmbientColor:    diffuse,
		Shininess:       32,
		Reflectivity:    0,
		Transparency:    0,
		RefractiveIndex: 1,
		EmissionColor:   core.NewVec3(0, 0, 0),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// WithSpecular sets the specular color
func WithSpecular(color core.Vec3) Option {
	return func(m *Material) { m.SpecularColor = color }
}

// WithAmbient sets the ambient color
func WithAmbient(color core.Vec3) Option {
	return func(m *Material) { m.AmbientColor = color }
}

// WithShininess sets the specular exponent
func WithShininess(shininess float64) Option {
	return func(m *Material) { m.Shininess = shininess }
}

// WithReflectivity sets the mirror blend weight
func WithReflectivity(reflectivity float64) Option {
	return func(m *Material) { m.Reflectivity = reflectivity }
}

// WithTransparency sets the transparency value
func WithTransparency(transparency float64) Option {
	return func(m *Material) { m.Transparency = transparency }
}

// WithRefractiveIndex sets the index of refraction
func WithRefractiveIndex(ior float64) Option {
	return func(m *Material) { m.RefractiveIndex = ior }
}

// WithEmission sets the emission color
func WithEmission(color core.Vec3) Option {
	return func(m *Material) { m.EmissionColor = color }
}
