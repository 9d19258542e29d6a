package material

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/pdf"
)

// Lambertian represents a perfectly diffuse material
type Lambertian struct {
	NoEmission
	Albedo ColorSource // Base color/reflectance (can be solid or textured)
}

// NewLambertian creates a new lambertian material with solid color
func NewLambertian(albedo core.Vec3) *Lambertian {
	return &Lambertian{Albedo: NewSolidColor(albedo)}
}

// NewTexturedLambertian creates a new lambertian material with texture
func NewTexturedLambertian(albedoTexture ColorSource) *Lambertian {
	return &Lambertian{Albedo: albedoTexture}
}

// Scatter implements the Material interface for lambertian scattering
func (l *Lambertian) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	// Generate cosine-weighted random direction in hemisphere around normal
	uvw := core.NewONB(hit.Normal)
	scatterDirection := uvw.Transform(core.RandomCosineDirection(sampler.Get2D()))
	scattered := core.NewRayAtTime(hit.Point, scatterDirection, rayIn.Time)

	return ScatterResult{
		Scattered:   scattered,
		Attenuation: l.Albedo.Evaluate(hit.UV, hit.Point),
		PDF:         uvw.W().Dot(scatterDirection) / math.Pi,
		Sampler:     pdf.NewCosinePDF(hit.Normal),
	}, true
}

// ScatteringPDF returns cos(θ)/π, zero below the surface
func (l *Lambertian) ScatteringPDF(rayIn core.Ray, hit HitRecord, scattered core.Ray) float64 {
	cosTheta := hit.Normal.Dot(scattered.Direction.Normalize())
	if cosTheta < 0 {
		return 0
	}
	return cosTheta / math.Pi
}
