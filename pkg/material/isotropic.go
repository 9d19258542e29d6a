package material

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/pdf"
)

// Isotropic is the phase function of a participating medium: it scatters uniformly in all directions
type Isotropic struct {
	NoEmission
	Albedo ColorSource
}

// NewIsotropic creates an isotropic phase function with a constant albedo
func NewIsotropic(albedo core.Vec3) *Isotropic {
	return &Isotropic{Albedo: NewSolidColor(albedo)}
}

// NewTexturedIsotropic creates an isotropic phase function with a textured albedo
func NewTexturedIsotropic(albedo ColorSource) *Isotropic {
	return &Isotropic{Albedo: albedo}
}

// Scatter picks a uniform direction over the whole sphere
func (i *Isotropic) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	return ScatterResult{
		Scattered:   core.NewRayAtTime(hit.Point, core.RandomUnitVector(sampler.Get2D()), rayIn.Time),
		Attenuation: i.Albedo.Evaluate(hit.UV, hit.Point),
		PDF:         1.0 / (4.0 * math.Pi),
		Sampler:     pdf.NewSpherePDF(),
	}, true
}

// ScatteringPDF returns 1/(4π) for every direction
func (i *Isotropic) ScatteringPDF(rayIn core.Ray, hit HitRecord, scattered core.Ray) float64 {
	return 1.0 / (4.0 * math.Pi)
}
