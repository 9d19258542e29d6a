package pdf

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// CosinePDF is a cosine-weighted hemisphere around a surface normal
type CosinePDF struct {
	uvw core.ONB
}

// NewCosinePDF creates a cosine distribution around normal
func NewCosinePDF(normal core.Vec3) *CosinePDF {
	return &CosinePDF{uvw: core.NewONB(normal)}
}

// Value returns cos(theta)/π, or zero below the surface
func (p *CosinePDF) Value(direction core.Vec3) float64 {
	cosine := direction.Normalize().Dot(p.uvw.W())
	return math.Max(0, cosine/math.Pi)
}

// Generate draws a cosine-weighted direction in world space
func (p *CosinePDF) Generate(sampler core.Sampler) core.Vec3 {
	return p.uvw.Transform(core.RandomCosineDirection(sampler.Get2D()))
}
