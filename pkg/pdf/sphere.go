package pdf

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// SpherePDF is the uniform distribution over all directions
type SpherePDF struct{}

// NewSpherePDF creates a uniform sphere distribution
func NewSpherePDF() SpherePDF {
	return SpherePDF{}
}

// Value returns 1/(4π) for every direction
func (SpherePDF) Value(direction core.Vec3) float64 {
	return 1.0 / (4.0 * math.Pi)
}

// Generate draws a uniform unit direction
func (SpherePDF) Generate(sampler core.Sampler) core.Vec3 {
	return core.RandomUnitVector(sampler.Get2D())
}
