package pdf

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// HittablePDF samples directions toward a Target as seen from a fixed origin
type HittablePDF struct {
	target Target
	origin core.Vec3
}

// NewHittablePDF creates a distribution aimed at target from origin
func NewHittablePDF(target Target, origin core.Vec3) *HittablePDF {
	return &HittablePDF{target: target, origin: origin}
}

// Value delegates to the target's solid-angle density
func (p *HittablePDF) Value(direction core.Vec3) float64 {
	return p.target.PDFValue(p.origin, direction)
}

// Generate returns a direction from the origin toward the target
func (p *HittablePDF) Generate(sampler core.Sampler) core.Vec3 {
	return p.target.Random(p.origin, sampler)
}
