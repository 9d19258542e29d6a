// Package pdf holds the sampling densities used to importance sample scatter directions.
package pdf

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// PDF is a direction distribution that can be both evaluated and sampled
type PDF interface {
	// Value returns the solid-angle density of direction
	Value(direction core.Vec3) float64
	// Generate draws a direction from the distribution
	Generate(sampler core.Sampler) core.Vec3
}

// Target is anything that can be sampled as seen from a point, typically a light.
// Shapes implement it so the integrator can aim rays at them.
type Target interface {
	// PDFValue returns the solid-angle density of hitting the target from origin along direction
	PDFValue(origin, direction core.Vec3) float64
	// Random returns a (not necessarily normalized) direction from origin toward the target
	Random(origin core.Vec3, sampler core.Sampler) core.Vec3
}
