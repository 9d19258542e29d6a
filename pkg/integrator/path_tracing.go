package integrator

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/pdf"
)

// hitInterval rejects hits closer than 0.001 to avoid shadow acne
var hitInterval = core.NewInterval(0.001, math.Inf(1))

// PathTracingIntegrator implements unidirectional path tracing
type PathTracingIntegrator struct {
	MaxDepth int // Maximum number of bounces; paths past it contribute nothing more
}

// NewPathTracingIntegrator creates a new path tracing integrator
func NewPathTracingIntegrator(maxDepth int) *PathTracingIntegrator {
	return &PathTracingIntegrator{MaxDepth: maxDepth}
}

// RayColor traces ray through world, one bounce per iteration, carrying the path
// throughput instead of recursing
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, world geometry.Hittable, lights pdf.Target, background core.Vec3, sampler core.Sampler) core.Vec3 {
	color := core.Vec3{}
	throughput := core.NewVec3(1, 1, 1)

	for depth := pt.MaxDepth; depth > 0; depth-- {
		hit, isHit := world.Hit(ray, hitInterval)
		if !isHit {
			return color.Add(throughput.MultiplyVec(background))
		}

		// Start with emitted light from the hit material
		color = color.Add(throughput.MultiplyVec(hit.Material.Emitted(ray, *hit)))

		scatter, didScatter := hit.Material.Scatter(ray, *hit, sampler)
		if !didScatter {
			return color
		}

		if scatter.IsSpecular() {
			throughput = throughput.MultiplyVec(scatter.Attenuation)
			ray = scatter.Scattered
			continue
		}

		scattered, samplingPDF := pt.sampleDirection(ray, hit.Point, scatter.Scattered, scatter.PDF, scatter.Sampler, lights, sampler)
		if samplingPDF <= 0 {
			return color
		}

		scatteringPDF := hit.Material.ScatteringPDF(ray, *hit, scattered)
		throughput = throughput.MultiplyVec(scatter.Attenuation).Multiply(scatteringPDF / samplingPDF)
		if throughput == (core.Vec3{}) {
			return color
		}
		ray = scattered
	}

	// Depth exhausted
	return color
}

// sampleDirection picks the next path direction. Without lights it keeps the material's
// own sample; with lights it draws from an even mixture of light and material sampling.
func (pt *PathTracingIntegrator) sampleDirection(rayIn core.Ray, point core.Vec3, materialRay core.Ray, materialPDF float64, materialSampler pdf.PDF, lights pdf.Target, sampler core.Sampler) (core.Ray, float64) {
	if lights == nil {
		return materialRay, materialPDF
	}

	mixture := pdf.NewMixturePDF(pdf.NewHittablePDF(lights, point), materialSampler)
	scattered := core.NewRayAtTime(point, mixture.Generate(sampler), rayIn.Time)

	return scattered, mixture.Value(scattered.Direction)
}
