package integrator

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/pdf"
)

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor estimates the radiance arriving along ray.
	// lights may be nil, in which case only material sampling is used.
	RayColor(ray core.Ray, world geometry.Hittable, lights pdf.Target, background core.Vec3, sampler core.Sampler) core.Vec3
}
