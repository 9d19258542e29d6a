package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Hittable is anything a ray can intersect
type Hittable interface {
	// Hit returns the closest intersection with t inside rayT
	Hit(ray core.Ray, rayT core.Interval) (*material.HitRecord, bool)
	// BoundingBox returns a box enclosing the object for all ray times
	BoundingBox() core.AABB
}

// lightSampleInterval is the t range used when probing a shape from a point for light sampling
var lightSampleInterval = core.NewInterval(0.001, math.Inf(1))
