package geometry

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// RotateY rotates an object about the world Y axis
type RotateY struct {
	Object   Hittable
	sinTheta float64
	cosTheta float64
	bbox     core.AABB
}

// NewRotateY wraps object rotated by angle degrees about +Y (right-handed)
func NewRotateY(object Hittable, angle float64) *RotateY {
	radians := angle * math.Pi / 180
	rotation := r3.NewRotation(radians, r3.Vec{Y: 1})

	// Rotation does not commute with axis alignment, so re-bound all eight corners
	lo := core.NewVec3(math.Inf(1), math.Inf(1), math.Inf(1))
	hi := core.NewVec3(math.Inf(-1), math.Inf(-1), math.Inf(-1))
	for _, corner := range object.BoundingBox().Corners() {
		p := rotation.Rotate(r3.Vec{X: corner.X, Y: corner.Y, Z: corner.Z})
		lo = core.NewVec3(min(lo.X, p.X), min(lo.Y, p.Y), min(lo.Z, p.Z))
		hi = core.NewVec3(max(hi.X, p.X), max(hi.Y, p.Y), max(hi.Z, p.Z))
	}
	bbox := core.NewAABBFromPoints(lo, hi)

	return &RotateY{
		Object:   object,
		sinTheta: math.Sin(radians),
		cosTheta: math.Cos(radians),
		bbox:     bbox,
	}
}

// toObject applies the inverse rotation
func (r *RotateY) toObject(v core.Vec3) core.Vec3 {
	return core.NewVec3(
		r.cosTheta*v.X-r.sinTheta*v.Z,
		v.Y,
		r.sinTheta*v.X+r.cosTheta*v.Z,
	)
}

// toWorld applies the forward rotation
func (r *RotateY) toWorld(v core.Vec3) core.Vec3 {
	return core.NewVec3(
		r.cosTheta*v.X+r.sinTheta*v.Z,
		v.Y,
		-r.sinTheta*v.X+r.cosTheta*v.Z,
	)
}

// Hit rotates the ray into object space, intersects, then rotates the hit back
func (r *RotateY) Hit(ray core.Ray, rayT core.Interval) (*material.HitRecord, bool) {
	rotated := core.NewRayAtTime(r.toObject(ray.Origin), r.toObject(ray.Direction), ray.Time)

	hit, ok := r.Object.Hit(rotated, rayT)
	if !ok {
		return nil, false
	}

	hit.Point = r.toWorld(hit.Point)
	hit.Normal = r.toWorld(hit.Normal)
	return hit, true
}

// BoundingBox returns the world-space box of the rotated object
func (r *RotateY) BoundingBox() core.AABB {
	return r.bbox
}
