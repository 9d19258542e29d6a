package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Translate moves an object by a fixed offset
type Translate struct {
	Object Hittable
	Offset core.Vec3
	bbox   core.AABB
}

// NewTranslate wraps object so it appears shifted by offset
func NewTranslate(object Hittable, offset core.Vec3) *Translate {
	return &Translate{
		Object: object,
		Offset: offset,
		bbox:   object.BoundingBox().Translate(offset),
	}
}

// Hit moves the ray into object space, intersects, then moves the hit point back
func (t *Translate) Hit(ray core.Ray, rayT core.Interval) (*material.HitRecord, bool) {
	offsetRay := core.NewRayAtTime(ray.Origin.Subtract(t.Offset), ray.Direction, ray.Time)

	hit, ok := t.Object.Hit(offsetRay, rayT)
	if !ok {
		return nil, false
	}

	hit.Point = hit.Point.Add(t.Offset)
	return hit, true
}

// BoundingBox returns the translated box of the wrapped object
func (t *Translate) BoundingBox() core.AABB {
	return t.bbox
}
