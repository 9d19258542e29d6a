package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Triangle represents a single triangle defined by three vertices
type Triangle struct {
	V0, V1, V2   core.Vec3         // The three vertices
	Material     material.Material // Material of the triangle
	edge1, edge2 core.Vec3
	normal       core.Vec3 // Unit normal, edge1 × edge2
	bbox         core.AABB
}

// NewTriangle creates a new triangle from three vertices
func NewTriangle(v0, v1, v2 core.Vec3, mat material.Material) *Triangle {
	edge1 := v1.Subtract(v0)
	edge2 := v2.Subtract(v0)

	minP := core.NewVec3(math.Min(v0.X, math.Min(v1.X, v2.X)), math.Min(v0.Y, math.Min(v1.Y, v2.Y)), math.Min(v0.Z, math.Min(v1.Z, v2.Z)))
	maxP := core.NewVec3(math.Max(v0.X, math.Max(v1.X, v2.X)), math.Max(v0.Y, math.Max(v1.Y, v2.Y)), math.Max(v0.Z, math.Max(v1.Z, v2.Z)))

	return &Triangle{
		V0:       v0,
		V1:       v1,
		V2:       v2,
		Material: mat,
		edge1:    edge1,
		edge2:    edge2,
		normal:   edge1.Cross(edge2).Normalize(),
		bbox:     core.NewAABBFromPoints(minP, maxP),
	}
}

// Hit tests if a ray intersects with the triangle using the Möller-Trumbore algorithm
func (t *Triangle) Hit(ray core.Ray, rayT core.Interval) (*material.HitRecord, bool) {
	h := ray.Direction.Cross(t.edge2)
	det := t.edge1.Dot(h)

	// Ray lies in (or parallel to) the plane of the triangle
	if math.Abs(det) < 1e-8 {
		return nil, false
	}

	s := ray.Origin.Subtract(t.V0)
	u := s.Dot(h) / det
	if u < 0 || u > 1 {
		return nil, false
	}

	q := s.Cross(t.edge1)
	v := ray.Direction.Dot(q) / det
	if v < 0 || u+v > 1 {
		return nil, false
	}

	tHit := t.edge2.Dot(q) / det
	if !rayT.Surrounds(tHit) {
		return nil, false
	}

	hitRecord := &material.HitRecord{
		T:        tHit,
		Point:    ray.At(tHit),
		UV:       core.NewVec2(u, v),
		Material: t.Material,
	}
	hitRecord.SetFaceNormal(ray, t.normal)

	return hitRecord, true
}

// BoundingBox returns the axis-aligned bounding box for this triangle
func (t *Triangle) BoundingBox() core.AABB {
	return t.bbox
}

// Normal returns the triangle's geometric normal
func (t *Triangle) Normal() core.Vec3 {
	return t.normal
}
