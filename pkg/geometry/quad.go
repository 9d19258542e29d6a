package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Quad represents a parallelogram defined by a corner and two edge vectors
type Quad struct {
	Corner   core.Vec3         // One corner of the quad
	U        core.Vec3         // First edge vector
	V        core.Vec3         // Second edge vector
	Normal   core.Vec3         // Unit normal (direction of U × V)
	Material material.Material // Material of the quad
	D        float64           // Plane equation constant: normal · p = D
	W        core.Vec3         // n / (n · n), used to project onto the edge basis
	Area     float64
	bbox     core.AABB
}

// NewQuad creates a new quad from a corner point and two edge vectors
func NewQuad(corner, u, v core.Vec3, mat material.Material) *Quad {
	n := u.Cross(v)
	normal := n.Normalize()

	// Bound both diagonals so the box is correct for any edge orientation
	diagonal1 := core.NewAABBFromPoints(corner, corner.Add(u).Add(v))
	diagonal2 := core.NewAABBFromPoints(corner.Add(u), corner.Add(v))

	return &Quad{
		Corner:   corner,
		U:        u,
		V:        v,
		Normal:   normal,
		Material: mat,
		D:        normal.Dot(corner),
		W:        n.Divide(n.Dot(n)),
		Area:     n.Length(),
		bbox:     core.NewAABBFromBoxes(diagonal1, diagonal2),
	}
}

// Hit tests if a ray intersects with the quad
func (q *Quad) Hit(ray core.Ray, rayT core.Interval) (*material.HitRecord, bool) {
	denominator := q.Normal.Dot(ray.Direction)

	// Ray is parallel to the plane
	if math.Abs(denominator) < 1e-8 {
		return nil, false
	}

	t := (q.D - q.Normal.Dot(ray.Origin)) / denominator
	if !rayT.Contains(t) {
		return nil, false
	}

	hitPoint := ray.At(t)

	// Express the hit point in the (U, V) edge basis
	planarHit := hitPoint.Subtract(q.Corner)
	alpha := q.W.Dot(planarHit.Cross(q.V))
	beta := q.W.Dot(q.U.Cross(planarHit))

	unit := core.NewInterval(0, 1)
	if !unit.Contains(alpha) || !unit.Contains(beta) {
		return nil, false
	}

	hitRecord := &material.HitRecord{
		T:        t,
		Point:    hitPoint,
		UV:       core.NewVec2(alpha, beta),
		Material: q.Material,
	}
	hitRecord.SetFaceNormal(ray, q.Normal)

	return hitRecord, true
}

// BoundingBox returns the bounding box for this quad
func (q *Quad) BoundingBox() core.AABB {
	return q.bbox
}

// PDFValue converts the uniform area density of the quad to solid angle as seen from origin
func (q *Quad) PDFValue(origin, direction core.Vec3) float64 {
	hit, ok := q.Hit(core.NewRay(origin, direction), lightSampleInterval)
	if !ok {
		return 0
	}

	distanceSquared := hit.T * hit.T * direction.LengthSquared()
	cosine := math.Abs(direction.Dot(hit.Normal) / direction.Length())
	if cosine == 0 {
		return 0
	}

	return distanceSquared / (cosine * q.Area)
}

// Random returns the vector from origin to a uniformly chosen point on the quad
func (q *Quad) Random(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	sample := sampler.Get2D()
	p := q.Corner.Add(q.U.Multiply(sample.X)).Add(q.V.Multiply(sample.Y))
	return p.Subtract(origin)
}

// NewBox returns the six quads of the axis-aligned box with opposite corners a and b
func NewBox(a, b core.Vec3, mat material.Material) *HittableList {
	minP := core.NewVec3(math.Min(a.X, b.X), math.Min(a.Y, b.Y), math.Min(a.Z, b.Z))
	maxP := core.NewVec3(math.Max(a.X, b.X), math.Max(a.Y, b.Y), math.Max(a.Z, b.Z))

	dx := core.NewVec3(maxP.X-minP.X, 0, 0)
	dy := core.NewVec3(0, maxP.Y-minP.Y, 0)
	dz := core.NewVec3(0, 0, maxP.Z-minP.Z)

	return NewHittableList(
		NewQuad(core.NewVec3(minP.X, minP.Y, maxP.Z), dx, dy, mat),          // front
		NewQuad(core.NewVec3(maxP.X, minP.Y, maxP.Z), dz.Negate(), dy, mat), // right
		NewQuad(core.NewVec3(maxP.X, minP.Y, minP.Z), dx.Negate(), dy, mat), // back
		NewQuad(core.NewVec3(minP.X, minP.Y, minP.Z), dz, dy, mat),          // left
		NewQuad(core.NewVec3(minP.X, maxP.Y, maxP.Z), dx, dz.Negate(), mat), // top
		NewQuad(core.NewVec3(minP.X, minP.Y, minP.Z), dx, dz, mat),          // bottom
	)
}
