package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Sphere represents a static sphere shape
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material material.Material
	bbox     core.AABB
}

// NewSphere creates a new sphere. Negative radii are treated as zero,
// and a zero-radius sphere is never hit.
func NewSphere(center core.Vec3, radius float64, mat material.Material) *Sphere {
	radius = math.Max(0, radius)
	rv := core.NewVec3(radius, radius, radius)
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Material: mat,
		bbox:     core.NewAABBFromPoints(center.Subtract(rv), center.Add(rv)),
	}
}

// Hit tests if a ray intersects with the sphere
func (s *Sphere) Hit(ray core.Ray, rayT core.Interval) (*material.HitRecord, bool) {
	return hitSphere(s.Center, s.Radius, s.Material, ray, rayT)
}

// BoundingBox returns the axis-aligned bounding box for this sphere
func (s *Sphere) BoundingBox() core.AABB {
	return s.bbox
}

// PDFValue returns the density of directions from origin toward the cone the sphere subtends
func (s *Sphere) PDFValue(origin, direction core.Vec3) float64 {
	if _, ok := s.Hit(core.NewRay(origin, direction), lightSampleInterval); !ok {
		return 0
	}

	distanceSquared := s.Center.Subtract(origin).LengthSquared()
	cosThetaMax := math.Sqrt(math.Max(0, 1-s.Radius*s.Radius/distanceSquared))
	solidAngle := 2 * math.Pi * (1 - cosThetaMax)

	return 1 / solidAngle
}

// Random returns a direction from origin toward a uniformly chosen point of the subtended cone
func (s *Sphere) Random(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	direction := s.Center.Subtract(origin)
	uvw := core.NewONB(direction)
	return uvw.Transform(core.RandomToSphere(s.Radius, direction.LengthSquared(), sampler.Get2D()))
}

// MovingSphere is a sphere whose center moves linearly from Center0 at time 0 to Center1 at time 1
type MovingSphere struct {
	Center0, Center1 core.Vec3
	Radius           float64
	Material         material.Material
	bbox             core.AABB
}

// NewMovingSphere creates a sphere that moves between two centers over the shutter interval
func NewMovingSphere(center0, center1 core.Vec3, radius float64, mat material.Material) *MovingSphere {
	radius = math.Max(0, radius)
	rv := core.NewVec3(radius, radius, radius)
	box0 := core.NewAABBFromPoints(center0.Subtract(rv), center0.Add(rv))
	box1 := core.NewAABBFromPoints(center1.Subtract(rv), center1.Add(rv))

	return &MovingSphere{
		Center0:  center0,
		Center1:  center1,
		Radius:   radius,
		Material: mat,
		bbox:     core.NewAABBFromBoxes(box0, box1),
	}
}

// CenterAt returns the sphere center at the given time
func (s *MovingSphere) CenterAt(time float64) core.Vec3 {
	return s.Center0.Add(s.Center1.Subtract(s.Center0).Multiply(time))
}

// Hit tests the ray against the sphere at the ray's time
func (s *MovingSphere) Hit(ray core.Ray, rayT core.Interval) (*material.HitRecord, bool) {
	return hitSphere(s.CenterAt(ray.Time), s.Radius, s.Material, ray, rayT)
}

// BoundingBox bounds the sphere over its whole path
func (s *MovingSphere) BoundingBox() core.AABB {
	return s.bbox
}

func hitSphere(center core.Vec3, radius float64, mat material.Material, ray core.Ray, rayT core.Interval) (*material.HitRecord, bool) {
	// A point has no surface to hit and no normal to report
	if radius <= 0 {
		return nil, false
	}

	oc := center.Subtract(ray.Origin)

	// Quadratic with b = -2h: at² - 2ht + c = 0
	a := ray.Direction.LengthSquared()
	h := ray.Direction.Dot(oc)
	c := oc.LengthSquared() - radius*radius

	discriminant := h*h - a*c
	if discriminant < 0 {
		return nil, false
	}
	sqrtD := math.Sqrt(discriminant)

	// Try the closer intersection point first
	root := (h - sqrtD) / a
	if !rayT.Surrounds(root) {
		root = (h + sqrtD) / a
		if !rayT.Surrounds(root) {
			return nil, false
		}
	}

	hitRecord := &material.HitRecord{
		T:        root,
		Point:    ray.At(root),
		Material: mat,
	}

	outwardNormal := hitRecord.Point.Subtract(center).Divide(radius)
	hitRecord.SetFaceNormal(ray, outwardNormal)
	hitRecord.UV = sphereUV(outwardNormal)

	return hitRecord, true
}

// sphereUV maps a point on the unit sphere to texture coordinates.
// u wraps around the Y axis starting from -X; v runs from the south pole (0) to the north pole (1).
func sphereUV(p core.Vec3) core.Vec2 {
	theta := math.Acos(-p.Y)
	phi := math.Atan2(-p.Z, p.X) + math.Pi

	return core.NewVec2(phi/(2*math.Pi), theta/math.Pi)
}
