package geometry

import (
	"encoding/binary"
	"hash/fnv"
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// ConstantMedium is a homogeneous participating medium such as smoke or fog,
// filling a closed boundary shape
type ConstantMedium struct {
	Boundary      Hittable
	Density       float64
	PhaseFunction material.Material
	negInvDensity float64
}

// NewConstantMedium fills boundary with a medium of the given density and albedo
func NewConstantMedium(boundary Hittable, density float64, albedo core.Vec3) *ConstantMedium {
	return NewTexturedConstantMedium(boundary, density, material.NewSolidColor(albedo))
}

// NewTexturedConstantMedium fills boundary with a medium whose albedo comes from a color source
func NewTexturedConstantMedium(boundary Hittable, density float64, albedo material.ColorSource) *ConstantMedium {
	return &ConstantMedium{
		Boundary:      boundary,
		Density:       density,
		PhaseFunction: material.NewTexturedIsotropic(albedo),
		negInvDensity: -1 / density,
	}
}

// Hit samples a scattering distance inside the boundary. Rays that cross the
// medium without scattering report no hit.
func (m *ConstantMedium) Hit(ray core.Ray, rayT core.Interval) (*material.HitRecord, bool) {
	entry, ok := m.Boundary.Hit(ray, core.UniverseInterval())
	if !ok {
		return nil, false
	}
	exit, ok := m.Boundary.Hit(ray, core.NewInterval(entry.T+0.0001, math.Inf(1)))
	if !ok {
		return nil, false
	}

	tEntry := math.Max(entry.T, rayT.Min)
	tExit := math.Min(exit.T, rayT.Max)
	if tEntry >= tExit {
		return nil, false
	}
	tEntry = math.Max(tEntry, 0)

	rayLength := ray.Direction.Length()
	distanceInsideBoundary := (tExit - tEntry) * rayLength
	hitDistance := m.negInvDensity * math.Log(freeFlightSample(ray))
	if hitDistance > distanceInsideBoundary {
		return nil, false
	}

	t := tEntry + hitDistance/rayLength

	// Normal and UV are arbitrary; the isotropic phase function ignores both
	return &material.HitRecord{
		T:         t,
		Point:     ray.At(t),
		Normal:    core.NewVec3(1, 0, 0),
		FrontFace: true,
		Material:  m.PhaseFunction,
	}, true
}

// BoundingBox returns the boundary's box
func (m *ConstantMedium) BoundingBox() core.AABB {
	return m.Boundary.BoundingBox()
}

// freeFlightSample returns a uniform number in (0, 1] derived from the ray itself,
// so the medium stays safe for concurrent use and renders stay reproducible
func freeFlightSample(ray core.Ray) float64 {
	h := fnv.New64a()
	var buf [8]byte
	for _, f := range [...]float64{
		ray.Origin.X, ray.Origin.Y, ray.Origin.Z,
		ray.Direction.X, ray.Direction.Y, ray.Direction.Z,
		ray.Time,
	} {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(f))
		h.Write(buf[:])
	}

	// splitmix64 finalizer to spread nearby rays apart
	z := h.Sum64()
	z ^= z >> 30
	z *= 0xbf58476d1ce4e5b9
	z ^= z >> 27
	z *= 0x94d049bb133111eb
	z ^= z >> 31

	// Top 53 bits, shifted into (0, 1]
	return (float64(z>>11) + 1) / (1 << 53)
}
