package core

import (
	"math"
	"math/rand"
)

// Sampler provides random sampling for rendering algorithms
// Can be swapped out for deterministic testing or different sampling patterns
type Sampler interface {
	Get1D() float64
	Get2D() Vec2
	Get3D() Vec3
}

// RandomSampler wraps a standard Go random generator.
// It is not safe for concurrent use; give each worker its own.
type RandomSampler struct {
	random *rand.Rand
}

// NewRandomSampler creates a sampler from a Go random generator
func NewRandomSampler(random *rand.Rand) *RandomSampler {
	return &RandomSampler{random: random}
}

// NewSeededSampler creates a sampler with its own generator seeded with seed
func NewSeededSampler(seed int64) *RandomSampler {
	return NewRandomSampler(rand.New(rand.NewSource(seed)))
}

// Get1D returns a random float64 in [0, 1)
func (r *RandomSampler) Get1D() float64 {
	return r.random.Float64()
}

// Get2D returns two random float64 values in [0, 1)
func (r *RandomSampler) Get2D() Vec2 {
	return NewVec2(r.random.Float64(), r.random.Float64())
}

// Get3D returns three random float64 values in [0, 1)
func (r *RandomSampler) Get3D() Vec3 {
	return NewVec3(r.random.Float64(), r.random.Float64(), r.random.Float64())
}

// RandomRange returns a random float64 in [lo, hi)
func RandomRange(sampler Sampler, lo, hi float64) float64 {
	return lo + (hi-lo)*sampler.Get1D()
}

// RandomVec3Range returns a vector whose components are each uniform in [lo, hi)
func RandomVec3Range(sampler Sampler, lo, hi float64) Vec3 {
	return NewVec3(
		RandomRange(sampler, lo, hi),
		RandomRange(sampler, lo, hi),
		RandomRange(sampler, lo, hi),
	)
}

// RandomCosineDirection returns a cosine-weighted direction around +Z in local coordinates.
// Use an ONB to move it into world space.
func RandomCosineDirection(sample Vec2) Vec3 {
	phi := 2.0 * math.Pi * sample.X
	r := math.Sqrt(sample.Y)

	x := r * math.Cos(phi)
	y := r * math.Sin(phi)
	z := math.Sqrt(1.0 - sample.Y)

	return NewVec3(x, y, z)
}

// RandomUnitVector returns a uniformly distributed direction on the unit sphere
func RandomUnitVector(sample Vec2) Vec3 {
	z := 1.0 - 2.0*sample.X // z ∈ [-1, 1]
	r := math.Sqrt(math.Max(0, 1.0-z*z))
	phi := 2.0 * math.Pi * sample.Y
	return NewVec3(r*math.Cos(phi), r*math.Sin(phi), z)
}

// RandomInUnitDisk returns a uniformly distributed point in the unit disk on the XY plane
// This avoids rejection sampling by mapping a square uniformly to a disk
func RandomInUnitDisk(sample Vec2) Vec3 {
	// Map sample to [-1,1]² and handle degeneracy at the origin
	offset := NewVec2(2*sample.X-1, 2*sample.Y-1)
	if offset.X == 0 && offset.Y == 0 {
		return NewVec3(0, 0, 0)
	}

	// Concentric mapping
	var theta, r float64
	if math.Abs(offset.X) > math.Abs(offset.Y) {
		r = offset.X
		theta = math.Pi / 4 * (offset.Y / offset.X)
	} else {
		r = offset.Y
		theta = math.Pi/2 - math.Pi/4*(offset.X/offset.Y)
	}

	return NewVec3(r*math.Cos(theta), r*math.Sin(theta), 0)
}

// RandomInUnitSphere generates a random point inside a unit sphere using the inverse CDF method
func RandomInUnitSphere(sample Vec3) Vec3 {
	// r = ∛(u₁) to account for volume scaling
	r := math.Cbrt(sample.X)
	phi := 2 * math.Pi * sample.Y
	cosTheta := 2*sample.Z - 1
	sinTheta := math.Sqrt(1 - cosTheta*cosTheta)

	return NewVec3(
		r*sinTheta*math.Cos(phi),
		r*sinTheta*math.Sin(phi),
		r*cosTheta,
	)
}

// RandomToSphere returns a local direction (around +Z) uniformly distributed over the cone
// subtended by a sphere of the given radius at squared distance distanceSquared
func RandomToSphere(radius, distanceSquared float64, sample Vec2) Vec3 {
	cosThetaMax := math.Sqrt(math.Max(0, 1-radius*radius/distanceSquared))
	z := 1 + sample.Y*(cosThetaMax-1)

	phi := 2 * math.Pi * sample.X
	sinTheta := math.Sqrt(math.Max(0, 1-z*z))

	return NewVec3(math.Cos(phi)*sinTheta, math.Sin(phi)*sinTheta, z)
}
