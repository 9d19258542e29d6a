package material

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

const perlinPointCount = 256

// Perlin is a gradient noise generator over a 256-cell lattice
type Perlin struct {
	randVec [perlinPointCount]core.Vec3
	permX   [perlinPointCount]int
	permY   [perlinPointCount]int
	permZ   [perlinPointCount]int
}

// NewPerlin builds the gradient table and permutations from sampler
func NewPerlin(sampler core.Sampler) *Perlin {
	p := &Perlin{}
	for i := range p.randVec {
		p.randVec[i] = core.RandomUnitVector(sampler.Get2D())
	}
	p.permX = perlinPermutation(sampler)
	p.permY = perlinPermutation(sampler)
	p.permZ = perlinPermutation(sampler)
	return p
}

// Noise returns smoothly varying noise in roughly [-1, 1]
func (p *Perlin) Noise(point core.Vec3) float64 {
	fx, fy, fz := math.Floor(point.X), math.Floor(point.Y), math.Floor(point.Z)
	u, v, w := point.X-fx, point.Y-fy, point.Z-fz
	i, j, k := int(fx), int(fy), int(fz)

	var c [2][2][2]core.Vec3
	for di := 0; di < 2; di++ {
		for dj := 0; dj < 2; dj++ {
			for dk := 0; dk < 2; dk++ {
				c[di][dj][dk] = p.randVec[p.permX[(i+di)&255]^p.permY[(j+dj)&255]^p.permZ[(k+dk)&255]]
			}
		}
	}

	return perlinInterp(c, u, v, w)
}

// Turbulence sums depth octaves of noise with halving weight and doubling frequency
func (p *Perlin) Turbulence(point core.Vec3, depth int) float64 {
	accum := 0.0
	weight := 1.0
	for i := 0; i < depth; i++ {
		accum += weight * p.Noise(point)
		weight *= 0.5
		point = point.Multiply(2)
	}
	return math.Abs(accum)
}

func perlinPermutation(sampler core.Sampler) [perlinPointCount]int {
	var perm [perlinPointCount]int
	for i := range perm {
		perm[i] = i
	}
	// Fisher-Yates
	for i := perlinPointCount - 1; i > 0; i-- {
		target := min(int(sampler.Get1D()*float64(i+1)), i)
		perm[i], perm[target] = perm[target], perm[i]
	}
	return perm
}

func perlinInterp(c [2][2][2]core.Vec3, u, v, w float64) float64 {
	// Hermite smoothing
	uu := u * u * (3 - 2*u)
	vv := v * v * (3 - 2*v)
	ww := w * w * (3 - 2*w)

	accum := 0.0
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				fi, fj, fk := float64(i), float64(j), float64(k)
				weight := core.NewVec3(u-fi, v-fj, w-fk)
				accum += (fi*uu + (1-fi)*(1-uu)) *
					(fj*vv + (1-fj)*(1-vv)) *
					(fk*ww + (1-fk)*(1-ww)) *
					c[i][j][k].Dot(weight)
			}
		}
	}
	return accum
}

// NoiseTexture is a marble-like pattern built from Perlin turbulence
type NoiseTexture struct {
	noise *Perlin
	Scale float64
}

// NewNoiseTexture creates a marble texture; scale controls stripe frequency
func NewNoiseTexture(scale float64, sampler core.Sampler) *NoiseTexture {
	return &NoiseTexture{noise: NewPerlin(sampler), Scale: scale}
}

// Evaluate returns a gray value in [0, 1]
func (n *NoiseTexture) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	phase := n.Scale*point.Z + 10*n.noise.Turbulence(point, 7)
	return core.NewVec3(0.5, 0.5, 0.5).Multiply(1 + math.Sin(phase))
}
