package pdf

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// MixturePDF picks one of two distributions with equal probability.
// Its density is the unweighted average of both.
type MixturePDF struct {
	p [2]PDF
}

// NewMixturePDF creates an even mixture of p0 and p1
func NewMixturePDF(p0, p1 PDF) *MixturePDF {
	return &MixturePDF{p: [2]PDF{p0, p1}}
}

// Value returns 0.5·p0(direction) + 0.5·p1(direction)
func (m *MixturePDF) Value(direction core.Vec3) float64 {
	return 0.5*m.p[0].Value(direction) + 0.5*m.p[1].Value(direction)
}

// Generate flips a fair coin and samples the chosen distribution
func (m *MixturePDF) Generate(sampler core.Sampler) core.Vec3 {
	if sampler.Get1D() < 0.5 {
		return m.p[0].Generate(sampler)
	}
	return m.p[1].Generate(sampler)
}
