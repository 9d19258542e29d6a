package pdf

import (
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

// integrate estimates ∫ p(ω) dω over the sphere using uniform direction samples
func integrate(p PDF, samples int, sampler core.Sampler) float64 {
	sum := 0.0
	for i := 0; i < samples; i++ {
		dir := core.RandomUnitVector(sampler.Get2D())
		sum += p.Value(dir) * 4 * math.Pi
	}
	return sum / float64(samples)
}

func TestPDFs_IntegrateToOne(t *testing.T) {
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))

	tests := []struct {
		name string
		pdf  PDF
	}{
		{"cosine +Z", NewCosinePDF(core.NewVec3(0, 0, 1))},
		{"cosine tilted", NewCosinePDF(core.NewVec3(1, -2, 0.5))},
		{"sphere", NewSpherePDF()},
		{"mixture", NewMixturePDF(NewCosinePDF(core.NewVec3(0, 1, 0)), NewSpherePDF())},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := integrate(tt.pdf, 200000, sampler); math.Abs(got-1) > 0.02 {
				t.Errorf("Expected density to integrate to 1, got %f", got)
			}
		})
	}
}

func TestCosinePDF_GenerateAboveSurface(t *testing.T) {
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))
	normal := core.NewVec3(0.3, 0.9, -0.2).Normalize()
	p := NewCosinePDF(normal)

	for i := 0; i < 1000; i++ {
		dir := p.Generate(sampler)
		if dir.Dot(normal) < -1e-9 {
			t.Fatalf("Generated direction %v below the surface", dir)
		}
		if p.Value(dir) <= 0 && dir.Dot(normal) > 1e-6 {
			t.Fatalf("Generated direction %v has zero density", dir)
		}
	}

	if v := p.Value(normal.Negate()); v != 0 {
		t.Errorf("Expected zero density below the surface, got %f", v)
	}
	if v := p.Value(normal); math.Abs(v-1/math.Pi) > 1e-12 {
		t.Errorf("Expected 1/π along the normal, got %f", v)
	}
}

// fixedTarget is a test Target that always returns the same direction and density
type fixedTarget struct {
	direction  core.Vec3
	density    float64
	lastOrigin core.Vec3
}

func (f *fixedTarget) PDFValue(origin, direction core.Vec3) float64 {
	f.lastOrigin = origin
	return f.density
}

func (f *fixedTarget) Random(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	f.lastOrigin = origin
	return f.direction
}

func TestHittablePDF_DelegatesWithOrigin(t *testing.T) {
	target := &fixedTarget{direction: core.NewVec3(0, 1, 0), density: 3.5}
	origin := core.NewVec3(1, 2, 3)
	p := NewHittablePDF(target, origin)

	if v := p.Value(core.NewVec3(1, 0, 0)); v != 3.5 {
		t.Errorf("Expected delegated density 3.5, got %f", v)
	}
	if target.lastOrigin != origin {
		t.Errorf("Expected origin %v passed to target, got %v", origin, target.lastOrigin)
	}

	target.lastOrigin = core.Vec3{}
	if d := p.Generate(core.NewSeededSampler(1)); d != target.direction {
		t.Errorf("Expected delegated direction %v, got %v", target.direction, d)
	}
	if target.lastOrigin != origin {
		t.Errorf("Expected origin %v passed to target, got %v", origin, target.lastOrigin)
	}
}

func TestMixturePDF_AveragesAndSamplesBoth(t *testing.T) {
	a := &fixedTarget{direction: core.NewVec3(1, 0, 0), density: 2}
	b := &fixedTarget{direction: core.NewVec3(0, 0, 1), density: 6}
	m := NewMixturePDF(NewHittablePDF(a, core.Vec3{}), NewHittablePDF(b, core.Vec3{}))

	if v := m.Value(core.NewVec3(0, 1, 0)); v != 4 {
		t.Errorf("Expected averaged density 4, got %f", v)
	}

	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))
	counts := map[core.Vec3]int{}
	n := 10000
	for i := 0; i < n; i++ {
		counts[m.Generate(sampler)]++
	}

	fraction := float64(counts[a.direction]) / float64(n)
	if math.Abs(fraction-0.5) > 0.03 {
		t.Errorf("Expected a fair coin between components, got fraction %f", fraction)
	}
	if counts[a.direction]+counts[b.direction] != n {
		t.Error("Mixture generated a direction from neither component")
	}
}
