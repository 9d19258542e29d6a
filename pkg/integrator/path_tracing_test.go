package integrator

import (
	"math"
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/stat"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/pdf"
)

var skyBlue = core.NewVec3(0.5, 0.7, 1.0)

// createTestScene creates a simple scene with a diffuse sphere
func createTestScene(albedo core.Vec3) *geometry.HittableList {
	lambertian := material.NewLambertian(albedo)
	return geometry.NewHittableList(geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, lambertian))
}

func TestPathTracing_DepthTermination(t *testing.T) {
	world := createTestScene(core.NewVec3(0.7, 0.3, 0.3))
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	// Depth 0 gathers nothing
	if c := NewPathTracingIntegrator(0).RayColor(ray, world, nil, skyBlue, sampler); c != (core.Vec3{}) {
		t.Errorf("Expected black color for depth 0, got %v", c)
	}

	// Depth 1 hits the sphere and stops before reaching the sky
	if c := NewPathTracingIntegrator(1).RayColor(ray, world, nil, skyBlue, sampler); c != (core.Vec3{}) {
		t.Errorf("Expected black color for depth 1 on a diffuse surface, got %v", c)
	}

	// Depth 2 escapes after one bounce
	if c := NewPathTracingIntegrator(2).RayColor(ray, world, nil, skyBlue, sampler); c == (core.Vec3{}) {
		t.Error("Expected non-black color for depth 2")
	}
}

func TestPathTracing_MissReturnsBackground(t *testing.T) {
	world := createTestScene(core.NewVec3(0.5, 0.5, 0.5))
	ray := core.NewRay(core.Vec3{}, core.NewVec3(0, 1, 0))

	c := NewPathTracingIntegrator(10).RayColor(ray, world, nil, skyBlue, core.NewSeededSampler(1))
	if c != skyBlue {
		t.Errorf("Expected background %v, got %v", skyBlue, c)
	}
}

func TestPathTracing_EmitterTerminatesPath(t *testing.T) {
	emission := core.NewVec3(4, 3, 2)
	world := geometry.NewHittableList(geometry.NewSphere(core.NewVec3(0, 0, -3), 1, material.NewDiffuseLight(emission)))
	ray := core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1))

	c := NewPathTracingIntegrator(10).RayColor(ray, world, nil, skyBlue, core.NewSeededSampler(1))
	if c != emission {
		t.Errorf("Expected emission %v only, got %v", emission, c)
	}
}

// A convex diffuse object under a uniform sky reflects exactly albedo × sky:
// every bounce escapes, and attenuation·scatteringPDF/pdf equals the albedo.
func TestPathTracing_ConvexDiffuseUnderUniformSky(t *testing.T) {
	albedo := core.NewVec3(0.8, 0.5, 0.2)
	world := createTestScene(albedo)
	integrator := NewPathTracingIntegrator(50)
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))
	expected := albedo.MultiplyVec(skyBlue)

	for i := 0; i < 200; i++ {
		ray := core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1))
		c := integrator.RayColor(ray, world, nil, skyBlue, sampler)
		if c.Subtract(expected).Length() > 1e-9 {
			t.Fatalf("Expected %v, got %v", expected, c)
		}
	}
}

func TestPathTracing_MirrorReflectsBackground(t *testing.T) {
	albedo := core.NewVec3(0.9, 0.9, 0.9)
	mirror := geometry.NewQuad(core.NewVec3(-5, 0, -5), core.NewVec3(0, 0, 10), core.NewVec3(10, 0, 0), material.NewMetal(albedo, 0))
	world := geometry.NewHittableList(mirror)
	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0.3, -1, 0.1))

	c := NewPathTracingIntegrator(5).RayColor(ray, world, nil, skyBlue, core.NewSeededSampler(1))
	if expected := albedo.MultiplyVec(skyBlue); c.Subtract(expected).Length() > 1e-12 {
		t.Errorf("Expected %v, got %v", expected, c)
	}
}

// lightRoom is a diffuse floor lit by a small ceiling quad light against a black background
func lightRoom() (*geometry.HittableList, pdf.Target) {
	floorMat := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	floor := geometry.NewQuad(core.NewVec3(-100, 0, -100), core.NewVec3(0, 0, 200), core.NewVec3(200, 0, 0), floorMat)
	light := geometry.NewQuad(core.NewVec3(-0.5, 2, -0.5), core.NewVec3(1, 0, 0), core.NewVec3(0, 0, 1), material.NewDiffuseLight(core.NewVec3(10, 10, 10)))

	return geometry.NewHittableList(floor, light), geometry.NewHittableList(light)
}

func estimate(world geometry.Hittable, lights pdf.Target, samples int, seed int64) (mean, stdErr float64) {
	integrator := NewPathTracingIntegrator(2)
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(seed)))
	ray := core.NewRay(core.NewVec3(0.2, 1, 0.1), core.NewVec3(0, -1, 0))

	values := make([]float64, samples)
	for i := range values {
		values[i] = integrator.RayColor(ray, world, lights, core.Vec3{}, sampler).Luminance()
	}

	mean, std := stat.MeanStdDev(values, nil)
	return mean, std / math.Sqrt(float64(samples))
}

func TestPathTracing_LightSamplingIsUnbiased(t *testing.T) {
	world, lights := lightRoom()

	plainMean, plainErr := estimate(world, nil, 200000, 1)
	sampledMean, sampledErr := estimate(world, lights, 50000, 2)

	if plainMean <= 0 || sampledMean <= 0 {
		t.Fatalf("Expected light to reach the floor, got %f and %f", plainMean, sampledMean)
	}

	tolerance := 4 * math.Sqrt(plainErr*plainErr+sampledErr*sampledErr)
	if math.Abs(plainMean-sampledMean) > tolerance {
		t.Errorf("Estimators disagree: plain %f ± %f, light-sampled %f ± %f", plainMean, plainErr, sampledMean, sampledErr)
	}

	// Importance sampling toward the light should reduce variance considerably
	if sampledErr*math.Sqrt(50000) >= plainErr*math.Sqrt(200000) {
		t.Errorf("Expected lower per-sample deviation with light sampling: plain %f, sampled %f",
			plainErr*math.Sqrt(200000), sampledErr*math.Sqrt(50000))
	}
}

func TestPathTracing_ThroughDielectricToLight(t *testing.T) {
	// A glass slab in front of a light never absorbs, so some energy always reaches the camera
	emission := core.NewVec3(1, 1, 1)
	glass := geometry.NewBox(core.NewVec3(-1, -1, -2), core.NewVec3(1, 1, -1.5), material.NewDielectric(1.5))
	light := geometry.NewQuad(core.NewVec3(-2, -2, -3), core.NewVec3(4, 0, 0), core.NewVec3(0, 4, 0), material.NewDiffuseLight(emission))
	world := geometry.NewBVHNode([]geometry.Hittable{glass, light})
	integrator := NewPathTracingIntegrator(20)
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))

	reached := 0
	for i := 0; i < 500; i++ {
		c := integrator.RayColor(core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1)), world, nil, core.Vec3{}, sampler)
		if c.X > 0 {
			reached++
		}
		if c.X > 1+1e-9 {
			t.Fatalf("Energy gain through glass: %v", c)
		}
	}

	if reached < 400 {
		t.Errorf("Expected most paths to transmit to the light, got %d/500", reached)
	}
}
