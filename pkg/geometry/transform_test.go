package geometry

import (
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestTranslate(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1, nil)
	moved := NewTranslate(sphere, core.NewVec3(0, 0, -5))

	hit, ok := moved.Hit(core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1)), forever)
	if !ok {
		t.Fatal("Expected hit on translated sphere")
	}
	if math.Abs(hit.T-4) > 1e-9 {
		t.Errorf("Expected t=4, got %f", hit.T)
	}
	if hit.Point.Subtract(core.NewVec3(0, 0, -4)).Length() > 1e-9 {
		t.Errorf("Expected world-space hit point (0,0,-4), got %v", hit.Point)
	}
	if hit.Normal.Subtract(core.NewVec3(0, 0, 1)).Length() > 1e-9 {
		t.Errorf("Expected normal +Z, got %v", hit.Normal)
	}

	box := moved.BoundingBox()
	if box.Z != sphere.BoundingBox().Z.Add(-5) {
		t.Errorf("Expected translated box, got %v", box)
	}

	// The untranslated position is empty
	if _, ok := moved.Hit(core.NewRay(core.NewVec3(5, 0, 0), core.NewVec3(-1, 0, 0)), forever); ok {
		t.Error("Expected miss at the untranslated position")
	}
}

func TestTranslate_KeepsRayTime(t *testing.T) {
	sphere := NewMovingSphere(core.NewVec3(0, 0, 0), core.NewVec3(0, 4, 0), 0.5, nil)
	moved := NewTranslate(sphere, core.NewVec3(0, 0, -5))

	ray := core.NewRayAtTime(core.NewVec3(0, 4, 0), core.NewVec3(0, 0, -1), 1)
	if _, ok := moved.Hit(ray, forever); !ok {
		t.Error("Translated moving sphere should honor the ray time")
	}
}

func TestRotateY_QuarterTurn(t *testing.T) {
	sphere := NewSphere(core.NewVec3(2, 0, 0), 0.5, nil)
	rotated := NewRotateY(sphere, 90)

	// +X rotates onto -Z
	hit, ok := rotated.Hit(core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1)), forever)
	if !ok {
		t.Fatal("Expected hit on rotated sphere")
	}
	if math.Abs(hit.T-1.5) > 1e-9 {
		t.Errorf("Expected t=1.5, got %f", hit.T)
	}
	if hit.Point.Subtract(core.NewVec3(0, 0, -1.5)).Length() > 1e-9 {
		t.Errorf("Expected world-space hit point (0,0,-1.5), got %v", hit.Point)
	}
	if hit.Normal.Subtract(core.NewVec3(0, 0, 1)).Length() > 1e-9 {
		t.Errorf("Expected world-space normal +Z, got %v", hit.Normal)
	}

	expected := NewSphere(core.NewVec3(0, 0, -2), 0.5, nil).BoundingBox()
	box := rotated.BoundingBox()
	for axis := 0; axis < 3; axis++ {
		got, want := box.AxisInterval(axis), expected.AxisInterval(axis)
		if math.Abs(got.Min-want.Min) > 1e-9 || math.Abs(got.Max-want.Max) > 1e-9 {
			t.Errorf("Axis %d: expected %v, got %v", axis, want, got)
		}
	}
}

func TestRotateY_NestedFullTurnKeepsBox(t *testing.T) {
	box := NewBox(core.NewVec3(-1, 0, -0.5), core.NewVec3(1, 2, 0.5), nil)

	var wrapped Hittable = box
	for i := 0; i < 4; i++ {
		wrapped = NewRotateY(wrapped, 90)
	}

	got, want := wrapped.BoundingBox(), box.BoundingBox()
	for axis := 0; axis < 3; axis++ {
		g, w := got.AxisInterval(axis), want.AxisInterval(axis)
		if math.Abs(g.Min-w.Min) > 1e-9 || math.Abs(g.Max-w.Max) > 1e-9 {
			t.Errorf("Axis %d: expected %v after a full turn, got %v", axis, w, g)
		}
	}
}

func TestRotateY_BoundingBoxContainsHits(t *testing.T) {
	box := NewBox(core.NewVec3(-1, 0, -0.5), core.NewVec3(1, 2, 0.5), nil)
	random := rand.New(rand.NewSource(42))

	for _, angle := range []float64{15, 45, -30, 120} {
		rotated := NewRotateY(box, angle)
		bbox := rotated.BoundingBox()
		// Allow for rounding in hit points that land on the box faces
		tolerant := core.NewAABB(bbox.X.Expand(1e-9), bbox.Y.Expand(1e-9), bbox.Z.Expand(1e-9))

		hits := 0
		for i := 0; i < 2000; i++ {
			origin := core.NewVec3(random.Float64()*8-4, random.Float64()*4-1, random.Float64()*8-4).Multiply(2)
			target := core.NewVec3(random.Float64()*2-1, random.Float64()*2, random.Float64()*2-1)
			ray := core.NewRay(origin, target.Subtract(origin))

			hit, ok := rotated.Hit(ray, forever)
			if !ok {
				continue
			}
			hits++

			if !tolerant.Contains(hit.Point) {
				t.Fatalf("Angle %f: hit point %v outside rotated box %v", angle, hit.Point, bbox)
			}
			if !bbox.Hit(ray, forever) {
				t.Fatalf("Angle %f: ray hits object but misses its box", angle)
			}
			if math.Abs(hit.Normal.Length()-1) > 1e-9 {
				t.Fatalf("Angle %f: rotated normal not unit length", angle)
			}
		}

		if hits == 0 {
			t.Fatalf("Angle %f: no rays hit the rotated box", angle)
		}
	}
}
