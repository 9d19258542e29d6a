package core

import (
	"math"
	"testing"
)

func TestVec3_Arithmetic(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(4, -5, 6)

	tests := []struct {
		name     string
		result   Vec3
		expected Vec3
	}{
		{"Add", a.Add(b), NewVec3(5, -3, 9)},
		{"Subtract", a.Subtract(b), NewVec3(-3, 7, -3)},
		{"Multiply", a.Multiply(2), NewVec3(2, 4, 6)},
		{"Divide", a.Divide(2), NewVec3(0.5, 1, 1.5)},
		{"MultiplyVec", a.MultiplyVec(b), NewVec3(4, -10, 18)},
		{"Cross", a.Cross(b), NewVec3(27, 6, -13)},
		{"Negate", a.Negate(), NewVec3(-1, -2, -3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.result.Subtract(tt.expected).Length() > 1e-12 {
				t.Errorf("Expected %v, got %v", tt.expected, tt.result)
			}
		})
	}

	if d := a.Dot(b); d != 12 {
		t.Errorf("Expected dot product 12, got %f", d)
	}
}

func TestVec3_Normalize(t *testing.T) {
	v := NewVec3(3, 4, 0).Normalize()
	if math.Abs(v.Length()-1) > 1e-12 {
		t.Errorf("Expected unit length, got %f", v.Length())
	}

	if zero := (Vec3{}).Normalize(); zero != (Vec3{}) {
		t.Errorf("Normalizing zero vector should give zero, got %v", zero)
	}
}

func TestVec3_Axis(t *testing.T) {
	v := NewVec3(7, 8, 9)
	for axis, expected := range []float64{7, 8, 9} {
		if got := v.Axis(axis); got != expected {
			t.Errorf("Axis(%d): expected %f, got %f", axis, expected, got)
		}
	}
}

func TestVec3_AxisOutOfRangePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected panic for axis index 3")
		}
	}()
	NewVec3(1, 2, 3).Axis(3)
}

func TestVec3_IsNearZero(t *testing.T) {
	if !NewVec3(1e-9, -1e-9, 0).IsNearZero() {
		t.Error("Expected tiny vector to be near zero")
	}
	if NewVec3(1e-9, 1e-3, 0).IsNearZero() {
		t.Error("Expected vector with a 1e-3 component not to be near zero")
	}
}

func TestVec3_Reflect(t *testing.T) {
	v := NewVec3(1, -1, 0)
	n := NewVec3(0, 1, 0)
	expected := NewVec3(1, 1, 0)

	if r := v.Reflect(n); r.Subtract(expected).Length() > 1e-12 {
		t.Errorf("Expected reflection %v, got %v", expected, r)
	}
}

func TestVec3_RefractStraightThrough(t *testing.T) {
	// At normal incidence the direction is unchanged regardless of eta
	v := NewVec3(0, -1, 0)
	n := NewVec3(0, 1, 0)

	for _, eta := range []float64{1.0, 1.0 / 1.5, 1.5} {
		r := v.Refract(n, eta)
		if r.Subtract(v).Length() > 1e-9 {
			t.Errorf("eta=%f: expected %v, got %v", eta, v, r)
		}
	}
}

func TestVec3_RefractSnell(t *testing.T) {
	eta := 1.0 / 1.5
	theta := math.Pi / 4
	v := NewVec3(math.Sin(theta), -math.Cos(theta), 0)
	n := NewVec3(0, 1, 0)

	r := v.Refract(n, eta)
	sinOut := r.X / r.Length()
	expected := eta * math.Sin(theta)

	if math.Abs(sinOut-expected) > 1e-9 {
		t.Errorf("Snell's law violated: sin(out)=%f, expected %f", sinOut, expected)
	}
}

func TestVec3_GammaCorrect(t *testing.T) {
	v := NewVec3(0.25, 1, -0.5).GammaCorrect(2)
	expected := NewVec3(0.5, 1, 0)
	if v.Subtract(expected).Length() > 1e-12 {
		t.Errorf("Expected %v, got %v", expected, v)
	}
}

func TestVec3_Luminance(t *testing.T) {
	if l := NewVec3(1, 1, 1).Luminance(); math.Abs(l-1) > 1e-12 {
		t.Errorf("White should have luminance 1, got %f", l)
	}
}

func TestInterval_ContainsVsSurrounds(t *testing.T) {
	i := NewInterval(0, 1)

	tests := []struct {
		x         float64
		contains  bool
		surrounds bool
	}{
		{-0.1, false, false},
		{0, true, false},
		{0.5, true, true},
		{1, true, false},
		{1.1, false, false},
	}

	for _, tt := range tests {
		if got := i.Contains(tt.x); got != tt.contains {
			t.Errorf("Contains(%f): expected %t, got %t", tt.x, tt.contains, got)
		}
		if got := i.Surrounds(tt.x); got != tt.surrounds {
			t.Errorf("Surrounds(%f): expected %t, got %t", tt.x, tt.surrounds, got)
		}
	}
}

func TestInterval_EmptyAndUniverse(t *testing.T) {
	empty := EmptyInterval()
	universe := UniverseInterval()

	for _, x := range []float64{-1e300, 0, 1e300} {
		if empty.Contains(x) {
			t.Errorf("Empty interval should not contain %g", x)
		}
		if !universe.Contains(x) {
			t.Errorf("Universe interval should contain %g", x)
		}
	}

	if u := NewIntervalUnion(empty, NewInterval(2, 3)); u != NewInterval(2, 3) {
		t.Errorf("Union with empty should be identity, got %v", u)
	}
}

func TestInterval_Expand(t *testing.T) {
	i := NewInterval(1, 2).Expand(1)
	if i.Min != 0.5 || i.Max != 2.5 {
		t.Errorf("Expected [0.5, 2.5], got %v", i)
	}
}

func TestInterval_Clamp(t *testing.T) {
	i := NewInterval(0, 1)
	if i.Clamp(-3) != 0 || i.Clamp(0.3) != 0.3 || i.Clamp(9) != 1 {
		t.Error("Clamp did not limit values to the interval")
	}
}
