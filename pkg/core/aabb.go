package core

import "fmt"

// minAxisThickness is the smallest extent an AABB axis may have. Planar shapes such as
// quads would otherwise produce zero-width slabs that no ray can pass.
const minAxisThickness = 0.0001

// AABB represents an axis-aligned bounding box as one interval per axis
type AABB struct {
	X, Y, Z Interval
}

// NewAABB creates an AABB from per-axis intervals, padding degenerate axes
func NewAABB(x, y, z Interval) AABB {
	return AABB{X: x, Y: y, Z: z}.padToMinimums()
}

// EmptyAABB returns a box that contains nothing and is the identity for union
func EmptyAABB() AABB {
	return AABB{X: EmptyInterval(), Y: EmptyInterval(), Z: EmptyInterval()}
}

// NewAABBFromPoints creates an AABB with a and b as opposite corners, in any order
func NewAABBFromPoints(a, b Vec3) AABB {
	return NewAABB(
		NewInterval(min(a.X, b.X), max(a.X, b.X)),
		NewInterval(min(a.Y, b.Y), max(a.Y, b.Y)),
		NewInterval(min(a.Z, b.Z), max(a.Z, b.Z)),
	)
}

// NewAABBFromBoxes returns an AABB that bounds both a and b
func NewAABBFromBoxes(a, b AABB) AABB {
	return AABB{
		X: NewIntervalUnion(a.X, b.X),
		Y: NewIntervalUnion(a.Y, b.Y),
		Z: NewIntervalUnion(a.Z, b.Z),
	}
}

// Union returns an AABB that bounds both this AABB and another
func (aabb AABB) Union(other AABB) AABB {
	return NewAABBFromBoxes(aabb, other)
}

// AxisInterval returns the interval for axis 0 (X), 1 (Y) or 2 (Z).
// Any other index is a programming error and panics.
func (aabb AABB) AxisInterval(axis int) Interval {
	switch axis {
	case 0:
		return aabb.X
	case 1:
		return aabb.Y
	case 2:
		return aabb.Z
	}
	panic(fmt.Sprintf("aabb: axis index %d out of range", axis))
}

// Hit tests if a ray intersects with this AABB within rayT using the slab method.
// A zero direction component divides to ±Inf, which leaves that slab either
// unconstrained or impossible to satisfy, so parallel rays need no special case.
func (aabb AABB) Hit(ray Ray, rayT Interval) bool {
	for axis := 0; axis < 3; axis++ {
		ax := aabb.AxisInterval(axis)
		origin := ray.Origin.Axis(axis)
		invDirection := 1.0 / ray.Direction.Axis(axis)

		t0 := (ax.Min - origin) * invDirection
		t1 := (ax.Max - origin) * invDirection
		if t0 > t1 {
			t0, t1 = t1, t0
		}

		if t0 > rayT.Min {
			rayT.Min = t0
		}
		if t1 < rayT.Max {
			rayT.Max = t1
		}

		if rayT.Max <= rayT.Min {
			return false
		}
	}

	return true
}

// Contains reports whether point p lies inside the box, boundaries included
func (aabb AABB) Contains(p Vec3) bool {
	return aabb.X.Contains(p.X) && aabb.Y.Contains(p.Y) && aabb.Z.Contains(p.Z)
}

// LongestAxis returns the axis (0=X, 1=Y, 2=Z) with the longest extent
func (aabb AABB) LongestAxis() int {
	x, y, z := aabb.X.Size(), aabb.Y.Size(), aabb.Z.Size()
	if x > y && x > z {
		return 0
	}
	if y > z {
		return 1
	}
	return 2
}

// Translate returns the box shifted by offset
func (aabb AABB) Translate(offset Vec3) AABB {
	return AABB{
		X: aabb.X.Add(offset.X),
		Y: aabb.Y.Add(offset.Y),
		Z: aabb.Z.Add(offset.Z),
	}
}

// Center returns the center point of the AABB
func (aabb AABB) Center() Vec3 {
	return NewVec3(
		(aabb.X.Min+aabb.X.Max)*0.5,
		(aabb.Y.Min+aabb.Y.Max)*0.5,
		(aabb.Z.Min+aabb.Z.Max)*0.5,
	)
}

// Corners returns the eight corner points of the box
func (aabb AABB) Corners() [8]Vec3 {
	var corners [8]Vec3
	for i := 0; i < 8; i++ {
		x := aabb.X.Min
		if i&1 != 0 {
			x = aabb.X.Max
		}
		y := aabb.Y.Min
		if i&2 != 0 {
			y = aabb.Y.Max
		}
		z := aabb.Z.Min
		if i&4 != 0 {
			z = aabb.Z.Max
		}
		corners[i] = NewVec3(x, y, z)
	}
	return corners
}

func (aabb AABB) padToMinimums() AABB {
	if aabb.X.Size() < minAxisThickness {
		aabb.X = aabb.X.Expand(minAxisThickness)
	}
	if aabb.Y.Size() < minAxisThickness {
		aabb.Y = aabb.Y.Expand(minAxisThickness)
	}
	if aabb.Z.Size() < minAxisThickness {
		aabb.Z = aabb.Z.Expand(minAxisThickness)
	}
	return aabb
}

func (aabb AABB) String() string {
	return fmt.Sprintf("aabb(x: %v, y: %v, z: %v)", aabb.X, aabb.Y, aabb.Z)
}
