package core

import "math"

// ONB is an orthonormal basis whose W axis is aligned with a given normal
type ONB struct {
	u, v, w Vec3
}

// NewONB builds a basis around normal n
func NewONB(n Vec3) ONB {
	w := n.Normalize()

	// Pick a helper axis that is not nearly parallel to w
	a := NewVec3(1, 0, 0)
	if math.Abs(w.X) > 0.9 {
		a = NewVec3(0, 1, 0)
	}
	v := w.Cross(a).Normalize()
	u := w.Cross(v)

	return ONB{u: u, v: v, w: w}
}

// U returns the first tangent axis
func (o ONB) U() Vec3 { return o.u }

// V returns the second tangent axis
func (o ONB) V() Vec3 { return o.v }

// W returns the normal axis
func (o ONB) W() Vec3 { return o.w }

// Transform maps local coordinates (x along U, y along V, z along W) to world space
func (o ONB) Transform(local Vec3) Vec3 {
	return o.u.Multiply(local.X).Add(o.v.Multiply(local.Y)).Add(o.w.Multiply(local.Z))
}
