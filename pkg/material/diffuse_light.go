package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// DiffuseLight is an emitter that never scatters. It emits from both faces.
type DiffuseLight struct {
	Emit ColorSource
}

// NewDiffuseLight creates a light with a constant emission color
func NewDiffuseLight(emission core.Vec3) *DiffuseLight {
	return &DiffuseLight{Emit: NewSolidColor(emission)}
}

// NewTexturedDiffuseLight creates a light whose emission varies over its surface
func NewTexturedDiffuseLight(emit ColorSource) *DiffuseLight {
	return &DiffuseLight{Emit: emit}
}

// Scatter always absorbs
func (l *DiffuseLight) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	return ScatterResult{}, false
}

// ScatteringPDF is zero since lights do not scatter
func (l *DiffuseLight) ScatteringPDF(rayIn core.Ray, hit HitRecord, scattered core.Ray) float64 {
	return 0
}

// Emitted returns the emission color at the hit point
func (l *DiffuseLight) Emitted(rayIn core.Ray, hit HitRecord) core.Vec3 {
	return l.Emit.Evaluate(hit.UV, hit.Point)
}
