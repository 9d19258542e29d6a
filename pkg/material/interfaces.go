package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/pdf"
)

// Material interface for objects that can scatter or emit light
type Material interface {
	// Scatter generates a scattered ray. It returns false when the ray is absorbed.
	Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool)

	// ScatteringPDF returns the density the material assigns to the scattered direction
	ScatteringPDF(rayIn core.Ray, hit HitRecord, scattered core.Ray) float64

	// Emitted returns the light emitted at the hit point
	Emitted(rayIn core.Ray, hit HitRecord) core.Vec3
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Scattered   core.Ray  // The scattered ray
	Attenuation core.Vec3 // Color attenuation
	PDF         float64   // Density of Scattered's direction (0 for specular materials)
	Sampler     pdf.PDF   // Distribution Scattered was drawn from, nil for specular
}

// IsSpecular returns true if this is a delta scatter with no usable PDF
func (s ScatterResult) IsSpecular() bool {
	return s.Sampler == nil
}

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	Point     core.Vec3 // Point of intersection
	Normal    core.Vec3 // Surface normal at intersection, facing against the ray
	T         float64   // Parameter t along the ray
	UV        core.Vec2 // Surface coordinates for texture lookup
	FrontFace bool      // Whether ray hit the front face
	Material  Material  // Material of the hit object
}

// SetFaceNormal sets the normal vector and determines front/back face.
// outwardNormal must be unit length.
func (h *HitRecord) SetFaceNormal(ray core.Ray, outwardNormal core.Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}

// NoEmission can be embedded by materials that do not emit light
type NoEmission struct{}

// Emitted returns black
func (NoEmission) Emitted(rayIn core.Ray, hit HitRecord) core.Vec3 {
	return core.Vec3{}
}
