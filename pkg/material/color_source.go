package material

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// ColorSource provides spatially-varying colors for materials
type ColorSource interface {
	// Evaluate returns color at given UV coordinates and 3D point
	// UV is used for image textures, point for solid textures
	Evaluate(uv core.Vec2, point core.Vec3) core.Vec3
}

// SolidColor provides uniform color
type SolidColor struct {
	Color core.Vec3
}

// NewSolidColor creates a new solid color source
func NewSolidColor(color core.Vec3) *SolidColor {
	return &SolidColor{Color: color}
}

// Evaluate returns the solid color regardless of UV or position
func (s *SolidColor) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	return s.Color
}

// CheckerTexture alternates between two sources on a 3D grid of cubes with side Scale
type CheckerTexture struct {
	invScale  float64
	Even, Odd ColorSource
}

// NewCheckerTexture creates a solid checker pattern from two sources
func NewCheckerTexture(scale float64, even, odd ColorSource) *CheckerTexture {
	return &CheckerTexture{invScale: 1.0 / scale, Even: even, Odd: odd}
}

// NewCheckerTextureFromColors creates a solid checker pattern from two colors
func NewCheckerTextureFromColors(scale float64, even, odd core.Vec3) *CheckerTexture {
	return NewCheckerTexture(scale, NewSolidColor(even), NewSolidColor(odd))
}

// Evaluate picks Even or Odd by the parity of the cell containing point
func (c *CheckerTexture) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	x := int(math.Floor(point.X * c.invScale))
	y := int(math.Floor(point.Y * c.invScale))
	z := int(math.Floor(point.Z * c.invScale))

	if (x+y+z)%2 == 0 {
		return c.Even.Evaluate(uv, point)
	}
	return c.Odd.Evaluate(uv, point)
}
