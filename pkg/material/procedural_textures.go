package material

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// CheckerTexture is a solid 3D checker pattern that alternates between two
// nested color sources based on the sign of sin(10x)·sin(10y)·sin(10z)
type CheckerTexture struct {
	Odd  ColorSource
	Even ColorSource
}

// NewCheckerTexture creates a checker from two nested color sources
func NewCheckerTexture(odd, even ColorSource) *CheckerTexture {
	return &CheckerTexture{Odd: odd, Even: even}
}

// NewCheckerColors creates a checker alternating between two solid colors
func NewCheckerColors(odd, even core.Vec3) *CheckerTexture {
	return NewCheckerTexture(NewSolidColor(odd), NewSolidColor(even))
}

// Evaluate picks the odd source where the sine product is negative and the even source otherwise
func (c *CheckerTexture) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	sines := math.Sin(10*point.X) * math.Sin(10*point.Y) * math.Sin(10*point.Z)
	if sines < 0 {
		return c.Odd.Evaluate(uv, point)
	}
	return c.Even.Evaluate(uv, point)
}
