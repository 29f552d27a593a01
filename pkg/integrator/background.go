package integrator

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// Background supplies the radiance of rays that escape the scene
type Background interface {
	Color(ray core.Ray) core.Vec3
}

// ConstantBackground returns the same color in every direction
type ConstantBackground struct {
	Value core.Vec3
}

// NewConstantBackground creates a uniform background
func NewConstantBackground(color core.Vec3) *ConstantBackground {
	return &ConstantBackground{Value: color}
}

// Color returns the constant color
func (b *ConstantBackground) Color(ray core.Ray) core.Vec3 {
	return b.Value
}

// GradientBackground blends vertically from Bottom (straight down) to Top (straight up)
type GradientBackground struct {
	Bottom core.Vec3
	Top    core.Vec3
}

// NewGradientBackground creates a vertical gradient background
func NewGradientBackground(bottom, top core.Vec3) *GradientBackground {
	return &GradientBackground{Bottom: bottom, Top: top}
}

// NewSkyBackground returns the white to light blue sky gradient
func NewSkyBackground() *GradientBackground {
	return NewGradientBackground(core.NewVec3(1.0, 1.0, 1.0), core.NewVec3(0.5, 0.7, 1.0))
}

// Color interpolates on the y component of the normalized direction
func (b *GradientBackground) Color(ray core.Ray) core.Vec3 {
	t := 0.5 * (ray.Direction.Normalize().Y + 1.0)
	return b.Bottom.Lerp(b.Top, t)
}
