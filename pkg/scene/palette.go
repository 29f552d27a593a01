package scene

import (
	"image/color"

	"github.com/df07/go-pathtracer/pkg/core"
)

// named converts an sRGB named color to a linear albedo.
// Squaring inverts the gamma-2 encoding applied to rendered pixels.
func named(c color.RGBA) core.Vec3 {
	v := core.NewVec3(float64(c.R), float64(c.G), float64(c.B)).Divide(255)
	return v.MultiplyVec(v)
}
