package material

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

const bytesPerPixel = 3

// debugColor is returned by textures that have no pixel data
var debugColor = core.NewVec3(0, 1, 1)

// ImageTexture provides color from an 8-bit RGB raster
type ImageTexture struct {
	Width  int
	Height int
	Pixels []uint8 // Row-major RGB, top row first: Pixels[(y*Width+x)*3 + c]
}

// NewImageTexture creates a new image texture from raw RGB bytes
func NewImageTexture(width, height int, pixels []uint8) *ImageTexture {
	return &ImageTexture{
		Width:  width,
		Height: height,
		Pixels: pixels,
	}
}

// Evaluate samples the texture at given UV coordinates using nearest-neighbor filtering
func (t *ImageTexture) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	if t.Width <= 0 || t.Height <= 0 || len(t.Pixels) < t.Width*t.Height*bytesPerPixel {
		return debugColor
	}

	u := clamp01(uv.X)
	v := 1.0 - clamp01(uv.Y) // V=0 is bottom, image row 0 is top

	x := int(u * float64(t.Width))
	y := int(v * float64(t.Height))
	if x >= t.Width {
		x = t.Width - 1
	}
	if y >= t.Height {
		y = t.Height - 1
	}

	const scale = 1.0 / 255.0
	i := (y*t.Width + x) * bytesPerPixel
	return core.NewVec3(
		float64(t.Pixels[i])*scale,
		float64(t.Pixels[i+1])*scale,
		float64(t.Pixels[i+2])*scale,
	)
}

// clamp01 maps x into [0, 1], sending NaN to 0
func clamp01(x float64) float64 {
	if math.IsNaN(x) || x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
