package renderer

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Framebuffer holds gamma-encoded pixel colors in row-major order, row 0 at the top
type Framebuffer struct {
	Width  int
	Height int
	Pixels []core.Vec3 // Pixels[y*Width + x]
}

// NewFramebuffer allocates a black framebuffer
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		Width:  width,
		Height: height,
		Pixels: make([]core.Vec3, width*height),
	}
}

// At returns the color at pixel (x, y)
func (fb *Framebuffer) At(x, y int) core.Vec3 {
	return fb.Pixels[y*fb.Width+x]
}

// Set stores the color at pixel (x, y)
func (fb *Framebuffer) Set(x, y int, c core.Vec3) {
	fb.Pixels[y*fb.Width+x] = c
}

// RGBA converts pixel (x, y) to 8-bit color, failing for channels outside [0, 1]
func (fb *Framebuffer) RGBA(x, y int) (color.RGBA, error) {
	c, err := ColorToRGBA(fb.At(x, y))
	if err != nil {
		return color.RGBA{}, fmt.Errorf("pixel (%d, %d): %w", x, y, err)
	}
	return c, nil
}

// Image converts the framebuffer to an 8-bit image, clamping every channel to [0, 1] first.
// NaN channels become 0.
func (fb *Framebuffer) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			c, _ := ColorToRGBA(clampColor(fb.At(x, y)))
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

// ColorToRGBA converts a color with channels in [0, 1] to 8-bit channels as floor(255.999·c).
// Channels outside [0, 1] or NaN are an error wrapping core.ErrColorOutOfRange.
func ColorToRGBA(c core.Vec3) (color.RGBA, error) {
	r, err := channelToByte(c.X)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("red: %w", err)
	}
	g, err := channelToByte(c.Y)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("green: %w", err)
	}
	b, err := channelToByte(c.Z)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("blue: %w", err)
	}
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}

func channelToByte(v float64) (uint8, error) {
	if !(v >= 0 && v <= 1) {
		return 0, fmt.Errorf("%v: %w", v, core.ErrColorOutOfRange)
	}
	return uint8(255.999 * v), nil
}

// clampColor maps every channel into [0, 1], sending NaN to 0
func clampColor(c core.Vec3) core.Vec3 {
	clamp := func(v float64) float64 {
		if math.IsNaN(v) {
			return 0
		}
		return math.Max(0, math.Min(1, v))
	}
	return core.NewVec3(clamp(c.X), clamp(c.Y), clamp(c.Z))
}
