package renderer

import (
	"errors"
	"image/color"
	"math"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestColorToRGBA(t *testing.T) {
	tests := []struct {
		name     string
		input    core.Vec3
		expected color.RGBA
		wantErr  bool
	}{
		{"Black", core.NewVec3(0, 0, 0), color.RGBA{0, 0, 0, 255}, false},
		{"White", core.NewVec3(1, 1, 1), color.RGBA{255, 255, 255, 255}, false},
		{"Mid gray floors", core.NewVec3(0.5, 0.5, 0.5), color.RGBA{127, 127, 127, 255}, false},
		{"Mixed", core.NewVec3(0.2, 0.4, 0.8), color.RGBA{51, 102, 204, 255}, false},
		{"Above one", core.NewVec3(1.01, 0, 0), color.RGBA{}, true},
		{"Negative", core.NewVec3(0, -0.1, 0), color.RGBA{}, true},
		{"NaN", core.NewVec3(0, 0, math.NaN()), color.RGBA{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ColorToRGBA(tt.input)
			if tt.wantErr {
				if !errors.Is(err, core.ErrColorOutOfRange) {
					t.Errorf("Expected ErrColorOutOfRange, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestFramebuffer_RowMajorLayout(t *testing.T) {
	fb := NewFramebuffer(3, 2)
	fb.Set(2, 1, core.NewVec3(1, 0, 0))

	if fb.Pixels[1*3+2] != core.NewVec3(1, 0, 0) {
		t.Errorf("Expected pixel (2,1) at index 5, got %v", fb.Pixels)
	}
	if fb.At(2, 1) != core.NewVec3(1, 0, 0) {
		t.Errorf("At(2,1) returned %v", fb.At(2, 1))
	}
}

func TestFramebuffer_StrictAndClampedConversion(t *testing.T) {
	fb := NewFramebuffer(2, 1)
	fb.Set(0, 0, core.NewVec3(0.5, 0.5, 0.5))
	fb.Set(1, 0, core.NewVec3(2, -1, math.NaN()))

	if _, err := fb.RGBA(1, 0); !errors.Is(err, core.ErrColorOutOfRange) {
		t.Errorf("Expected strict conversion to fail, got %v", err)
	}

	img := fb.Image()
	if got := img.RGBAAt(1, 0); got != (color.RGBA{255, 0, 0, 255}) {
		t.Errorf("Expected clamped pixel (255,0,0), got %v", got)
	}
	if got := img.RGBAAt(0, 0); got != (color.RGBA{127, 127, 127, 255}) {
		t.Errorf("Expected gray pixel, got %v", got)
	}
}

func TestPixelStats_GammaEncodedAverage(t *testing.T) {
	var ps PixelStats
	if ps.GetColor() != (core.Vec3{}) {
		t.Error("Expected black for a pixel with no samples")
	}

	ps.AddSample(core.NewVec3(0.5, 0, 1))
	ps.AddSample(core.NewVec3(0, 0, 1))

	// mean (0.25, 0, 1) encodes to (0.5, 0, 1)
	if got := ps.GetColor(); !got.Equals(core.NewVec3(0.5, 0, 1)) {
		t.Errorf("Expected (0.5, 0, 1), got %v", got)
	}
}

func TestNewTileGrid_CoversImageOnce(t *testing.T) {
	width, height := 70, 33
	tiles := NewTileGrid(width, height, 16)

	covered := make([]int, width*height)
	for i, tile := range tiles {
		if tile.ID != i {
			t.Errorf("Expected tile ID %d, got %d", i, tile.ID)
		}
		for y := tile.Bounds.Min.Y; y < tile.Bounds.Max.Y; y++ {
			for x := tile.Bounds.Min.X; x < tile.Bounds.Max.X; x++ {
				covered[y*width+x]++
			}
		}
	}
	for i, count := range covered {
		if count != 1 {
			t.Fatalf("Pixel %d covered %d times", i, count)
		}
	}
}
