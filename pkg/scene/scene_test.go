package scene

import (
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

func writeTestTexture(t *testing.T) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 2))
	for x := 0; x < 4; x++ {
		img.Set(x, 0, color.RGBA{R: 0, G: 0, B: 255, A: 255})
		img.Set(x, 1, color.RGBA{R: 0, G: 128, B: 0, A: 255})
	}
	path := filepath.Join(t.TempDir(), "earth.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestList(t *testing.T) {
	scenes := List()
	want := []string{"cornell", "default", "earth", "random-spheres", "simple-light", "two-spheres"}
	if len(scenes) != len(want) {
		t.Fatalf("List() returned %d scenes, want %d", len(scenes), len(want))
	}
	for i, info := range scenes {
		if info.ID != want[i] {
			t.Errorf("scene %d = %q, want %q", i, info.ID, want[i])
		}
		if info.DisplayName == "" || info.Description == "" {
			t.Errorf("scene %q is missing display metadata", info.ID)
		}
	}
	if scenes[3].DisplayName != "Random Spheres" {
		t.Errorf("DisplayName = %q, want %q", scenes[3].DisplayName, "Random Spheres")
	}
}

func TestCreate_AllScenes(t *testing.T) {
	texture := writeTestTexture(t)
	for _, info := range List() {
		t.Run(info.ID, func(t *testing.T) {
			s, err := Create(info.ID, Options{TexturePath: texture})
			if err != nil {
				t.Fatalf("Create(%q) failed: %v", info.ID, err)
			}
			if s.GetCamera() == nil {
				t.Error("Camera not built")
			}
			if s.GetWorld() == nil {
				t.Error("World not built")
			}
			if s.GetBackground() == nil {
				t.Error("Background is nil")
			}
			cfg := s.SamplingConfig
			if cfg.Width <= 0 || cfg.Height <= 0 || cfg.SamplesPerPixel <= 0 || cfg.MaxDepth <= 0 {
				t.Errorf("Invalid sampling config %+v", cfg)
			}
		})
	}
}

func TestCreate_Errors(t *testing.T) {
	if _, err := Create("no-such-scene", Options{}); !errors.Is(err, ErrUnknownScene) {
		t.Errorf("Expected ErrUnknownScene, got %v", err)
	}

	missing := filepath.Join(t.TempDir(), "missing.jpg")
	if _, err := Create("earth", Options{TexturePath: missing}); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected ErrNotExist for missing texture, got %v", err)
	}
}

func TestCreate_Width(t *testing.T) {
	tests := []struct {
		scene  string
		width  int
		height int
	}{
		{"default", 160, 90},
		{"cornell", 64, 64},
		{"two-spheres", 0, 225}, // scene default
	}
	for _, tt := range tests {
		s, err := Create(tt.scene, Options{Width: tt.width})
		if err != nil {
			t.Fatalf("Create(%q) failed: %v", tt.scene, err)
		}
		if s.SamplingConfig.Height != tt.height {
			t.Errorf("%s width %d: height = %d, want %d", tt.scene, tt.width, s.SamplingConfig.Height, tt.height)
		}
	}
}

func TestRandomSpheres_Seeded(t *testing.T) {
	a, err := NewRandomSpheresScene(Options{})
	if err != nil {
		t.Fatal(err)
	}
	b, err := NewRandomSpheresScene(Options{Seed: 1})
	if err != nil {
		t.Fatal(err)
	}
	c, err := NewRandomSpheresScene(Options{Seed: 99})
	if err != nil {
		t.Fatal(err)
	}

	if len(a.Shapes) != len(b.Shapes) {
		t.Fatalf("Default seed produced %d shapes, seed 1 produced %d", len(a.Shapes), len(b.Shapes))
	}
	for i := range a.Shapes {
		boxA, _ := a.Shapes[i].BoundingBox(0, 1)
		boxB, _ := b.Shapes[i].BoundingBox(0, 1)
		if !boxA.Min.Equals(boxB.Min) || !boxA.Max.Equals(boxB.Max) {
			t.Fatalf("Shape %d differs between identical seeds", i)
		}
	}

	same := len(a.Shapes) == len(c.Shapes)
	if same {
		for i := range a.Shapes {
			boxA, _ := a.Shapes[i].BoundingBox(0, 1)
			boxC, _ := c.Shapes[i].BoundingBox(0, 1)
			if !boxA.Min.Equals(boxC.Min) {
				same = false
				break
			}
		}
	}
	if same {
		t.Error("Different seeds produced identical layouts")
	}
}

func TestPreprocess_Errors(t *testing.T) {
	mat := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))

	empty := newScene("empty", renderer.DefaultCameraConfig(), nil)
	if err := empty.Preprocess(); !errors.Is(err, core.ErrEmptyScene) {
		t.Errorf("Expected ErrEmptyScene, got %v", err)
	}

	unbounded := newScene("unbounded", renderer.DefaultCameraConfig(), nil)
	unbounded.Add(
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, mat),
		geometry.NewPlane(core.NewVec3(0, -0.5, 0), core.NewVec3(0, 1, 0), mat),
	)
	if err := unbounded.Preprocess(); !errors.Is(err, core.ErrNoBoundingBox) {
		t.Errorf("Expected ErrNoBoundingBox, got %v", err)
	}
	if unbounded.GetWorld() != nil {
		t.Error("World should stay unset after a failed build")
	}
}

func TestGetBackground_DefaultsToBlack(t *testing.T) {
	s := newScene("dark", renderer.DefaultCameraConfig(), nil)
	got := s.GetBackground().Color(core.NewRay(core.Vec3{}, core.NewVec3(0, 1, 0)))
	if !got.Equals(core.Vec3{}) {
		t.Errorf("Default background = %v, want black", got)
	}
}

func TestGetPrimitiveCount(t *testing.T) {
	s, err := NewCornellScene(Options{})
	if err != nil {
		t.Fatal(err)
	}
	// 6 walls + 2 boxes of 6 sides
	if got := s.GetPrimitiveCount(); got != 18 {
		t.Errorf("GetPrimitiveCount() = %d, want 18", got)
	}
}

func TestNamed(t *testing.T) {
	got := named(color.RGBA{R: 255, G: 0, B: 51, A: 255})
	want := core.NewVec3(1, 0, 0.04)
	if math.Abs(got.X-want.X) > 1e-9 || got.Y != 0 || math.Abs(got.Z-want.Z) > 1e-9 {
		t.Errorf("named() = %v, want %v", got, want)
	}
}

func TestRender_Cornell(t *testing.T) {
	s, err := Create("cornell", Options{Width: 12})
	if err != nil {
		t.Fatal(err)
	}
	cfg := s.SamplingConfig
	cfg.SamplesPerPixel = 4
	cfg.MaxDepth = 5

	opts := renderer.DefaultRenderOptions()
	opts.Logger = nil
	opts.ProgressInterval = 0
	opts.Seed = 3

	rt, err := renderer.NewRaytracer(s, cfg, opts)
	if err != nil {
		t.Fatal(err)
	}
	fb, stats, err := rt.Render(context.Background())
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if stats.TotalPixels != 12*12 {
		t.Errorf("TotalPixels = %d, want %d", stats.TotalPixels, 12*12)
	}

	lit := false
	for _, c := range fb.Pixels {
		for _, v := range []float64{c.X, c.Y, c.Z} {
			if math.IsNaN(v) || v < 0 {
				t.Fatalf("Invalid pixel value %v", c)
			}
		}
		if c.Length() > 0 {
			lit = true
		}
	}
	if !lit {
		t.Error("Cornell box rendered completely black")
	}
}
