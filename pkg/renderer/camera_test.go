package renderer

import (
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestCamera_CenterRayPointsAtTarget(t *testing.T) {
	config := CameraConfig{
		LookFrom:    core.NewVec3(13, 2, 3),
		LookAt:      core.NewVec3(0, 0, 0),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        20,
		AspectRatio: 16.0 / 9.0,
	}
	camera := NewCamera(config)
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))

	ray := camera.GetRay(0.5, 0.5, sampler)
	if ray.Origin != config.LookFrom {
		t.Errorf("Expected pinhole origin %v, got %v", config.LookFrom, ray.Origin)
	}

	expected := config.LookAt.Subtract(config.LookFrom).Normalize()
	if ray.Direction.Normalize().Subtract(expected).Length() > 1e-9 {
		t.Errorf("Expected direction %v, got %v", expected, ray.Direction.Normalize())
	}
}

func TestCamera_FieldOfView(t *testing.T) {
	camera := NewCamera(CameraConfig{
		LookFrom:    core.NewVec3(0, 0, 0),
		LookAt:      core.NewVec3(0, 0, -1),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        90,
		AspectRatio: 2,
	})
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(1)))

	// A 90° vertical field spans 45° above and below the view axis
	top := camera.GetRay(0.5, 1, sampler).Direction.Normalize()
	if math.Abs(top.Y-math.Sqrt2/2) > 1e-9 {
		t.Errorf("Expected top edge at 45°, got direction %v", top)
	}

	right := camera.GetRay(1, 0.5, sampler).Direction
	if math.Abs(right.X/-right.Z-2) > 1e-9 {
		t.Errorf("Expected horizontal half-extent 2 for aspect 2, got %v", right)
	}
}

func TestCamera_DefocusStaysOnLens(t *testing.T) {
	config := CameraConfig{
		LookFrom:      core.NewVec3(0, 0, 5),
		LookAt:        core.NewVec3(0, 0, 0),
		Up:            core.NewVec3(0, 1, 0),
		VFov:          40,
		AspectRatio:   1,
		Aperture:      0.5,
		FocusDistance: 5,
	}
	camera := NewCamera(config)
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(7)))

	focusPoint := core.NewVec3(0, 0, 0)
	for i := 0; i < 100; i++ {
		ray := camera.GetRay(0.5, 0.5, sampler)
		offset := ray.Origin.Subtract(config.LookFrom)
		if offset.Length() > config.Aperture/2+1e-9 {
			t.Fatalf("Origin offset %v exceeds lens radius", offset)
		}
		if math.Abs(offset.Z) > 1e-9 {
			t.Fatalf("Origin offset %v leaves the lens plane", offset)
		}
		// Every center ray passes through the in-focus point
		if ray.At(1).Subtract(focusPoint).Length() > 1e-9 {
			t.Fatalf("Center ray misses focus point: %v", ray.At(1))
		}
	}
}

func TestCamera_ShutterTime(t *testing.T) {
	config := DefaultCameraConfig()
	config.Time0, config.Time1 = 0.25, 0.75
	camera := NewCamera(config)
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(3)))

	sawDifferent := false
	first := camera.GetRay(0.5, 0.5, sampler).Time
	for i := 0; i < 100; i++ {
		ray := camera.GetRay(0.5, 0.5, sampler)
		if ray.Time < 0.25 || ray.Time >= 0.75 {
			t.Fatalf("Ray time %f outside shutter interval", ray.Time)
		}
		if ray.Time != first {
			sawDifferent = true
		}
	}
	if !sawDifferent {
		t.Error("Expected ray times to vary across the shutter interval")
	}

	still := NewCamera(DefaultCameraConfig())
	if ray := still.GetRay(0.5, 0.5, sampler); ray.Time != 0 {
		t.Errorf("Expected time 0 for a closed shutter, got %f", ray.Time)
	}
}
