package scene

import (
	"fmt"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// bvhSeed fixes the split axes so a scene always builds the same hierarchy
const bvhSeed = 7

// Scene contains all the elements needed for rendering
type Scene struct {
	Name           string
	Camera         *renderer.Camera
	CameraConfig   renderer.CameraConfig
	Shapes         []geometry.Shape // Top-level objects in the scene
	Background     integrator.Background
	SamplingConfig core.SamplingConfig
	World          geometry.Shape // Acceleration structure over Shapes, set by Preprocess
}

// newScene creates an empty scene whose image height follows the camera aspect ratio
func newScene(name string, camera renderer.CameraConfig, background integrator.Background) *Scene {
	sampling := core.DefaultSamplingConfig()
	sampling.Height = heightFor(sampling.Width, camera.AspectRatio)
	return &Scene{
		Name:           name,
		CameraConfig:   camera,
		Background:     background,
		SamplingConfig: sampling,
	}
}

// Add appends shapes to the scene
func (s *Scene) Add(shapes ...geometry.Shape) {
	s.Shapes = append(s.Shapes, shapes...)
}

// SetWidth changes the image width, keeping the camera's aspect ratio
func (s *Scene) SetWidth(width int) {
	s.SamplingConfig.Width = width
	s.SamplingConfig.Height = heightFor(width, s.CameraConfig.AspectRatio)
}

func heightFor(width int, aspect float64) int {
	if aspect <= 0 {
		return width
	}
	return max(1, int(float64(width)/aspect))
}

// Preprocess prepares the scene for rendering: it builds the camera and a BVH over all shapes.
// Shapes without a bounding box and empty scenes are reported as errors.
func (s *Scene) Preprocess() error {
	bvh, err := geometry.NewBVH(s.Shapes, s.CameraConfig.Time0, s.CameraConfig.Time1, core.NewSeededSampler(bvhSeed))
	if err != nil {
		return fmt.Errorf("scene %q: %w", s.Name, err)
	}
	s.World = bvh
	s.Camera = renderer.NewCamera(s.CameraConfig)
	return nil
}

// GetWorld returns the root shape rays are traced against
func (s *Scene) GetWorld() geometry.Shape {
	return s.World
}

// GetBackground returns the scene background, black when none was set
func (s *Scene) GetBackground() integrator.Background {
	if s.Background == nil {
		return integrator.NewConstantBackground(core.Vec3{})
	}
	return s.Background
}

// GetCamera returns the camera built by Preprocess
func (s *Scene) GetCamera() *renderer.Camera {
	return s.Camera
}

// GetPrimitiveCount returns the total number of primitive objects in the scene
func (s *Scene) GetPrimitiveCount() int {
	count := 0
	for _, shape := range s.Shapes {
		count += countPrimitives(shape)
	}
	return count
}

func countPrimitives(shape geometry.Shape) int {
	switch obj := shape.(type) {
	case *geometry.List:
		n := 0
		for _, child := range obj.Shapes {
			n += countPrimitives(child)
		}
		return n
	case *geometry.Box:
		return 6
	case *geometry.Translate:
		return countPrimitives(obj.Shape)
	case *geometry.RotateY:
		return countPrimitives(obj.Shape)
	default:
		return 1
	}
}
