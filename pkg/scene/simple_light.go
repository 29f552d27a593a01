package scene

import (
	"golang.org/x/image/colornames"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// NewSimpleLightScene creates a sphere on checkered ground lit only by emissive objects
func NewSimpleLightScene(opts Options) (*Scene, error) {
	camera := renderer.CameraConfig{
		LookFrom:    core.NewVec3(26, 3, 6),
		LookAt:      core.NewVec3(0, 2, 0),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        20,
		AspectRatio: 16.0 / 9.0,
	}
	s := newScene("simple-light", camera, integrator.NewConstantBackground(core.Vec3{}))
	s.SamplingConfig.SamplesPerPixel = 400

	ground := material.NewTexturedLambertian(
		material.NewCheckerColors(named(colornames.Darkslategray), named(colornames.Lightgray)))
	subject := material.NewLambertian(named(colornames.Steelblue))
	light := material.NewDiffuseLight(core.NewVec3(4, 4, 4))

	s.Add(
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, ground),
		geometry.NewSphere(core.NewVec3(0, 2, 0), 2, subject),
		geometry.NewPlaneZ(3, 5, 1, 3, -2, light),
		geometry.NewSphere(core.NewVec3(0, 7, 0), 2, light),
	)
	return s, nil
}
