package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// NewCornellScene creates a classic Cornell box with two rotated boxes and a ceiling light
func NewCornellScene(opts Options) (*Scene, error) {
	camera := renderer.CameraConfig{
		LookFrom:    core.NewVec3(278, 278, -800), // Outside the open side looking in
		LookAt:      core.NewVec3(278, 278, 0),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        40,
		AspectRatio: 1.0,
	}
	s := newScene("cornell", camera, integrator.NewConstantBackground(core.Vec3{}))
	s.SamplingConfig.SamplesPerPixel = 200

	red := material.NewLambertian(core.NewVec3(0.65, 0.05, 0.05))
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	green := material.NewLambertian(core.NewVec3(0.12, 0.45, 0.15))
	light := material.NewDiffuseLight(core.NewVec3(15, 15, 15))

	// Walls
	s.Add(
		geometry.NewPlaneX(0, 555, 0, 555, 555, green),
		geometry.NewPlaneX(0, 555, 0, 555, 0, red),
		geometry.NewPlaneY(213, 343, 227, 332, 554, light),
		geometry.NewPlaneY(0, 555, 0, 555, 0, white),
		geometry.NewPlaneY(0, 555, 0, 555, 555, white),
		geometry.NewPlaneZ(0, 555, 0, 555, 555, white),
	)

	// Boxes
	tall := geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 330, 165), white)
	short := geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 165, 165), white)
	s.Add(
		geometry.NewTranslate(geometry.NewRotateY(tall, 15), core.NewVec3(265, 0, 295)),
		geometry.NewTranslate(geometry.NewRotateY(short, -18), core.NewVec3(130, 0, 65)),
	)
	return s, nil
}
