package scene

import (
	"golang.org/x/image/colornames"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// featureCamera is the elevated three-quarter view shared by the sphere scenes
func featureCamera() renderer.CameraConfig {
	return renderer.CameraConfig{
		LookFrom:      core.NewVec3(13, 2, 3),
		LookAt:        core.NewVec3(0, 0, 0),
		Up:            core.NewVec3(0, 1, 0),
		VFov:          20,
		AspectRatio:   16.0 / 9.0,
		Aperture:      0.1,
		FocusDistance: 10,
		Time0:         0,
		Time1:         1,
	}
}

// NewDefaultScene creates three spheres resting on a large ground sphere under a sky
func NewDefaultScene(opts Options) (*Scene, error) {
	camera := renderer.CameraConfig{
		LookFrom:    core.NewVec3(0, 0, 0),
		LookAt:      core.NewVec3(0, 0, -1),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        90,
		AspectRatio: 16.0 / 9.0,
	}
	s := newScene("default", camera, integrator.NewSkyBackground())

	ground := material.NewLambertian(named(colornames.Olive))
	center := material.NewLambertian(core.NewVec3(0.7, 0.3, 0.3))
	glass := material.NewDielectric(1.7)
	gold := material.NewMetal(named(colornames.Goldenrod), 1.0)

	s.Add(
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, center),
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, ground),
		geometry.NewSphere(core.NewVec3(-1, 0, -1), 0.5, glass),
		geometry.NewSphere(core.NewVec3(1, 0, -1), 0.5, gold),
	)
	return s, nil
}
