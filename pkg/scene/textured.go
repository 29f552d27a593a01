package scene

import (
	"golang.org/x/image/colornames"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/loaders"
	"github.com/df07/go-pathtracer/pkg/material"
)

// DefaultTexturePath is the globe image used by the earth scene
const DefaultTexturePath = "images/earthmap.jpg"

// NewTwoSpheresScene creates two large checkered spheres, one above the other
func NewTwoSpheresScene(opts Options) (*Scene, error) {
	camera := featureCamera()
	camera.Aperture = 0
	s := newScene("two-spheres", camera, integrator.NewSkyBackground())

	checker := material.NewTexturedLambertian(
		material.NewCheckerColors(named(colornames.Darkolivegreen), named(colornames.Whitesmoke)))
	s.Add(
		geometry.NewSphere(core.NewVec3(0, -10, 0), 10, checker),
		geometry.NewSphere(core.NewVec3(0, 10, 0), 10, checker),
	)
	return s, nil
}

// NewEarthScene creates a globe textured with the image at opts.TexturePath.
// A texture that cannot be loaded fails the scene.
func NewEarthScene(opts Options) (*Scene, error) {
	path := opts.TexturePath
	if path == "" {
		path = DefaultTexturePath
	}
	data, err := loaders.LoadImage(path)
	if err != nil {
		return nil, err
	}

	s := newScene("earth", featureCamera(), integrator.NewSkyBackground())
	surface := material.NewTexturedLambertian(data.Texture())
	s.Add(geometry.NewSphere(core.NewVec3(0, 0, 0), 2, surface))
	return s, nil
}
