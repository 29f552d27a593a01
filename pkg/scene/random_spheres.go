package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/material"
)

// NewRandomSpheresScene creates the classic field of small spheres around three large ones.
// Diffuse spheres move upward during the shutter interval. Placement is seeded (default 1)
// so the layout is the same on every run.
func NewRandomSpheresScene(opts Options) (*Scene, error) {
	camera := featureCamera()
	s := newScene("random-spheres", camera, integrator.NewSkyBackground())

	seed := opts.Seed
	if seed == 0 {
		seed = 1
	}
	rng := core.NewSeededSampler(seed)

	checker := material.NewCheckerColors(core.NewVec3(0.2, 0.3, 0.1), core.NewVec3(0.9, 0.9, 0.9))
	s.Add(geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, material.NewTexturedLambertian(checker)))

	clearing := core.NewVec3(4, 0.2, 0)
	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			chooseMat := rng.Get1D()
			center := core.NewVec3(float64(a)+0.9*rng.Get1D(), 0.2, float64(b)+0.9*rng.Get1D())
			if center.Subtract(clearing).Length() <= 0.9 {
				continue
			}

			switch {
			case chooseMat < 0.8:
				albedo := rng.Get3D().MultiplyVec(rng.Get3D())
				center1 := center.Add(core.NewVec3(0, core.RandomInRange(rng, 0, 0.5), 0))
				s.Add(geometry.NewMovingSphere(center, center1, camera.Time0, camera.Time1, 0.2,
					material.NewLambertian(albedo)))
			case chooseMat < 0.95:
				albedo := core.NewVec3(
					core.RandomInRange(rng, 0.5, 1),
					core.RandomInRange(rng, 0.5, 1),
					core.RandomInRange(rng, 0.5, 1),
				)
				fuzz := core.RandomInRange(rng, 0, 0.5)
				s.Add(geometry.NewSphere(center, 0.2, material.NewMetal(albedo, fuzz)))
			default:
				s.Add(geometry.NewSphere(center, 0.2, material.NewDielectric(1.5)))
			}
		}
	}

	s.Add(
		geometry.NewSphere(core.NewVec3(0, 1, 0), 1.0, material.NewDielectric(1.5)),
		geometry.NewSphere(core.NewVec3(-4, 1, 0), 1.0, material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1))),
		geometry.NewSphere(core.NewVec3(4, 1, 0), 1.0, material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0.0)),
	)
	return s, nil
}
