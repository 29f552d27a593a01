package integrator

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// MinHitDistance is the smallest accepted hit parameter. It keeps scattered
// rays from re-hitting the surface they start on.
const MinHitDistance = 0.001

// PathTracingIntegrator implements unidirectional path tracing
type PathTracingIntegrator struct {
	config core.SamplingConfig
}

// NewPathTracingIntegrator creates a new path tracing integrator
func NewPathTracingIntegrator(config core.SamplingConfig) *PathTracingIntegrator {
	return &PathTracingIntegrator{
		config: config,
	}
}

// RayColor computes the color for a single ray using unidirectional path tracing.
//
// The recursion radiance(r, d) = emitted + attenuation·radiance(scattered, d-1),
// with radiance(r, 0) = 0 and the background for escaping rays, is unrolled into
// a loop that carries the product of attenuations as throughput.
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, scene Scene, sampler core.Sampler) core.Vec3 {
	world := scene.GetWorld()
	background := scene.GetBackground()

	radiance := core.Vec3{}
	throughput := core.NewVec3(1, 1, 1)

	for depth := pt.config.MaxDepth; depth > 0; depth-- {
		hit, isHit := world.Hit(ray, MinHitDistance, math.Inf(1))
		if !isHit {
			return radiance.Add(throughput.MultiplyVec(background.Color(ray)))
		}

		if hit.Material == nil {
			return radiance
		}

		emitted := material.Emitted(hit.Material, *hit)
		radiance = radiance.Add(throughput.MultiplyVec(emitted))

		scatter, didScatter := hit.Material.Scatter(ray, *hit, sampler)
		if !didScatter {
			return radiance
		}

		throughput = throughput.MultiplyVec(scatter.Attenuation)
		ray = scatter.Scattered
	}

	// Bounce limit reached: no more light is gathered
	return radiance
}
