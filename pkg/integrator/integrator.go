package integrator

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
)

// Scene is the view of a scene needed to trace rays through it
type Scene interface {
	GetWorld() geometry.Shape
	GetBackground() Background
}

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor computes the radiance arriving along ray
	RayColor(ray core.Ray, scene Scene, sampler core.Sampler) core.Vec3
}
