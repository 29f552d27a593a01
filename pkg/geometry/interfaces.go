package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Shape interface for objects that can be hit by rays
type Shape interface {
	// Hit returns the closest intersection with parameter in [tMin, tMax]
	Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool)

	// BoundingBox returns a box enclosing the shape over the shutter interval [time0, time1].
	// Shapes without finite extent return an error wrapping core.ErrNoBoundingBox.
	BoundingBox(time0, time1 float64) (core.AABB, error)
}
