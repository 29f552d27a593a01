package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Box is an axis-aligned box made up of 6 rectangles sharing one material
type Box struct {
	Min, Max core.Vec3
	sides    *List
}

// NewBox creates a box spanning the two given corners
func NewBox(p0, p1 core.Vec3, mat material.Material) *Box {
	bounds := core.NewAABB(p0, p1)
	lo, hi := bounds.Min, bounds.Max

	sides := NewList(
		NewPlaneZ(lo.X, hi.X, lo.Y, hi.Y, hi.Z, mat),
		NewPlaneZ(lo.X, hi.X, lo.Y, hi.Y, lo.Z, mat),
		NewPlaneY(lo.X, hi.X, lo.Z, hi.Z, hi.Y, mat),
		NewPlaneY(lo.X, hi.X, lo.Z, hi.Z, lo.Y, mat),
		NewPlaneX(lo.Y, hi.Y, lo.Z, hi.Z, hi.X, mat),
		NewPlaneX(lo.Y, hi.Y, lo.Z, hi.Z, lo.X, mat),
	)

	return &Box{Min: lo, Max: hi, sides: sides}
}

// Hit returns the closest face hit
func (b *Box) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	return b.sides.Hit(ray, tMin, tMax)
}

// BoundingBox returns exactly the corners the box was built from
func (b *Box) BoundingBox(time0, time1 float64) (core.AABB, error) {
	return core.NewAABB(b.Min, b.Max), nil
}
