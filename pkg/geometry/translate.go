package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Translate moves an inner shape by a fixed offset
type Translate struct {
	Shape  Shape
	Offset core.Vec3
}

// NewTranslate wraps shape so that it appears moved by offset
func NewTranslate(shape Shape, offset core.Vec3) *Translate {
	return &Translate{Shape: shape, Offset: offset}
}

// Hit moves the ray into the inner shape's frame and the hit point back out
func (t *Translate) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	moved := core.NewRayAtTime(ray.Origin.Subtract(t.Offset), ray.Direction, ray.Time)

	hit, ok := t.Shape.Hit(moved, tMin, tMax)
	if !ok {
		return nil, false
	}

	hit.Point = hit.Point.Add(t.Offset)
	return hit, true
}

// BoundingBox returns the inner box shifted by the offset
func (t *Translate) BoundingBox(time0, time1 float64) (core.AABB, error) {
	box, err := t.Shape.BoundingBox(time0, time1)
	if err != nil {
		return core.AABB{}, err
	}
	return box.Translate(t.Offset), nil
}
