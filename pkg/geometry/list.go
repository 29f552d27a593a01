package geometry

import (
	"fmt"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// List is a flat collection of shapes tested in order
type List struct {
	Shapes []Shape
}

// NewList creates a list from the given shapes
func NewList(shapes ...Shape) *List {
	return &List{Shapes: shapes}
}

// Add appends a shape to the list
func (l *List) Add(shape Shape) {
	l.Shapes = append(l.Shapes, shape)
}

// Hit returns the closest hit among all shapes
func (l *List) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	var closest *material.HitRecord
	closestSoFar := tMax

	for _, shape := range l.Shapes {
		if hit, ok := shape.Hit(ray, tMin, closestSoFar); ok {
			closest = hit
			closestSoFar = hit.T
		}
	}

	return closest, closest != nil
}

// BoundingBox returns the union of all member boxes.
// An empty list has no box, and any member error is returned unchanged.
func (l *List) BoundingBox(time0, time1 float64) (core.AABB, error) {
	if len(l.Shapes) == 0 {
		return core.AABB{}, fmt.Errorf("list bounding box: %w", core.ErrEmptyScene)
	}

	var result core.AABB
	for i, shape := range l.Shapes {
		box, err := shape.BoundingBox(time0, time1)
		if err != nil {
			return core.AABB{}, err
		}
		if i == 0 {
			result = box
		} else {
			result = result.Union(box)
		}
	}
	return result, nil
}
