package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// RotateY rotates an inner shape about the Y axis
type RotateY struct {
	Shape    Shape
	Degrees  float64
	sinTheta float64
	cosTheta float64
}

// NewRotateY wraps shape so that it appears rotated by degrees about the Y axis
func NewRotateY(shape Shape, degrees float64) *RotateY {
	radians := core.DegreesToRadians(degrees)
	return &RotateY{
		Shape:    shape,
		Degrees:  degrees,
		sinTheta: math.Sin(radians),
		cosTheta: math.Cos(radians),
	}
}

// toObject applies the inverse rotation
func (r *RotateY) toObject(v core.Vec3) core.Vec3 {
	return core.NewVec3(
		r.cosTheta*v.X-r.sinTheta*v.Z,
		v.Y,
		r.sinTheta*v.X+r.cosTheta*v.Z,
	)
}

// toWorld applies the rotation
func (r *RotateY) toWorld(v core.Vec3) core.Vec3 {
	return core.NewVec3(
		r.cosTheta*v.X+r.sinTheta*v.Z,
		v.Y,
		-r.sinTheta*v.X+r.cosTheta*v.Z,
	)
}

// Hit rotates the ray into object space, intersects, and rotates the hit back
func (r *RotateY) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	rotated := core.NewRayAtTime(r.toObject(ray.Origin), r.toObject(ray.Direction), ray.Time)

	hit, ok := r.Shape.Hit(rotated, tMin, tMax)
	if !ok {
		return nil, false
	}

	outward := hit.Normal
	if !hit.FrontFace {
		outward = outward.Negate()
	}

	hit.Point = r.toWorld(hit.Point)
	hit.SetFaceNormal(ray, r.toWorld(outward))
	return hit, true
}

// BoundingBox returns the box around all eight rotated corners of the inner box
func (r *RotateY) BoundingBox(time0, time1 float64) (core.AABB, error) {
	box, err := r.Shape.BoundingBox(time0, time1)
	if err != nil {
		return core.AABB{}, err
	}

	corners := box.Corners()
	for i := range corners {
		corners[i] = r.toWorld(corners[i])
	}
	return core.NewAABBFromPoints(corners[:]...), nil
}
