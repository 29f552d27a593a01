package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// rectThickness pads the flat axis of a rectangle's bounding box so the slab test has a non-empty interval
const rectThickness = 1e-4

// Axis identifies a coordinate axis
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// inPlaneAxes returns the two axes spanning a rectangle perpendicular to a
func (a Axis) inPlaneAxes() (int, int) {
	switch a {
	case AxisX:
		return 1, 2
	case AxisY:
		return 0, 2
	default:
		return 0, 1
	}
}

// AxisRect is a finite rectangle lying in the plane Axis = K, spanning [A0, A1] x [B0, B1]
// along the two remaining axes (Y,Z for X; X,Z for Y; X,Y for Z). The outward normal is +Axis.
type AxisRect struct {
	Axis     Axis
	A0, A1   float64
	B0, B1   float64
	K        float64
	Material material.Material
}

// NewPlaneX creates a rectangle in the plane x = k spanning y in [y0, y1] and z in [z0, z1]
func NewPlaneX(y0, y1, z0, z1, k float64, mat material.Material) *AxisRect {
	return &AxisRect{Axis: AxisX, A0: y0, A1: y1, B0: z0, B1: z1, K: k, Material: mat}
}

// NewPlaneY creates a rectangle in the plane y = k spanning x in [x0, x1] and z in [z0, z1]
func NewPlaneY(x0, x1, z0, z1, k float64, mat material.Material) *AxisRect {
	return &AxisRect{Axis: AxisY, A0: x0, A1: x1, B0: z0, B1: z1, K: k, Material: mat}
}

// NewPlaneZ creates a rectangle in the plane z = k spanning x in [x0, x1] and y in [y0, y1]
func NewPlaneZ(x0, x1, y0, y1, k float64, mat material.Material) *AxisRect {
	return &AxisRect{Axis: AxisZ, A0: x0, A1: x1, B0: y0, B1: y1, K: k, Material: mat}
}

// Hit intersects the ray with the rectangle's plane and checks the in-plane bounds
func (r *AxisRect) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	k := int(r.Axis)
	dk := ray.Direction.Axis(k)
	if dk == 0 {
		return nil, false // parallel to the plane
	}

	t := (r.K - ray.Origin.Axis(k)) / dk
	if t < tMin || t >= tMax {
		return nil, false
	}

	ai, bi := r.Axis.inPlaneAxes()
	point := ray.At(t)
	a := point.Axis(ai)
	b := point.Axis(bi)
	if a < r.A0 || a > r.A1 || b < r.B0 || b > r.B1 {
		return nil, false
	}

	hitRecord := &material.HitRecord{
		T:        t,
		Point:    point,
		UV:       core.NewVec2((a-r.A0)/(r.A1-r.A0), (b-r.B0)/(r.B1-r.B0)),
		Material: r.Material,
	}
	hitRecord.SetFaceNormal(ray, r.normal())

	return hitRecord, true
}

// BoundingBox returns the rectangle bounds padded along the flat axis
func (r *AxisRect) BoundingBox(time0, time1 float64) (core.AABB, error) {
	ai, bi := r.Axis.inPlaneAxes()
	var lo, hi [3]float64
	lo[ai], hi[ai] = r.A0, r.A1
	lo[bi], hi[bi] = r.B0, r.B1
	lo[r.Axis], hi[r.Axis] = r.K-rectThickness, r.K+rectThickness

	return core.NewAABB(
		core.NewVec3(lo[0], lo[1], lo[2]),
		core.NewVec3(hi[0], hi[1], hi[2]),
	), nil
}

func (r *AxisRect) normal() core.Vec3 {
	switch r.Axis {
	case AxisX:
		return core.NewVec3(1, 0, 0)
	case AxisY:
		return core.NewVec3(0, 1, 0)
	default:
		return core.NewVec3(0, 0, 1)
	}
}
