package core

import (
	"math"
	"testing"
)

func TestAABB_Hit(t *testing.T) {
	box := NewAABB(NewVec3(-1, -1, -1), NewVec3(1, 1, 1))

	tests := []struct {
		name      string
		ray       Ray
		expectHit bool
		entry     float64
		exit      float64
	}{
		{
			name:      "Ray through center",
			ray:       NewRay(NewVec3(0, 0, -5), NewVec3(0, 0, 1)),
			expectHit: true,
			entry:     4,
			exit:      6,
		},
		{
			name:      "Ray pointing away",
			ray:       NewRay(NewVec3(0, 0, -5), NewVec3(0, 0, -1)),
			expectHit: false,
		},
		{
			name:      "Ray parallel to slab and outside",
			ray:       NewRay(NewVec3(0, 2, -5), NewVec3(0, 0, 1)),
			expectHit: false,
		},
		{
			name:      "Ray starting inside",
			ray:       NewRay(NewVec3(0, 0, 0), NewVec3(1, 0, 0)),
			expectHit: true,
			entry:     0,
			exit:      1,
		},
		{
			name:      "Negative direction",
			ray:       NewRay(NewVec3(5, 0, 0), NewVec3(-1, 0, 0)),
			expectHit: true,
			entry:     4,
			exit:      6,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry, exit, hit := box.Hit(tt.ray, 0, math.Inf(1))
			if hit != tt.expectHit {
				t.Fatalf("Expected hit=%v, got %v", tt.expectHit, hit)
			}
			if !hit {
				return
			}
			const tolerance = 1e-9
			if math.Abs(entry-tt.entry) > tolerance || math.Abs(exit-tt.exit) > tolerance {
				t.Errorf("Expected interval [%f, %f], got [%f, %f]", tt.entry, tt.exit, entry, exit)
			}
		})
	}
}

func TestAABB_HitOriginOnSlabBoundaryWithZeroDirection(t *testing.T) {
	// (min - origin) * +Inf is NaN here; the slab must not reject the ray.
	box := NewAABB(NewVec3(0, 0, 0), NewVec3(1, 1, 1))
	ray := NewRay(NewVec3(0, 0.5, -1), NewVec3(0, 0, 1))

	_, _, hit := box.Hit(ray, 0, math.Inf(1))
	if !hit {
		t.Error("Expected ray along the box face to hit")
	}
}

func TestAABB_HitRespectsRange(t *testing.T) {
	box := NewAABB(NewVec3(-1, -1, -1), NewVec3(1, 1, 1))
	ray := NewRay(NewVec3(0, 0, -5), NewVec3(0, 0, 1))

	if _, _, hit := box.Hit(ray, 0, 3); hit {
		t.Error("Expected miss when tMax ends before the box")
	}
	if _, _, hit := box.Hit(ray, 7, 10); hit {
		t.Error("Expected miss when tMin starts after the box")
	}
}

func TestAABB_Union(t *testing.T) {
	a := NewAABB(NewVec3(0, 0, 0), NewVec3(1, 1, 1))
	b := NewAABB(NewVec3(-2, 0.5, 0.5), NewVec3(0.5, 3, 0.5))

	u := a.Union(b)
	if u.Min != NewVec3(-2, 0, 0) || u.Max != NewVec3(1, 3, 1) {
		t.Errorf("Unexpected union %v", u)
	}
}

func TestNewAABB_OrdersCorners(t *testing.T) {
	box := NewAABB(NewVec3(1, -1, 3), NewVec3(-1, 2, 0))
	if box.Min != NewVec3(-1, -1, 0) || box.Max != NewVec3(1, 2, 3) {
		t.Errorf("Unexpected box %v", box)
	}
}

func TestAABB_Corners(t *testing.T) {
	box := NewAABB(NewVec3(0, 0, 0), NewVec3(1, 2, 3))
	corners := box.Corners()
	if NewAABBFromPoints(corners[:]...) != box {
		t.Errorf("Corners do not span the original box: %v", corners)
	}
}
