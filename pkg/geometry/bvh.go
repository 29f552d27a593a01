package geometry

import (
	"fmt"
	"sort"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// BVHNode is an interior node of a bounding volume hierarchy. Children are
// either further nodes or the original shapes. A node built over a single
// shape stores that shape as both children.
type BVHNode struct {
	Left  Shape
	Right Shape
	Box   core.AABB

	single bool // Left and Right are the same shape
}

// bvhItem caches a shape's bounding box for the duration of a build
type bvhItem struct {
	shape Shape
	box   core.AABB
}

// NewBVH builds a hierarchy over shapes for the shutter interval [time0, time1].
// The split axis at every level is drawn from sampler. The input slice is not modified.
//
// Building over zero shapes fails with core.ErrEmptyScene. Any shape whose
// bounding box cannot be computed aborts the build with that shape's error.
func NewBVH(shapes []Shape, time0, time1 float64, sampler core.Sampler) (*BVHNode, error) {
	if len(shapes) == 0 {
		return nil, fmt.Errorf("build bvh: %w", core.ErrEmptyScene)
	}

	items := make([]bvhItem, len(shapes))
	for i, shape := range shapes {
		box, err := shape.BoundingBox(time0, time1)
		if err != nil {
			return nil, fmt.Errorf("build bvh: shape %d: %w", i, err)
		}
		items[i] = bvhItem{shape: shape, box: box}
	}

	return buildBVH(items, sampler), nil
}

// buildBVH recursively splits items at the median along a random axis
func buildBVH(items []bvhItem, sampler core.Sampler) *BVHNode {
	axis := int(sampler.Get1D() * 3)
	if axis > 2 {
		axis = 2
	}

	node := &BVHNode{}
	switch len(items) {
	case 1:
		node.Left, node.Right = items[0].shape, items[0].shape
		node.Box = items[0].box
		node.single = true
		return node
	case 2:
		first, second := items[0], items[1]
		if !boxLess(first.box, second.box, axis) {
			first, second = second, first
		}
		node.Left, node.Right = first.shape, second.shape
		node.Box = first.box.Union(second.box)
		return node
	}

	sortItemsByAxis(items, axis)
	mid := len(items) / 2
	left := buildBVH(items[:mid], sampler)
	right := buildBVH(items[mid:], sampler)

	node.Left, node.Right = left, right
	node.Box = left.Box.Union(right.Box)
	return node
}

// boxLess orders boxes by their minimum corner along axis
func boxLess(a, b core.AABB, axis int) bool {
	return a.Min.Axis(axis) < b.Min.Axis(axis)
}

// sortItemsByAxis sorts items by the minimum of their bounding box along the specified axis
func sortItemsByAxis(items []bvhItem, axis int) {
	sort.SliceStable(items, func(i, j int) bool {
		return boxLess(items[i].box, items[j].box, axis)
	})
}

// Hit tests the node box, then the left child, then the right child bounded by any left hit
func (n *BVHNode) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	if _, _, ok := n.Box.Hit(ray, tMin, tMax); !ok {
		return nil, false
	}

	leftHit, hitLeft := n.Left.Hit(ray, tMin, tMax)
	if hitLeft {
		tMax = leftHit.T
	}

	if rightHit, hitRight := n.Right.Hit(ray, tMin, tMax); hitRight {
		return rightHit, true
	}
	return leftHit, hitLeft
}

// BoundingBox returns the box computed at build time
func (n *BVHNode) BoundingBox(time0, time1 float64) (core.AABB, error) {
	return n.Box, nil
}

// bvhStats contains statistics about the BVH structure
type bvhStats struct {
	totalNodes int
	leafShapes int
	maxDepth   int
}

// getStats returns statistics about the BVH structure
func (n *BVHNode) getStats() bvhStats {
	stats := bvhStats{}
	n.collectStats(0, &stats)
	return stats
}

// collectStats recursively collects statistics about the BVH
func (n *BVHNode) collectStats(depth int, stats *bvhStats) {
	stats.totalNodes++
	if depth > stats.maxDepth {
		stats.maxDepth = depth
	}

	children := []Shape{n.Left}
	if !n.single {
		children = append(children, n.Right)
	}
	for _, child := range children {
		if node, ok := child.(*BVHNode); ok {
			node.collectStats(depth+1, stats)
		} else {
			stats.leafShapes++
		}
	}
}
