package core

import "errors"

var (
	// ErrNoBoundingBox is returned by shapes that have no finite extent.
	// Acceleration structures cannot be built over such shapes.
	ErrNoBoundingBox = errors.New("shape has no bounding box")

	// ErrEmptyScene is returned when a bounding box or hierarchy is requested for zero shapes
	ErrEmptyScene = errors.New("scene contains no shapes")

	// ErrColorOutOfRange is returned when a color channel lies outside [0, 1] or is NaN
	ErrColorOutOfRange = errors.New("color component out of range")
)
