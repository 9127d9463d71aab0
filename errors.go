package shape2d

import "errors"

// Triangulation and batching errors.
var (
	// ErrUnsupportedFill is returned when a shape requests a gradient
	// fill. Gradient fills are accepted by the data model but have no
	// triangulation; callers must use FillSolid or FillEmpty.
	ErrUnsupportedFill = errors.New("shape2d: gradient fill is not supported")

	// ErrInvalidGeometry is returned when a shape carries parameters
	// that cannot produce well-defined triangles, such as a circle with
	// fewer than three sides or a negative stroke width.
	ErrInvalidGeometry = errors.New("shape2d: invalid geometry")

	// ErrBatchFinished is returned when Finish is called on a batch
	// that has already been finished.
	ErrBatchFinished = errors.New("shape2d: batch already finished")
)
