package density

import "errors"

var (
	// ErrEmptyInput indicates DBSCAN was called with no points.
	ErrEmptyInput = errors.New("density: no points supplied")

	// ErrDimensionMismatch indicates the distance matrix's size does not
	// match the number of points or weights supplied.
	ErrDimensionMismatch = errors.New("density: matrix dimensions do not match point count")

	// ErrNonPositiveEps indicates Eps was configured at or below zero.
	ErrNonPositiveEps = errors.New("density: eps must be positive")

	// ErrNonPositiveMinSamples indicates MinSamples was configured at or
	// below zero.
	ErrNonPositiveMinSamples = errors.New("density: min samples must be positive")
)
