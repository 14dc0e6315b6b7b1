package kmeans

import "errors"

var (
	// ErrEmptyInput indicates BisectingKMeans was called with no points.
	ErrEmptyInput = errors.New("kmeans: no points supplied")

	// ErrNonPositiveK indicates K was configured at or below zero.
	ErrNonPositiveK = errors.New("kmeans: K must be positive")

	// ErrZeroTotalWeight indicates every point has zero weight, making
	// weighted k-means++ seeding undefined.
	ErrZeroTotalWeight = errors.New("kmeans: total point weight is zero")
)
