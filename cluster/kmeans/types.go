// Package kmeans implements deterministic, demand-weighted bisecting
// k-means with k-means++ seeding — the second-stage bootstrap partitioner,
// matching scikit-learn's BisectingKMeans(init='k-means++',
// bisecting_strategy='largest_cluster') fit with per-building sample
// weights.
package kmeans

import "github.com/dhplan/dhplanner/internal/geometry"

// Point is one weighted sample: a building's coordinates and demand.
type Point struct {
	ID     string
	Pos    geometry.Point
	Weight float64
}

// Result is a bisecting k-means partition: a label per point ID and the
// resulting cluster centers in coordinate space, indexed by label.
type Result struct {
	Labels  map[string]int
	Centers []geometry.Point
}
