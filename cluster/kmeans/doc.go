// Package kmeans provides deterministic, demand-weighted bisecting k-means
// used to bootstrap a partition for each first-stage coarse group before
// feasibility repair (spec §4.4).
package kmeans
