// Package density implements the first-stage, weighted DBSCAN clusterer
// over the cost-weighted distance matrix derived from the metric graph
// (spec §4.3).
package density
