// Package fitness turns a candidate cluster assignment into the scalar
// fitness value the BRKGA decoder optimizes: per cluster, a minimum
// spanning tree over the metric graph rooted at the cluster's center,
// mass flow propagated outward-to-inward along it, pipes sized from the
// catalogue, and cost summed and normalized by total demand (spec §4.7).
package fitness
