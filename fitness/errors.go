// Package fitness evaluates a candidate cluster assignment: per cluster it
// builds a minimum spanning tree over the metric graph, orients it as a
// rooted tree at the center, propagates mass flow outward-to-inward by
// post-order traversal, sizes pipes from the catalogue, and sums cost
// (spec §4.7).
package fitness

import "errors"

var (
	// ErrEmptyCluster indicates a cluster has no members.
	ErrEmptyCluster = errors.New("fitness: cluster has no members")

	// ErrMissingCenter indicates a cluster's Center field is empty or not
	// among its members.
	ErrMissingCenter = errors.New("fitness: cluster center is not a member")

	// ErrDisconnectedCluster indicates the cluster's induced subgraph in
	// G_m is not fully connected (no spanning tree exists).
	ErrDisconnectedCluster = errors.New("fitness: cluster members are disconnected in the metric graph")

	// ErrNonPositiveDemand indicates a cluster's total demand is at or
	// below zero (spec §4.7 step 7: "if Σ demand ≤ 0, return penalty").
	ErrNonPositiveDemand = errors.New("fitness: cluster total demand is non-positive")
)
