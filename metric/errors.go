package metric

import "errors"

// Sentinel errors for metric-graph construction, generalized from the
// teacher's dijkstra package error set.
var (
	// ErrEmptySource indicates Dijkstra was asked to run from an unset source.
	ErrEmptySource = errors.New("metric: source node ID is empty")

	// ErrNilGraph indicates a nil road graph was passed in.
	ErrNilGraph = errors.New("metric: road graph is nil")

	// ErrSourceNotFound indicates the source node does not exist in the graph.
	ErrSourceNotFound = errors.New("metric: source node not found in graph")

	// ErrNegativeWeight indicates a negative edge weight was found; the cost
	// model (§4.1) never produces one, so this signals malformed input.
	ErrNegativeWeight = errors.New("metric: negative edge weight encountered")

	// ErrNoBuildingSources indicates there are no Building-kind nodes to seed
	// shortest-path computations from.
	ErrNoBuildingSources = errors.New("metric: road graph has no building nodes")
)
