package network

import "errors"

// Sentinel errors for road-graph construction. Fatal errors name the
// offending entity by stable ID at the call site via fmt.Errorf("%w: ...").
var (
	// ErrNoRoads indicates the input road segment set is empty.
	ErrNoRoads = errors.New("network: no road segments supplied")

	// ErrNoBuildings indicates the input building set is empty.
	ErrNoBuildings = errors.New("network: no buildings supplied")

	// ErrNoAccessSegment indicates a building has no candidate road segment
	// to attach to (graph-construction error per spec §7).
	ErrNoAccessSegment = errors.New("network: building has no road in its neighborhood")

	// ErrDegenerateSegment indicates a road segment collapses to a single
	// point (zero length) and cannot carry a direction.
	ErrDegenerateSegment = errors.New("network: road segment has zero length")

	// ErrUnknownStrategy indicates an installation-strategy value outside
	// {street-following, greenfield, adjacent}.
	ErrUnknownStrategy = errors.New("network: unknown installation strategy")

	// ErrDuplicateBuildingID indicates two input buildings share a stable ID.
	ErrDuplicateBuildingID = errors.New("network: duplicate building ID")
)
