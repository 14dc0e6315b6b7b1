package repair

import "errors"

var (
	// ErrEmptyAssignment indicates Repair was called with no partitions.
	ErrEmptyAssignment = errors.New("repair: no partitions supplied")

	// ErrUnknownBuilding indicates a distance lookup was asked about a
	// building pair the caller's Distance function cannot resolve.
	ErrUnknownBuilding = errors.New("repair: unknown building ID")
)
