package catalogue

import "errors"

// Sentinel errors for catalogue and price-table loading, grounded in the
// teacher's convention of one errors.go per package (e.g. matrix/errors.go).
var (
	// ErrEmptyFile indicates a catalogue file has fewer than three rows
	// (names, units, at least one data row).
	ErrEmptyFile = errors.New("catalogue: file has no data rows")

	// ErrColumnMismatch indicates a data row's field count doesn't match the
	// header row's column count.
	ErrColumnMismatch = errors.New("catalogue: data row column count mismatch")

	// ErrNoRows indicates no catalogue files produced any usable rows.
	ErrNoRows = errors.New("catalogue: no rows loaded from any file")

	// ErrNoAcceptableDiameter indicates no catalogue row and diameter class
	// together satisfy the required mass flow under the pressure-gradient
	// threshold (§4.7 step 5: "catalogue miss").
	ErrNoAcceptableDiameter = errors.New("catalogue: no diameter class accommodates the required mass flow")

	// ErrUnknownColumn indicates a price table lookup for a diameter-class
	// column name the catalogue never defined.
	ErrUnknownColumn = errors.New("catalogue: price table missing column")

	// ErrUnknownPipeType indicates a price entry's type is neither "uno" nor
	// "duo".
	ErrUnknownPipeType = errors.New("catalogue: price entry has unknown pipe type")
)
