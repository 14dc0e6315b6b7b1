package pipeline

import "errors"

var (
	// ErrNilConfig indicates Run was called without a configuration.
	ErrNilConfig = errors.New("pipeline: nil config")

	// ErrNilCatalogueOrPrices indicates Run was called without a pipe
	// catalogue or price table, required whenever more than one building
	// is supplied.
	ErrNilCatalogueOrPrices = errors.New("pipeline: nil catalogue or price table")
)
