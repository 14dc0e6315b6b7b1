package config

import "errors"

// Sentinel errors for configuration loading and validation (spec §7:
// "configuration errors ... fatal, raised before any computation").
var (
	// ErrConfigFileNotFound indicates the --config path does not exist.
	ErrConfigFileNotFound = errors.New("config: file not found")

	// ErrInvalidValue indicates a numeric or required configuration key
	// holds a value outside its documented domain (negative where positive
	// is required, a percentage out of range, and so on). Unknown enum
	// strings wrap their own parser's sentinel instead. The offending key
	// is always named in the wrapping error.
	ErrInvalidValue = errors.New("config: invalid value")

	// ErrUnknownDistanceMethod indicates distance-measuring-method is not
	// one of centroids, nearest_point, custom.
	ErrUnknownDistanceMethod = errors.New("config: unknown distance-measuring-method")
)
