package config

import "errors"

// Sentinel errors for internal use.
var (
	ErrInvalidConfig = errors.New("invalid config")
	ErrInvalidSite   = errors.New("invalid site file")
)

// Error codes returned in JSON error bodies.
const (
	ErrorNotFound         = "ERROR_NOT_FOUND"
	ErrorMethodNotAllowed = "ERROR_METHOD_NOT_ALLOWED"
	ErrorRateLimited      = "ERROR_RATE_LIMITED"
	ErrorInternal         = "ERROR_INTERNAL"
)
