package foodlink

import "errors"

// Sentinel errors for common failure modes.
var (
	// ErrNetwork indicates the backend was unreachable or answered with a
	// non-2xx status.
	ErrNetwork = errors.New("network error")

	// ErrNotFound indicates the requested record does not exist.
	ErrNotFound = errors.New("not found")

	// ErrGeolocationUnsupported indicates no location source is available.
	ErrGeolocationUnsupported = errors.New("geolocation is not supported")

	// ErrValidation indicates a request or configuration failed validation.
	ErrValidation = errors.New("validation error")
)
