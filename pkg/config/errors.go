package config

import "errors"

// Predefined errors for the config package.
var (
	// ErrNilPointer indicates that a nil configuration pointer was passed to Load.
	ErrNilPointer = errors.New("config: nil pointer passed to Load")

	// ErrParsingConfig indicates that parsing environment variables failed.
	ErrParsingConfig = errors.New("config: failed to parse environment variables")
)
