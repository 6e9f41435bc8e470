package feature

import "errors"

// Predefined errors for the feature package.
var (
	// ErrInvalidFlag indicates that the provided flag parameters are invalid.
	ErrInvalidFlag = errors.New("invalid feature flag")

	// ErrDuplicateID indicates that a flag with the same identifier already
	// exists in the collection.
	ErrDuplicateID = errors.New("duplicate feature flag id")
)
