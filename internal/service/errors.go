package service

import "errors"

var (
	// ErrInvalidFeatureRoute is returned at startup when a feature route
	// cannot be registered.
	ErrInvalidFeatureRoute = errors.New("invalid feature route")

	// ErrDuplicateFeatureRoute is returned at startup when two feature routes
	// share a method and pattern.
	ErrDuplicateFeatureRoute = errors.New("duplicate feature route")

	// ErrInvalidFeatureBody is returned when a feature request body is not
	// valid JSON.
	ErrInvalidFeatureBody = errors.New("invalid feature request body")
)
