package settings

import "errors"

var (
	// ErrInvalidInput is returned when the submitted settings violate a
	// business constraint
	ErrInvalidInput = errors.New("service.settings: invalid input")

	// ErrInternal is returned on storage or serialization failures
	ErrInternal = errors.New("service.settings: internal error")
)
