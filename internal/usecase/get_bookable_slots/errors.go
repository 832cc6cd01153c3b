package get_bookable_slots

import "errors"

var (
	// ErrInvalidInput is returned on malformed request data
	ErrInvalidInput = errors.New("get_bookable_slots: invalid input data")

	// ErrInternal is returned on internal use case failures
	ErrInternal = errors.New("get_bookable_slots: internal error")
)
