package get_bookable_days

import "errors"

var (
	// ErrInternal is returned on internal use case failures
	ErrInternal = errors.New("get_bookable_days: internal error")
)
