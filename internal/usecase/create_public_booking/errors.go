package create_public_booking

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrSlotExpired is returned when the chosen slot's instant is no longer
	// in the future at validation time. It is a whole-form failure: the
	// caller is expected to regenerate the slot list and return the user to
	// date/time selection, not to re-prompt a field.
	ErrSlotExpired = errors.New("create_public_booking: selected slot has already passed")

	// ErrInvalidInput is returned when the slot selection itself is
	// malformed (missing date or time)
	ErrInvalidInput = errors.New("create_public_booking: invalid input data")

	// ErrInternal is returned on internal use case failures
	ErrInternal = errors.New("create_public_booking: internal error")
)

// Field error codes, reported per field so the caller re-prompts only the
// offending fields.
const (
	CodeMissingName        = "MISSING_NAME"
	CodeMissingEmail       = "MISSING_EMAIL"
	CodeInvalidEmailFormat = "INVALID_EMAIL_FORMAT"
	CodeMissingPhone       = "MISSING_PHONE"
	CodeInvalidPhoneFormat = "INVALID_PHONE_FORMAT"
	CodeMissingDateOfBirth = "MISSING_DATE_OF_BIRTH"
	CodeInvalidDateOfBirth = "INVALID_DATE_OF_BIRTH"
	CodeFutureDateOfBirth  = "FUTURE_DATE_OF_BIRTH"
)

// FieldError is a recoverable, per-field validation failure
type FieldError struct {
	Field   string
	Code    string
	Message string // user-facing, Portuguese
}

// ValidationError accumulates all field errors of a submission; validation
// is not fail-fast.
type ValidationError struct {
	Fields []FieldError
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	codes := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		codes[i] = fmt.Sprintf("%s=%s", f.Field, f.Code)
	}
	return "create_public_booking: validation failed: " + strings.Join(codes, ", ")
}
