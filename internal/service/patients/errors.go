package patients

import "errors"

var (
	// ErrPatientNotFound is returned when the patient does not exist
	ErrPatientNotFound = errors.New("service.patients: patient not found")

	// ErrInvalidInput is returned on malformed request data
	ErrInvalidInput = errors.New("service.patients: invalid input")

	// ErrInternal is returned on storage failures
	ErrInternal = errors.New("service.patients: internal error")
)
