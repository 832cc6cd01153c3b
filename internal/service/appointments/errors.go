package appointments

import "errors"

var (
	// ErrAppointmentNotFound is returned when the appointment does not exist
	ErrAppointmentNotFound = errors.New("service.appointments: appointment not found")

	// ErrPatientNotFound is returned when the referenced patient does not exist
	ErrPatientNotFound = errors.New("service.appointments: patient not found")

	// ErrInvalidInput is returned on malformed request data
	ErrInvalidInput = errors.New("service.appointments: invalid input")

	// ErrInvalidTransition is returned when the requested status change is not
	// allowed from the appointment's current status
	ErrInvalidTransition = errors.New("service.appointments: invalid status transition")

	// ErrNoPhone is returned when no phone number can be resolved for a
	// WhatsApp action
	ErrNoPhone = errors.New("service.appointments: no phone number available")

	// ErrInternal is returned on storage failures
	ErrInternal = errors.New("service.appointments: internal error")
)
