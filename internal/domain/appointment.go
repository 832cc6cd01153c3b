package domain

import (
	"time"

	"github.com/psiagenda/agenda-service/pkg/types"
)

// AppointmentStatus represents the status of an appointment.
// Stored values are the Portuguese labels shown in the admin calendar.
type AppointmentStatus string

const (
	StatusScheduled AppointmentStatus = "Agendado"
	StatusConfirmed AppointmentStatus = "Confirmado"
	StatusCompleted AppointmentStatus = "Realizado"
	StatusCancelled AppointmentStatus = "Cancelado"
)

// GuestPatientID is the sentinel PatientID for public bookers without a
// registered patient record.
const GuestPatientID = "guest"

// Appointment represents a scheduled session in the professional's agenda
type Appointment struct {
	ID          string
	PatientID   string
	PatientName string
	Date        time.Time        // calendar date, time-of-day part is ignored
	Time        types.TimeString // session start, local wall clock
	Status      AppointmentStatus

	// ContactNotes carries contact info for guest bookers (email, phone,
	// birth date) or a clinical annotation for admin-created entries.
	ContactNotes *string

	// Read is notification-badge bookkeeping for the admin UI. Scheduling
	// logic never consults it.
	Read bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the appointment still occupies its slot
func (a *Appointment) IsActive() bool {
	return a.Status != StatusCancelled
}

// CanTransitionTo reports whether the admin may move the appointment to the
// given status. Scheduled is the creation-only state and is never a target.
func (a *Appointment) CanTransitionTo(status AppointmentStatus) bool {
	switch status {
	case StatusConfirmed, StatusCancelled:
		return a.Status == StatusScheduled || a.Status == StatusConfirmed
	case StatusCompleted:
		return a.Status != StatusCancelled
	default:
		return false
	}
}

// StartInstant combines Date and Time into a single local-wall-clock instant
func (a *Appointment) StartInstant() (time.Time, error) {
	return a.Time.OnDate(a.Date)
}

// AppointmentsFilter is the admin listing filter
type AppointmentsFilter struct {
	Status     *AppointmentStatus // optional
	StartDate  *time.Time         // optional period start (inclusive)
	EndDate    *time.Time         // optional period end (inclusive)
	OnlyUnread bool               // only appointments with Read=false
}
