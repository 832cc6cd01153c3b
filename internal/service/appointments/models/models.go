package models

import (
	"time"

	"github.com/psiagenda/agenda-service/internal/domain"
	"github.com/psiagenda/agenda-service/pkg/types"
)

// WhatsAppAction is an admin-triggered patient notification
type WhatsAppAction string

const (
	ActionConfirm    WhatsAppAction = "confirm"
	ActionCancel     WhatsAppAction = "cancel"
	ActionReschedule WhatsAppAction = "reschedule"
)

// Valid reports whether the action is one of the known values
func (a WhatsAppAction) Valid() bool {
	switch a {
	case ActionConfirm, ActionCancel, ActionReschedule:
		return true
	}
	return false
}

// CreateAppointmentRequest is the admin create payload. Notes is an optional
// clinical annotation.
type CreateAppointmentRequest struct {
	PatientID   string
	PatientName string
	Date        time.Time
	Time        types.TimeString
	Notes       *string
}

// ListAppointmentsRequest carries the optional listing filters
type ListAppointmentsRequest struct {
	Status     *domain.AppointmentStatus
	StartDate  *time.Time
	EndDate    *time.Time
	OnlyUnread bool
}

// ToDomainFilter converts the request into the storage filter
func (r *ListAppointmentsRequest) ToDomainFilter() domain.AppointmentsFilter {
	return domain.AppointmentsFilter{
		Status:     r.Status,
		StartDate:  r.StartDate,
		EndDate:    r.EndDate,
		OnlyUnread: r.OnlyUnread,
	}
}

// WhatsAppLinkResponse is the result of a WhatsApp action: the deep link to
// open plus the status the appointment ended up in
type WhatsAppLinkResponse struct {
	URL    string
	Action WhatsAppAction
	Status domain.AppointmentStatus
}
