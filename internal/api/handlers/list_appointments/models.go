package list_appointments

import (
	"time"

	"github.com/psiagenda/agenda-service/internal/domain"
)

// AppointmentResponse is one agenda entry
type AppointmentResponse struct {
	ID          string  `json:"id"`
	PatientID   string  `json:"patientId"`
	PatientName string  `json:"patientName"`
	Date        string  `json:"date"`
	Time        string  `json:"time"`
	Status      string  `json:"status"`
	Notes       *string `json:"notes,omitempty"`
	Read        bool    `json:"read"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

// AppointmentListResponse is the listing body
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
}

// FromDomainAppointment converts one appointment into its HTTP shape
func FromDomainAppointment(a *domain.Appointment) AppointmentResponse {
	return AppointmentResponse{
		ID:          a.ID,
		PatientID:   a.PatientID,
		PatientName: a.PatientName,
		Date:        a.Date.Format(domain.DateFormat),
		Time:        a.Time.String(),
		Status:      string(a.Status),
		Notes:       a.ContactNotes,
		Read:        a.Read,
		CreatedAt:   a.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   a.UpdatedAt.Format(time.RFC3339),
	}
}

// FromDomainAppointments converts the listing
func FromDomainAppointments(list []*domain.Appointment) *AppointmentListResponse {
	out := make([]AppointmentResponse, 0, len(list))
	for _, a := range list {
		out = append(out, FromDomainAppointment(a))
	}
	return &AppointmentListResponse{Appointments: out}
}
