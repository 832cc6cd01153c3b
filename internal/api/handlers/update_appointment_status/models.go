package update_appointment_status

import (
	"time"

	"github.com/psiagenda/agenda-service/internal/domain"
)

// UpdateStatusRequest carries the target status
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// AppointmentResponse is the updated agenda entry
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

// FromDomainAppointment converts the appointment into the HTTP response
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	return &AppointmentResponse{
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
