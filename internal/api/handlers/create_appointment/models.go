package create_appointment

import (
	"time"

	"github.com/psiagenda/agenda-service/internal/domain"
	"github.com/psiagenda/agenda-service/internal/service/appointments/models"
	"github.com/psiagenda/agenda-service/pkg/types"
)

// CreateAppointmentRequest is the admin create payload. Either patientId or
// patientName identifies the patient; notes is an optional clinical
// annotation.
type CreateAppointmentRequest struct {
	PatientID   string  `json:"patientId"`
	PatientName string  `json:"patientName"`
	Date        string  `json:"date"` // "2026-03-12"
	Time        string  `json:"time"` // "14:00"
	Notes       *string `json:"notes,omitempty"`
}

// AppointmentResponse is the created agenda entry
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

// ToServiceRequest converts the HTTP request into the service model
func (r *CreateAppointmentRequest) ToServiceRequest() (*models.CreateAppointmentRequest, error) {
	date, err := time.ParseInLocation(domain.DateFormat, r.Date, time.Local)
	if err != nil {
		return nil, err
	}

	slot, err := types.NewTimeStringFromString(r.Time)
	if err != nil {
		return nil, err
	}

	return &models.CreateAppointmentRequest{
		PatientID:   r.PatientID,
		PatientName: r.PatientName,
		Date:        date,
		Time:        slot,
		Notes:       r.Notes,
	}, nil
}

// FromDomainAppointment converts the created appointment into the HTTP
// response
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
