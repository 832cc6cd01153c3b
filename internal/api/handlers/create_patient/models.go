package create_patient

import (
	"time"

	"github.com/psiagenda/agenda-service/internal/domain"
	"github.com/psiagenda/agenda-service/internal/service/patients/models"
)

// CreatePatientRequest is the admin create payload
type CreatePatientRequest struct {
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Phone     string  `json:"phone"`
	AvatarURL *string `json:"avatarUrl,omitempty"`
}

// PatientResponse is the created patient record
type PatientResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Phone     string  `json:"phone"`
	AvatarURL *string `json:"avatarUrl,omitempty"`
	CreatedAt string  `json:"createdAt"`
}

// ToServiceRequest converts the HTTP request into the service model
func (r *CreatePatientRequest) ToServiceRequest() *models.CreatePatientRequest {
	return &models.CreatePatientRequest{
		Name:      r.Name,
		Email:     r.Email,
		Phone:     r.Phone,
		AvatarURL: r.AvatarURL,
	}
}

// FromDomainPatient converts the created patient into the HTTP response
func FromDomainPatient(p *domain.Patient) *PatientResponse {
	return &PatientResponse{
		ID:        p.ID,
		Name:      p.Name,
		Email:     p.Email,
		Phone:     p.Phone,
		AvatarURL: p.AvatarURL,
		CreatedAt: p.CreatedAt.Format(time.RFC3339),
	}
}
