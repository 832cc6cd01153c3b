package list_patients

import (
	"time"

	"github.com/psiagenda/agenda-service/internal/domain"
)

// PatientResponse is one patient record
type PatientResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Phone     string  `json:"phone"`
	AvatarURL *string `json:"avatarUrl,omitempty"`
	CreatedAt string  `json:"createdAt"`
}

// PatientListResponse is the listing body
type PatientListResponse struct {
	Patients []PatientResponse `json:"patients"`
}

// FromDomainPatients converts the listing
func FromDomainPatients(list []*domain.Patient) *PatientListResponse {
	out := make([]PatientResponse, 0, len(list))
	for _, p := range list {
		out = append(out, PatientResponse{
			ID:        p.ID,
			Name:      p.Name,
			Email:     p.Email,
			Phone:     p.Phone,
			AvatarURL: p.AvatarURL,
			CreatedAt: p.CreatedAt.Format(time.RFC3339),
		})
	}
	return &PatientListResponse{Patients: out}
}
