package get_patient

import (
	"time"

	"github.com/psiagenda/agenda-service/internal/domain"
	"github.com/psiagenda/agenda-service/internal/service/patients/models"
)

// ClinicalNoteResponse is one session note
type ClinicalNoteResponse struct {
	ID      string `json:"id"`
	Date    string `json:"date"`
	Content string `json:"content"`
}

// PatientResponse is the patient together with their notes, newest first
type PatientResponse struct {
	ID        string                 `json:"id"`
	Name      string                 `json:"name"`
	Email     string                 `json:"email"`
	Phone     string                 `json:"phone"`
	AvatarURL *string                `json:"avatarUrl,omitempty"`
	CreatedAt string                 `json:"createdAt"`
	Notes     []ClinicalNoteResponse `json:"notes"`
}

// FromServiceResponse converts the service result into the HTTP response
func FromServiceResponse(resp *models.PatientWithNotes) *PatientResponse {
	notes := make([]ClinicalNoteResponse, 0, len(resp.Notes))
	for _, n := range resp.Notes {
		notes = append(notes, ClinicalNoteResponse{
			ID:      n.ID,
			Date:    n.Date.Format(domain.DateFormat),
			Content: n.Content,
		})
	}

	p := resp.Patient
	return &PatientResponse{
		ID:        p.ID,
		Name:      p.Name,
		Email:     p.Email,
		Phone:     p.Phone,
		AvatarURL: p.AvatarURL,
		CreatedAt: p.CreatedAt.Format(time.RFC3339),
		Notes:     notes,
	}
}
