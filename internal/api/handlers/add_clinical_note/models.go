package add_clinical_note

import (
	"time"

	"github.com/psiagenda/agenda-service/internal/domain"
	"github.com/psiagenda/agenda-service/internal/service/patients/models"
)

// AddNoteRequest appends a clinical note. An empty date means today.
type AddNoteRequest struct {
	Date    string `json:"date,omitempty"` // "2026-03-12"
	Content string `json:"content"`
}

// NoteResponse is the created note
type NoteResponse struct {
	ID        string `json:"id"`
	PatientID string `json:"patientId"`
	Date      string `json:"date"`
	Content   string `json:"content"`
}

// ToServiceRequest converts the HTTP request into the service model
func (r *AddNoteRequest) ToServiceRequest() (*models.AddNoteRequest, error) {
	req := &models.AddNoteRequest{Content: r.Content}
	if r.Date != "" {
		date, err := time.ParseInLocation(domain.DateFormat, r.Date, time.Local)
		if err != nil {
			return nil, err
		}
		req.Date = date
	}
	return req, nil
}

// FromDomainNote converts the created note into the HTTP response
func FromDomainNote(n *domain.ClinicalNote) *NoteResponse {
	return &NoteResponse{
		ID:        n.ID,
		PatientID: n.PatientID,
		Date:      n.Date.Format(domain.DateFormat),
		Content:   n.Content,
	}
}
