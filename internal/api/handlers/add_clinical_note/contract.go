package add_clinical_note

import (
	"context"

	"github.com/psiagenda/agenda-service/internal/domain"
	"github.com/psiagenda/agenda-service/internal/service/patients/models"
)

type PatientsService interface {
	AddNote(ctx context.Context, patientID string, req *models.AddNoteRequest) (*domain.ClinicalNote, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
