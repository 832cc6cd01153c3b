package summarize_patient_notes

import (
	"context"

	"github.com/psiagenda/agenda-service/internal/domain"
	"github.com/psiagenda/agenda-service/internal/service/patients/models"
)

type PatientsService interface {
	GetByID(ctx context.Context, id string) (*models.PatientWithNotes, error)
}

type Summarizer interface {
	SummarizeNotes(ctx context.Context, patientName string, notes []*domain.ClinicalNote) string
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
