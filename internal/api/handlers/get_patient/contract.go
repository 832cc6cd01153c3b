package get_patient

import (
	"context"

	"github.com/psiagenda/agenda-service/internal/service/patients/models"
)

type PatientsService interface {
	GetByID(ctx context.Context, id string) (*models.PatientWithNotes, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
