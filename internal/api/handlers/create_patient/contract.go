package create_patient

import (
	"context"

	"github.com/psiagenda/agenda-service/internal/domain"
	"github.com/psiagenda/agenda-service/internal/service/patients/models"
)

type PatientsService interface {
	Create(ctx context.Context, req *models.CreatePatientRequest) (*domain.Patient, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
