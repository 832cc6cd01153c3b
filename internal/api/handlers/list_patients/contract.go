package list_patients

import (
	"context"

	"github.com/psiagenda/agenda-service/internal/domain"
)

type PatientsService interface {
	List(ctx context.Context) ([]*domain.Patient, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
