package create_appointment

import (
	"context"

	"github.com/psiagenda/agenda-service/internal/domain"
	"github.com/psiagenda/agenda-service/internal/service/appointments/models"
)

type AppointmentsService interface {
	Create(ctx context.Context, req *models.CreateAppointmentRequest) (*domain.Appointment, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
