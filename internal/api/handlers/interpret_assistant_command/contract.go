package interpret_assistant_command

import (
	"context"
	"time"

	"github.com/psiagenda/agenda-service/internal/domain"
	"github.com/psiagenda/agenda-service/internal/integrations/genai"
	"github.com/psiagenda/agenda-service/internal/service/appointments/models"
)

type AppointmentsService interface {
	List(ctx context.Context, req *models.ListAppointmentsRequest) ([]*domain.Appointment, error)
}

type Interpreter interface {
	InterpretCommand(ctx context.Context, message string, appointments []*domain.Appointment, now time.Time) *genai.Interpretation
}

type TimeProvider interface {
	Now() time.Time
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
