package appointment_whatsapp_link

import (
	"context"

	"github.com/psiagenda/agenda-service/internal/service/appointments/models"
)

type AppointmentsService interface {
	WhatsAppAction(ctx context.Context, id string, action models.WhatsAppAction) (*models.WhatsAppLinkResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
