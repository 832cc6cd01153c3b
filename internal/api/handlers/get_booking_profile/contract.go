package get_booking_profile

import (
	"context"

	"github.com/psiagenda/agenda-service/internal/domain"
)

type SettingsService interface {
	Load(ctx context.Context) (*domain.ProfessionalSettings, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
