package update_settings

import (
	"context"

	"github.com/psiagenda/agenda-service/internal/domain"
)

type SettingsService interface {
	Save(ctx context.Context, settings *domain.ProfessionalSettings) (*domain.ProfessionalSettings, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
