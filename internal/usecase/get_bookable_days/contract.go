package get_bookable_days

import (
	"context"
	"time"

	"github.com/psiagenda/agenda-service/internal/domain"
)

// SettingsLoader loads the professional settings. Implementations guarantee
// a fully populated value (missing blocks already backfilled).
type SettingsLoader interface {
	Load(ctx context.Context) (*domain.ProfessionalSettings, error)
}

// TimeProvider is the clock seam (for testing)
type TimeProvider interface {
	Now() time.Time
}

// Logger is the logging interface
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider is the production clock
type RealTimeProvider struct{}

// Now returns the current time
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
