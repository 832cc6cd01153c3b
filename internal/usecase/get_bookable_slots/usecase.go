package get_bookable_slots

import (
	"context"
	"fmt"

	"github.com/psiagenda/agenda-service/internal/domain"
)

// UseCase computes the bookable start times of a calendar date
type UseCase struct {
	settings     SettingsLoader
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase creates a new use case instance
func NewUseCase(settings SettingsLoader, logger Logger) *UseCase {
	return &UseCase{
		settings:     settings,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute regenerates the slot list from scratch for the requested date.
// No caching: the notice-window filter must always be evaluated against the
// current wall clock, and the horizon is small enough that recomputing is
// negligible.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.Date.IsZero() {
		uc.logger.Warn("GetBookableSlots: date is required")
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	settings, err := uc.settings.Load(ctx)
	if err != nil {
		uc.logger.Error("GetBookableSlots: failed to load settings: %v", err)
		return nil, fmt.Errorf("%w: failed to load settings: %v", ErrInternal, err)
	}

	now := uc.timeProvider.Now()
	slots := listBookableSlots(settings.Availability, settings.Scheduling, req.Date, now)

	uc.logger.Info("GetBookableSlots: %d slots for %s (notice=%dh)",
		len(slots), req.Date.Format(domain.DateFormat), settings.Scheduling.MinNoticeHours)

	return &Response{
		Date:                req.Date,
		Slots:               slots,
		SlotDurationMinutes: settings.Availability.SlotDurationMinutes,
		MinNoticeHours:      settings.Scheduling.MinNoticeHours,
	}, nil
}
