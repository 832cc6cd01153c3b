package get_bookable_days

import (
	"context"
	"fmt"
)

// UseCase computes the list of dates open for public booking
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

// Execute returns the bookable dates for the current availability rule and
// scheduling policy. The list is regenerated on every call so it is always
// correct relative to the wall clock.
func (uc *UseCase) Execute(ctx context.Context) (*Response, error) {
	settings, err := uc.settings.Load(ctx)
	if err != nil {
		uc.logger.Error("GetBookableDays: failed to load settings: %v", err)
		return nil, fmt.Errorf("%w: failed to load settings: %v", ErrInternal, err)
	}

	now := uc.timeProvider.Now()
	dates := listBookableDates(settings.Availability, settings.Scheduling, now)

	uc.logger.Info("GetBookableDays: %d dates within %d-day horizon",
		len(dates), settings.Scheduling.MaxFutureDays)

	return &Response{
		Dates:               dates,
		SlotDurationMinutes: settings.Availability.SlotDurationMinutes,
	}, nil
}
