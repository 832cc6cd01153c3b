package settings

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/psiagenda/agenda-service/internal/domain"
	settingsRepo "github.com/psiagenda/agenda-service/internal/infra/storage/settings"
	"github.com/psiagenda/agenda-service/internal/service/settings/models"
)

// Service manages the single professional's configuration
type Service struct {
	repo   SettingsRepository
	logger Logger
}

// NewService creates a new settings service
func NewService(repo SettingsRepository, logger Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// Load returns the current settings. The result is always fully populated:
// a missing row yields the seeded defaults and payloads written before the
// scheduling or reminder blocks existed get those blocks backfilled.
func (s *Service) Load(ctx context.Context) (*domain.ProfessionalSettings, error) {
	raw, err := s.repo.Load(ctx)
	if err != nil {
		if errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			s.logger.Info("Load: no settings stored yet, using seeded defaults")
			return models.DefaultSettings(), nil
		}
		s.logger.Error("Load: repository error: %v", err)
		return nil, fmt.Errorf("%w: Load - repository error: %v", ErrInternal, err)
	}

	stored, err := models.ParseStored(raw)
	if err != nil {
		s.logger.Error("Load: failed to decode stored settings: %v", err)
		return nil, fmt.Errorf("%w: Load - decode settings: %v", ErrInternal, err)
	}

	return stored.Materialize(), nil
}

// Save validates and persists the full settings value
func (s *Service) Save(ctx context.Context, settings *domain.ProfessionalSettings) (*domain.ProfessionalSettings, error) {
	s.logger.Info("Save: updating professional settings")

	// 1. Validate business constraints
	if err := s.validate(settings); err != nil {
		s.logger.Warn("Save: validation failed: %v", err)
		return nil, err
	}

	// 2. Normalize the weekday set before persisting
	settings.Availability.WeekDays = dedupWeekdays(settings.Availability.WeekDays)

	// 3. Persist as a single JSON value
	raw, err := json.Marshal(settings)
	if err != nil {
		s.logger.Error("Save: failed to encode settings: %v", err)
		return nil, fmt.Errorf("%w: Save - encode settings: %v", ErrInternal, err)
	}

	if err := s.repo.Save(ctx, raw); err != nil {
		s.logger.Error("Save: repository error: %v", err)
		return nil, fmt.Errorf("%w: Save - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Save: successfully updated settings")
	return settings, nil
}

// validate checks the scheduling invariants
func (s *Service) validate(settings *domain.ProfessionalSettings) error {
	availability := settings.Availability

	if err := availability.StartHour.Validate(); err != nil {
		return fmt.Errorf("%w: startHour: %v", ErrInvalidInput, err)
	}
	if err := availability.EndHour.Validate(); err != nil {
		return fmt.Errorf("%w: endHour: %v", ErrInvalidInput, err)
	}
	if !availability.StartHour.IsBefore(availability.EndHour) {
		return fmt.Errorf("%w: startHour must be before endHour", ErrInvalidInput)
	}

	if availability.SlotDurationMinutes <= 0 || availability.SlotDurationMinutes > domain.MaxSlotDurationMins {
		return fmt.Errorf("%w: slotDuration must be between 1 and %d", ErrInvalidInput, domain.MaxSlotDurationMins)
	}

	if len(availability.WeekDays) == 0 {
		return fmt.Errorf("%w: at least one weekday is required", ErrInvalidInput)
	}
	for _, day := range availability.WeekDays {
		if day < domain.MinWeekday || day > domain.MaxWeekday {
			return fmt.Errorf("%w: weekday must be between %d and %d", ErrInvalidInput, domain.MinWeekday, domain.MaxWeekday)
		}
	}

	policy := settings.Scheduling
	if policy.MinNoticeHours < 0 || policy.MinNoticeHours > domain.MaxMinNoticeHours {
		return fmt.Errorf("%w: minNoticeHours must be between 0 and %d", ErrInvalidInput, domain.MaxMinNoticeHours)
	}
	if policy.MaxFutureDays <= 0 || policy.MaxFutureDays > domain.MaxFutureDaysLimit {
		return fmt.Errorf("%w: maxFutureDays must be between 1 and %d", ErrInvalidInput, domain.MaxFutureDaysLimit)
	}
	if policy.LateArrivalToleranceMinutes < 0 {
		return fmt.Errorf("%w: lateArrivalTolerance must not be negative", ErrInvalidInput)
	}

	if settings.Reminder.TimeBeforeHours < 0 {
		return fmt.Errorf("%w: reminder timeBeforeHours must not be negative", ErrInvalidInput)
	}

	return nil
}

// dedupWeekdays removes duplicates preserving the first occurrence order
func dedupWeekdays(days []int) []int {
	seen := make(map[int]struct{}, len(days))
	out := make([]int, 0, len(days))
	for _, d := range days {
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		out = append(out, d)
	}
	return out
}
