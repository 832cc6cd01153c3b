package get_bookable_days

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/psiagenda/agenda-service/internal/domain"
)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

type fakeSettingsLoader struct {
	settings *domain.ProfessionalSettings
	err      error
}

func (f *fakeSettingsLoader) Load(_ context.Context) (*domain.ProfessionalSettings, error) {
	return f.settings, f.err
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func weekdayRule(days ...int) domain.AvailabilityRule {
	return domain.AvailabilityRule{
		WeekDays:            days,
		StartHour:           "09:00",
		EndHour:             "18:00",
		SlotDurationMinutes: 60,
	}
}

func TestListBookableDates_WeekdayFilter(t *testing.T) {
	// Friday, March 6th 2026
	now := time.Date(2026, 3, 6, 10, 0, 0, 0, time.Local)
	rule := weekdayRule(1, 2, 3, 4, 5)
	policy := domain.SchedulingPolicy{MaxFutureDays: 7}

	dates := listBookableDates(rule, policy, now)

	// Sat 7th and Sun 8th are skipped; Mon 9th through Fri 13th remain
	require.Len(t, dates, 5)
	assert.Equal(t, time.Date(2026, 3, 9, 0, 0, 0, 0, time.Local), dates[0])
	assert.Equal(t, time.Date(2026, 3, 13, 0, 0, 0, 0, time.Local), dates[4])
}

func TestListBookableDates_TodayExcluded(t *testing.T) {
	// Monday, March 2nd 2026, Mondays active
	now := time.Date(2026, 3, 2, 8, 0, 0, 0, time.Local)
	rule := weekdayRule(1)
	policy := domain.SchedulingPolicy{MaxFutureDays: 7}

	dates := listBookableDates(rule, policy, now)

	// today's Monday is not offered, only the next one
	require.Len(t, dates, 1)
	assert.Equal(t, time.Date(2026, 3, 9, 0, 0, 0, 0, time.Local), dates[0])
}

func TestListBookableDates_HorizonBoundaryInclusive(t *testing.T) {
	// Monday, March 2nd 2026; day +7 is the next Monday
	now := time.Date(2026, 3, 2, 23, 59, 0, 0, time.Local)
	rule := weekdayRule(1)
	policy := domain.SchedulingPolicy{MaxFutureDays: 7}

	dates := listBookableDates(rule, policy, now)

	require.Len(t, dates, 1)
	assert.Equal(t, time.Date(2026, 3, 9, 0, 0, 0, 0, time.Local), dates[0])

	// one day short of the horizon, the next Monday falls outside
	policy.MaxFutureDays = 6
	assert.Empty(t, listBookableDates(rule, policy, now))
}

func TestListBookableDates_MondayMorningStartsAtTuesday(t *testing.T) {
	// Monday, March 2nd 2026, 10:00
	now := time.Date(2026, 3, 2, 10, 0, 0, 0, time.Local)
	rule := weekdayRule(1, 2, 3, 4, 5)
	policy := domain.SchedulingPolicy{MinNoticeHours: 2, MaxFutureDays: 30}

	dates := listBookableDates(rule, policy, now)

	require.NotEmpty(t, dates)
	assert.Equal(t, time.Date(2026, 3, 3, 0, 0, 0, 0, time.Local), dates[0])
	assert.Equal(t, time.Weekday(2), dates[0].Weekday())
	// 30-day window March 3rd .. April 1st holds 22 weekdays
	assert.Len(t, dates, 22)
}

func TestListBookableDates_NoActiveWeekdays(t *testing.T) {
	now := time.Date(2026, 3, 6, 10, 0, 0, 0, time.Local)
	rule := weekdayRule()
	policy := domain.SchedulingPolicy{MaxFutureDays: 30}

	dates := listBookableDates(rule, policy, now)

	assert.NotNil(t, dates)
	assert.Empty(t, dates)
}

func TestListBookableDates_AscendingAndDistinct(t *testing.T) {
	now := time.Date(2026, 3, 6, 10, 0, 0, 0, time.Local)
	rule := weekdayRule(0, 1, 2, 3, 4, 5, 6)
	policy := domain.SchedulingPolicy{MaxFutureDays: 30}

	dates := listBookableDates(rule, policy, now)

	require.Len(t, dates, 30)
	for i := 1; i < len(dates); i++ {
		assert.True(t, dates[i].After(dates[i-1]))
	}
}

func TestUseCase_Execute(t *testing.T) {
	settings := &domain.ProfessionalSettings{
		Availability: weekdayRule(1, 2, 3, 4, 5),
		Scheduling:   domain.SchedulingPolicy{MinNoticeHours: 2, MaxFutureDays: 7},
	}

	uc := NewUseCase(&fakeSettingsLoader{settings: settings}, nopLogger{})
	// Friday, March 6th 2026
	uc.timeProvider = fixedClock{now: time.Date(2026, 3, 6, 10, 0, 0, 0, time.Local)}

	resp, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Len(t, resp.Dates, 5)
	assert.Equal(t, 60, resp.SlotDurationMinutes)
}

func TestUseCase_Execute_SettingsError(t *testing.T) {
	uc := NewUseCase(&fakeSettingsLoader{err: assert.AnError}, nopLogger{})

	_, err := uc.Execute(context.Background())
	assert.ErrorIs(t, err, ErrInternal)
}
