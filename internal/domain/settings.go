package domain

import "github.com/psiagenda/agenda-service/pkg/types"

// AvailabilityRule is the recurring weekly schedule of the professional
type AvailabilityRule struct {
	WeekDays            []int            `json:"weekDays"` // 0 = Sunday .. 6 = Saturday
	StartHour           types.TimeString `json:"startHour"`
	EndHour             types.TimeString `json:"endHour"`
	SlotDurationMinutes int              `json:"slotDuration"`
}

// IsActiveWeekday reports whether the given weekday accepts appointments
func (r *AvailabilityRule) IsActiveWeekday(weekday int) bool {
	for _, d := range r.WeekDays {
		if d == weekday {
			return true
		}
	}
	return false
}

// SchedulingPolicy holds the booking constraint parameters
type SchedulingPolicy struct {
	MinNoticeHours int `json:"minNoticeHours"`
	MaxFutureDays  int `json:"maxFutureDays"`

	// LateArrivalToleranceMinutes is display-only: the deadline after slot
	// start by which a patient is still considered on time. It never affects
	// slot availability.
	LateArrivalToleranceMinutes int `json:"lateArrivalTolerance"`
}

// ReminderConfig holds the appointment reminder message settings
type ReminderConfig struct {
	Enabled         bool   `json:"enabled"`
	TimeBeforeHours int    `json:"timeBeforeHours"`
	MessageTemplate string `json:"messageTemplate"`
}

// ProfileInfo is the public profile shown on the booking page header
type ProfileInfo struct {
	Name      string `json:"name"`
	Specialty string `json:"specialty"`
	Bio       string `json:"bio"`
	AvatarURL string `json:"avatarUrl"`
	Email     string `json:"email"`
}

// ProfessionalSettings is the full persisted configuration of the single
// professional. Stored as one JSON value in the settings store; the settings
// service guarantees that a loaded value is fully populated (missing
// scheduling/reminder blocks are backfilled with defaults).
type ProfessionalSettings struct {
	Profile      ProfileInfo      `json:"profile"`
	Availability AvailabilityRule `json:"availability"`
	Scheduling   SchedulingPolicy `json:"scheduling"`
	Reminder     ReminderConfig   `json:"reminder"`
}
