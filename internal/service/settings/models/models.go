package models

import (
	"encoding/json"

	"github.com/psiagenda/agenda-service/internal/domain"
	"github.com/psiagenda/agenda-service/pkg/types"
)

// StoredSettings is the persisted JSON shape. The scheduling and reminder
// blocks are pointers because early payloads predate them; Materialize
// backfills whatever is missing.
type StoredSettings struct {
	Profile      domain.ProfileInfo      `json:"profile"`
	Availability domain.AvailabilityRule `json:"availability"`
	Scheduling   *storedScheduling       `json:"scheduling,omitempty"`
	Reminder     *domain.ReminderConfig  `json:"reminder,omitempty"`
}

// storedScheduling mirrors domain.SchedulingPolicy with per-field pointers so
// a partially written block can still be backfilled field by field.
type storedScheduling struct {
	MinNoticeHours              *int `json:"minNoticeHours,omitempty"`
	MaxFutureDays               *int `json:"maxFutureDays,omitempty"`
	LateArrivalToleranceMinutes *int `json:"lateArrivalTolerance,omitempty"`
}

// ParseStored decodes the raw settings payload
func ParseStored(raw []byte) (*StoredSettings, error) {
	var stored StoredSettings
	if err := json.Unmarshal(raw, &stored); err != nil {
		return nil, err
	}
	return &stored, nil
}

// Materialize converts the stored payload into a fully populated settings
// value, filling absent scheduling and reminder fields with the defaults
func (s *StoredSettings) Materialize() *domain.ProfessionalSettings {
	out := &domain.ProfessionalSettings{
		Profile:      s.Profile,
		Availability: s.Availability,
		Scheduling: domain.SchedulingPolicy{
			MinNoticeHours:              domain.DefaultMinNoticeHours,
			MaxFutureDays:               domain.DefaultMaxFutureDays,
			LateArrivalToleranceMinutes: domain.DefaultLateArrivalToleranceMinutes,
		},
		Reminder: domain.ReminderConfig{
			Enabled:         domain.DefaultReminderEnabled,
			TimeBeforeHours: domain.DefaultReminderTimeBeforeHours,
			MessageTemplate: domain.DefaultReminderTemplate,
		},
	}

	if s.Scheduling != nil {
		if s.Scheduling.MinNoticeHours != nil {
			out.Scheduling.MinNoticeHours = *s.Scheduling.MinNoticeHours
		}
		if s.Scheduling.MaxFutureDays != nil {
			out.Scheduling.MaxFutureDays = *s.Scheduling.MaxFutureDays
		}
		if s.Scheduling.LateArrivalToleranceMinutes != nil {
			out.Scheduling.LateArrivalToleranceMinutes = *s.Scheduling.LateArrivalToleranceMinutes
		}
	}
	if s.Reminder != nil {
		out.Reminder = *s.Reminder
	}

	return out
}

// DefaultSettings is the fully seeded configuration used when no settings row
// exists yet
func DefaultSettings() *domain.ProfessionalSettings {
	return &domain.ProfessionalSettings{
		Profile: domain.ProfileInfo{
			Name:      "Dr. Silva",
			Specialty: "Psicologia Clínica & TCC",
			Bio:       "Especialista em ansiedade e desenvolvimento pessoal com 10 anos de experiência.",
			AvatarURL: "https://i.pravatar.cc/300?img=11",
			Email:     "contato@drsilva.com",
		},
		Availability: domain.AvailabilityRule{
			WeekDays:            []int{1, 2, 3, 4, 5},
			StartHour:           types.TimeString("09:00"),
			EndHour:             types.TimeString("18:00"),
			SlotDurationMinutes: 60,
		},
		Scheduling: domain.SchedulingPolicy{
			MinNoticeHours:              domain.DefaultMinNoticeHours,
			MaxFutureDays:               domain.DefaultMaxFutureDays,
			LateArrivalToleranceMinutes: domain.DefaultLateArrivalToleranceMinutes,
		},
		Reminder: domain.ReminderConfig{
			Enabled:         domain.DefaultReminderEnabled,
			TimeBeforeHours: domain.DefaultReminderTimeBeforeHours,
			MessageTemplate: domain.DefaultReminderTemplate,
		},
	}
}
