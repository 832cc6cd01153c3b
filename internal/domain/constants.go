package domain

// Default scheduling policy, applied when the persisted settings predate the
// scheduling block (schema backfill, see settings service).
const (
	DefaultMinNoticeHours              = 2
	DefaultMaxFutureDays               = 30
	DefaultLateArrivalToleranceMinutes = 15
)

// Default reminder configuration for the same backfill
const (
	DefaultReminderEnabled         = true
	DefaultReminderTimeBeforeHours = 24
	DefaultReminderTemplate        = "Olá {paciente}, lembrete da sua consulta amanhã às {hora}. Responda para confirmar."
)

// Business validation constants
const (
	MinWeekday = 0 // Sunday
	MaxWeekday = 6 // Saturday

	MaxFutureDaysLimit  = 365
	MaxMinNoticeHours   = 720 // 30 days
	MaxSlotDurationMins = 480 // 8 hours
)

// SlotDurationOptions is the set the settings UI offers. The scheduling core
// accepts any positive duration; this set constrains the admin form only.
var SlotDurationOptions = []int{30, 45, 50, 60, 90}

// Time format constants
const (
	TimeFormat        = "15:04"      // HH:MM
	DateFormat        = "2006-01-02" // YYYY-MM-DD
	DateFormatBR      = "02/01/2006" // DD/MM/YYYY, used in user-facing messages
	CountryCodeBR     = "55"
	PublicBookingPath = "/booking"
)
