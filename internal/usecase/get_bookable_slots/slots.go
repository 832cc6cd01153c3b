package get_bookable_slots

import (
	"time"

	"github.com/psiagenda/agenda-service/internal/domain"
	"github.com/psiagenda/agenda-service/pkg/types"
)

// listBookableSlots generates the bookable start times for the given date.
// Candidates start at StartHour and step by SlotDurationMinutes; a candidate
// whose slot would run past EndHour is dropped, never truncated. A candidate
// is kept only if its instant (date + time, local wall clock) is strictly
// later than now + MinNoticeHours.
//
// A malformed rule (StartHour >= EndHour, non-positive duration) yields an
// empty list rather than an error; the settings service rejects such rules
// at save time, this is the defensive fallback.
func listBookableSlots(
	rule domain.AvailabilityRule,
	policy domain.SchedulingPolicy,
	date time.Time,
	now time.Time,
) []types.TimeString {
	slots := make([]types.TimeString, 0)

	if rule.SlotDurationMinutes <= 0 {
		return slots
	}

	startMin, err := rule.StartHour.Minutes()
	if err != nil {
		return slots
	}
	endMin, err := rule.EndHour.Minutes()
	if err != nil {
		return slots
	}
	if startMin >= endMin {
		return slots
	}

	earliest := now.Add(time.Duration(policy.MinNoticeHours) * time.Hour)
	midnight := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())

	for m := startMin; m+rule.SlotDurationMinutes <= endMin; m += rule.SlotDurationMinutes {
		instant := midnight.Add(time.Duration(m) * time.Minute)
		if instant.After(earliest) {
			slots = append(slots, types.NewTimeString(instant))
		}
	}

	return slots
}
