package get_bookable_days

import (
	"time"

	"github.com/psiagenda/agenda-service/internal/domain"
)

// listBookableDates produces the ascending sequence of calendar dates open
// for booking: starting at tomorrow, day by day up to MaxFutureDays ahead
// inclusive, keeping dates whose weekday is active.
//
// Today is never included, even when its weekday is active. The public flow
// only offers future days; same-day slots are not supported here regardless
// of how small MinNoticeHours is.
func listBookableDates(rule domain.AvailabilityRule, policy domain.SchedulingPolicy, now time.Time) []time.Time {
	dates := make([]time.Time, 0, policy.MaxFutureDays)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	for i := 1; i <= policy.MaxFutureDays; i++ {
		d := today.AddDate(0, 0, i)
		if rule.IsActiveWeekday(int(d.Weekday())) {
			dates = append(dates, d)
		}
	}

	return dates
}
