package get_bookable_slots

import (
	"time"

	"github.com/psiagenda/agenda-service/pkg/types"
)

// Request asks for the bookable start times of a single calendar date
type Request struct {
	Date time.Time
}

// Response is the ascending list of bookable start times for the date
type Response struct {
	Date                time.Time
	Slots               []types.TimeString
	SlotDurationMinutes int
	MinNoticeHours      int
}
