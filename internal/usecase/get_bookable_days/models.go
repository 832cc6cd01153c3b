package get_bookable_days

import "time"

// Response is the list of calendar dates open for public booking,
// ascending, together with the slot duration the UI shows next to them.
type Response struct {
	Dates               []time.Time
	SlotDurationMinutes int
}
