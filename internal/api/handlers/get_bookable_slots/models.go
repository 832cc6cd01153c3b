package get_bookable_slots

import (
	"github.com/psiagenda/agenda-service/internal/domain"
	getBookableSlots "github.com/psiagenda/agenda-service/internal/usecase/get_bookable_slots"
)

// SlotsResponse is the ascending list of bookable start times of a date
type SlotsResponse struct {
	Date                string   `json:"date"`
	Slots               []string `json:"slots"`
	SlotDurationMinutes int      `json:"slotDuration"`
	MinNoticeHours      int      `json:"minNoticeHours"`
}

// FromUseCaseResponse converts the use case response into the HTTP response
func FromUseCaseResponse(resp *getBookableSlots.Response) *SlotsResponse {
	slots := make([]string, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		slots = append(slots, s.String())
	}
	return &SlotsResponse{
		Date:                resp.Date.Format(domain.DateFormat),
		Slots:               slots,
		SlotDurationMinutes: resp.SlotDurationMinutes,
		MinNoticeHours:      resp.MinNoticeHours,
	}
}
