package get_bookable_days

import (
	"github.com/psiagenda/agenda-service/internal/domain"
	getBookableDays "github.com/psiagenda/agenda-service/internal/usecase/get_bookable_days"
)

// DaysResponse is the list of bookable dates in YYYY-MM-DD form
type DaysResponse struct {
	Dates               []string `json:"dates"`
	SlotDurationMinutes int      `json:"slotDuration"`
}

// FromUseCaseResponse converts the use case response into the HTTP response
func FromUseCaseResponse(resp *getBookableDays.Response) *DaysResponse {
	dates := make([]string, 0, len(resp.Dates))
	for _, d := range resp.Dates {
		dates = append(dates, d.Format(domain.DateFormat))
	}
	return &DaysResponse{
		Dates:               dates,
		SlotDurationMinutes: resp.SlotDurationMinutes,
	}
}
