package get_bookable_slots

import (
	"errors"
	"net/http"
	"time"

	"github.com/psiagenda/agenda-service/internal/api/handlers"
	"github.com/psiagenda/agenda-service/internal/domain"
	getBookableSlots "github.com/psiagenda/agenda-service/internal/usecase/get_bookable_slots"
)

const (
	msgMissingDate = "parâmetro date é obrigatório"
	msgInvalidDate = "formato de data inválido, esperado YYYY-MM-DD"
)

type Handler struct {
	useCase GetBookableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetBookableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/booking/slots?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	rawDate := r.URL.Query().Get("date")
	if rawDate == "" {
		h.logger.Warn("GET /booking/slots - Missing date parameter")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := time.ParseInLocation(domain.DateFormat, rawDate, time.Local)
	if err != nil {
		h.logger.Warn("GET /booking/slots - Invalid date %q: %v", rawDate, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getBookableSlots.Request{Date: date})
	if err != nil {
		switch {
		case errors.Is(err, getBookableSlots.ErrInvalidInput):
			h.logger.Warn("GET /booking/slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
		default:
			h.logger.Error("GET /booking/slots - Failed to list slots: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
