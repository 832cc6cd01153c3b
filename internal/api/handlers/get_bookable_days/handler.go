package get_bookable_days

import (
	"net/http"

	"github.com/psiagenda/agenda-service/internal/api/handlers"
)

type Handler struct {
	useCase GetBookableDaysUseCase
	logger  Logger
}

func NewHandler(useCase GetBookableDaysUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/booking/days
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.useCase.Execute(r.Context())
	if err != nil {
		h.logger.Error("GET /booking/days - Failed to list bookable days: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
