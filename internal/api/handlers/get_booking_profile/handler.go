package get_booking_profile

import (
	"net/http"

	"github.com/psiagenda/agenda-service/internal/api/handlers"
)

type Handler struct {
	settings SettingsService
	logger   Logger
}

func NewHandler(settings SettingsService, logger Logger) *Handler {
	return &Handler{
		settings: settings,
		logger:   logger,
	}
}

// Handle GET /api/v1/booking/profile
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	settings, err := h.settings.Load(r.Context())
	if err != nil {
		h.logger.Error("GET /booking/profile - Failed to load settings: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromSettings(settings))
}
