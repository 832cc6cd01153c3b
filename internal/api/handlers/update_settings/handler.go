package update_settings

import (
	"errors"
	"net/http"

	"github.com/psiagenda/agenda-service/internal/api/handlers"
	"github.com/psiagenda/agenda-service/internal/domain"
	settingsService "github.com/psiagenda/agenda-service/internal/service/settings"
)

const (
	msgInvalidRequestBody = "corpo da requisição inválido"
	msgInvalidSettings    = "configurações inválidas"
)

type Handler struct {
	service SettingsService
	logger  Logger
}

func NewHandler(service SettingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/settings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req domain.ProfessionalSettings
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /settings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Save(r.Context(), &req)
	if err != nil {
		if errors.Is(err, settingsService.ErrInvalidInput) {
			h.logger.Warn("PUT /settings - Validation failed: %v", err)
			handlers.RespondBadRequest(w, msgInvalidSettings)
			return
		}
		h.logger.Error("PUT /settings - Failed to save settings: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("PUT /settings - Settings updated")
	handlers.RespondJSON(w, http.StatusOK, result)
}
