package appointment_whatsapp_link

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/psiagenda/agenda-service/internal/api/handlers"
	appointmentsService "github.com/psiagenda/agenda-service/internal/service/appointments"
	"github.com/psiagenda/agenda-service/internal/service/appointments/models"
)

const (
	msgInvalidRequestBody  = "corpo da requisição inválido"
	msgInvalidAction       = "ação inválida, esperado confirm, cancel ou reschedule"
	msgAppointmentNotFound = "agendamento não encontrado"
	msgNoPhone             = "nenhum telefone disponível para este agendamento"
	msgInvalidTransition   = "mudança de status não permitida"
)

type Handler struct {
	service AppointmentsService
	logger  Logger
}

func NewHandler(service AppointmentsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments/{id}/whatsapp
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req WhatsAppRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments/%s/whatsapp - Invalid request body: %v", id, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.WhatsAppAction(r.Context(), id, models.WhatsAppAction(req.Action))
	if err != nil {
		switch {
		case errors.Is(err, appointmentsService.ErrAppointmentNotFound):
			h.logger.Warn("POST /appointments/%s/whatsapp - Appointment not found", id)
			handlers.RespondNotFound(w, msgAppointmentNotFound)

		case errors.Is(err, appointmentsService.ErrNoPhone):
			h.logger.Warn("POST /appointments/%s/whatsapp - No phone available", id)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgNoPhone)

		case errors.Is(err, appointmentsService.ErrInvalidTransition):
			h.logger.Warn("POST /appointments/%s/whatsapp - Invalid transition: %v", id, err)
			handlers.RespondError(w, http.StatusConflict, msgInvalidTransition)

		case errors.Is(err, appointmentsService.ErrInvalidInput):
			h.logger.Warn("POST /appointments/%s/whatsapp - Invalid action %q", id, req.Action)
			handlers.RespondBadRequest(w, msgInvalidAction)

		default:
			h.logger.Error("POST /appointments/%s/whatsapp - Failed to build link: %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments/%s/whatsapp - %s link built", id, req.Action)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
