package update_appointment_status

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/psiagenda/agenda-service/internal/api/handlers"
	"github.com/psiagenda/agenda-service/internal/domain"
	appointmentsService "github.com/psiagenda/agenda-service/internal/service/appointments"
)

const (
	msgInvalidRequestBody  = "corpo da requisição inválido"
	msgInvalidStatus       = "status inválido"
	msgAppointmentNotFound = "agendamento não encontrado"
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

// Handle PATCH /api/v1/appointments/{id}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req UpdateStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /appointments/%s/status - Invalid request body: %v", id, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	status := domain.AppointmentStatus(req.Status)
	switch status {
	case domain.StatusConfirmed, domain.StatusCompleted, domain.StatusCancelled:
	default:
		h.logger.Warn("PATCH /appointments/%s/status - Invalid status %q", id, req.Status)
		handlers.RespondBadRequest(w, msgInvalidStatus)
		return
	}

	result, err := h.service.UpdateStatus(r.Context(), id, status)
	if err != nil {
		switch {
		case errors.Is(err, appointmentsService.ErrAppointmentNotFound):
			h.logger.Warn("PATCH /appointments/%s/status - Appointment not found", id)
			handlers.RespondNotFound(w, msgAppointmentNotFound)

		case errors.Is(err, appointmentsService.ErrInvalidTransition):
			h.logger.Warn("PATCH /appointments/%s/status - Invalid transition: %v", id, err)
			handlers.RespondError(w, http.StatusConflict, msgInvalidTransition)

		default:
			h.logger.Error("PATCH /appointments/%s/status - Failed to update status: %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /appointments/%s/status - Status updated to %s", id, status)
	handlers.RespondJSON(w, http.StatusOK, FromDomainAppointment(result))
}
