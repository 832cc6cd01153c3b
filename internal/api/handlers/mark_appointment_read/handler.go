package mark_appointment_read

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/psiagenda/agenda-service/internal/api/handlers"
	appointmentsService "github.com/psiagenda/agenda-service/internal/service/appointments"
)

const msgAppointmentNotFound = "agendamento não encontrado"

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

// Handle PATCH /api/v1/appointments/{id}/read
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.service.MarkRead(r.Context(), id); err != nil {
		if errors.Is(err, appointmentsService.ErrAppointmentNotFound) {
			h.logger.Warn("PATCH /appointments/%s/read - Appointment not found", id)
			handlers.RespondNotFound(w, msgAppointmentNotFound)
			return
		}
		h.logger.Error("PATCH /appointments/%s/read - Failed to mark read: %v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusNoContent, nil)
}

// HandleAll PATCH /api/v1/appointments/read
func (h *Handler) HandleAll(w http.ResponseWriter, r *http.Request) {
	if err := h.service.MarkAllRead(r.Context()); err != nil {
		h.logger.Error("PATCH /appointments/read - Failed to mark all read: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
