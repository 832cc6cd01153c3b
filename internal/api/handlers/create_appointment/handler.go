package create_appointment

import (
	"errors"
	"net/http"

	"github.com/psiagenda/agenda-service/internal/api/handlers"
	appointmentsService "github.com/psiagenda/agenda-service/internal/service/appointments"
)

const (
	msgInvalidRequestBody = "corpo da requisição inválido"
	msgInvalidDateTime    = "data ou horário inválido, esperado YYYY-MM-DD e HH:MM"
	msgInvalidInput       = "dados do agendamento inválidos"
	msgPatientNotFound    = "paciente não encontrado"
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

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest()
	if err != nil {
		h.logger.Warn("POST /appointments - Failed to parse date/time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	result, err := h.service.Create(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, appointmentsService.ErrPatientNotFound):
			h.logger.Warn("POST /appointments - Patient not found: patient_id=%s", req.PatientID)
			handlers.RespondNotFound(w, msgPatientNotFound)

		case errors.Is(err, appointmentsService.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments - Appointment created: id=%s", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, FromDomainAppointment(result))
}
