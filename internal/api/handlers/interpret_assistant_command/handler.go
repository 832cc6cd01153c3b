package interpret_assistant_command

import (
	"net/http"
	"strings"

	"github.com/psiagenda/agenda-service/internal/api/handlers"
	"github.com/psiagenda/agenda-service/internal/service/appointments/models"
)

const (
	msgInvalidRequestBody = "corpo da requisição inválido"
	msgMissingMessage     = "mensagem é obrigatória"
)

// CommandRequest is the free-form scheduling command
type CommandRequest struct {
	Message string `json:"message"`
}

// CommandResponse is the interpreted action. The reply is always displayable
// Portuguese text, AI failures included.
type CommandResponse struct {
	Action        string `json:"action"`
	AppointmentID string `json:"appointmentId,omitempty"`
	Reply         string `json:"reply"`
}

type Handler struct {
	appointments AppointmentsService
	interpreter  Interpreter
	timeProvider TimeProvider
	logger       Logger
}

func NewHandler(
	appointments AppointmentsService,
	interpreter Interpreter,
	timeProvider TimeProvider,
	logger Logger,
) *Handler {
	return &Handler{
		appointments: appointments,
		interpreter:  interpreter,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Handle POST /api/v1/assistant/command
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CommandRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /assistant/command - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		h.logger.Warn("POST /assistant/command - Empty message")
		handlers.RespondBadRequest(w, msgMissingMessage)
		return
	}

	// The interpreter needs the current agenda to resolve references like
	// "a consulta da Ana amanhã"
	appointments, err := h.appointments.List(r.Context(), &models.ListAppointmentsRequest{})
	if err != nil {
		h.logger.Error("POST /assistant/command - Failed to list appointments: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	result := h.interpreter.InterpretCommand(r.Context(), req.Message, appointments, h.timeProvider.Now())

	h.logger.Info("POST /assistant/command - Interpreted as %s (appointment=%s)",
		result.Action, result.AppointmentID)
	handlers.RespondJSON(w, http.StatusOK, CommandResponse{
		Action:        string(result.Action),
		AppointmentID: result.AppointmentID,
		Reply:         result.Reply,
	})
}
