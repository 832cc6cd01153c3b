package add_clinical_note

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/psiagenda/agenda-service/internal/api/handlers"
	patientsService "github.com/psiagenda/agenda-service/internal/service/patients"
)

const (
	msgInvalidRequestBody = "corpo da requisição inválido"
	msgInvalidDate        = "formato de data inválido, esperado YYYY-MM-DD"
	msgInvalidInput       = "conteúdo da nota é obrigatório"
	msgPatientNotFound    = "paciente não encontrado"
)

type Handler struct {
	service PatientsService
	logger  Logger
}

func NewHandler(service PatientsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/patients/{id}/notes
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req AddNoteRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /patients/%s/notes - Invalid request body: %v", id, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest()
	if err != nil {
		h.logger.Warn("POST /patients/%s/notes - Invalid date %q: %v", id, req.Date, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.AddNote(r.Context(), id, serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, patientsService.ErrPatientNotFound):
			h.logger.Warn("POST /patients/%s/notes - Patient not found", id)
			handlers.RespondNotFound(w, msgPatientNotFound)

		case errors.Is(err, patientsService.ErrInvalidInput):
			h.logger.Warn("POST /patients/%s/notes - Invalid input: %v", id, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /patients/%s/notes - Failed to add note: %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /patients/%s/notes - Note added: id=%s", id, result.ID)
	handlers.RespondJSON(w, http.StatusCreated, FromDomainNote(result))
}
