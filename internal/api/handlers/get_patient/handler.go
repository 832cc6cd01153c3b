package get_patient

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/psiagenda/agenda-service/internal/api/handlers"
	patientsService "github.com/psiagenda/agenda-service/internal/service/patients"
)

const msgPatientNotFound = "paciente não encontrado"

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

// Handle GET /api/v1/patients/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	result, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, patientsService.ErrPatientNotFound) {
			h.logger.Warn("GET /patients/%s - Patient not found", id)
			handlers.RespondNotFound(w, msgPatientNotFound)
			return
		}
		h.logger.Error("GET /patients/%s - Failed to get patient: %v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
