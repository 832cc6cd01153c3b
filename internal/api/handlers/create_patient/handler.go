package create_patient

import (
	"errors"
	"net/http"

	"github.com/psiagenda/agenda-service/internal/api/handlers"
	patientsService "github.com/psiagenda/agenda-service/internal/service/patients"
)

const (
	msgInvalidRequestBody = "corpo da requisição inválido"
	msgInvalidInput       = "dados do paciente inválidos"
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

// Handle POST /api/v1/patients
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreatePatientRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /patients - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), req.ToServiceRequest())
	if err != nil {
		if errors.Is(err, patientsService.ErrInvalidInput) {
			h.logger.Warn("POST /patients - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)
			return
		}
		h.logger.Error("POST /patients - Failed to create patient: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /patients - Patient created: id=%s", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, FromDomainPatient(result))
}
