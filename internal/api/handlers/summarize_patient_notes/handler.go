package summarize_patient_notes

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/psiagenda/agenda-service/internal/api/handlers"
	patientsService "github.com/psiagenda/agenda-service/internal/service/patients"
)

const msgPatientNotFound = "paciente não encontrado"

// SummaryResponse carries the generated clinical summary. The text is always
// displayable: AI failures come back as fixed Portuguese messages.
type SummaryResponse struct {
	Summary string `json:"summary"`
}

type Handler struct {
	patients   PatientsService
	summarizer Summarizer
	logger     Logger
}

func NewHandler(patients PatientsService, summarizer Summarizer, logger Logger) *Handler {
	return &Handler{
		patients:   patients,
		summarizer: summarizer,
		logger:     logger,
	}
}

// Handle POST /api/v1/patients/{id}/summary
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	patient, err := h.patients.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, patientsService.ErrPatientNotFound) {
			h.logger.Warn("POST /patients/%s/summary - Patient not found", id)
			handlers.RespondNotFound(w, msgPatientNotFound)
			return
		}
		h.logger.Error("POST /patients/%s/summary - Failed to get patient: %v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	summary := h.summarizer.SummarizeNotes(r.Context(), patient.Patient.Name, patient.Notes)

	h.logger.Info("POST /patients/%s/summary - Summary generated (%d notes)", id, len(patient.Notes))
	handlers.RespondJSON(w, http.StatusOK, SummaryResponse{Summary: summary})
}
