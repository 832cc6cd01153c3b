package list_appointments

import (
	"net/http"
	"time"

	"github.com/psiagenda/agenda-service/internal/api/handlers"
	"github.com/psiagenda/agenda-service/internal/domain"
	"github.com/psiagenda/agenda-service/internal/service/appointments/models"
)

const (
	msgInvalidStatus = "status inválido"
	msgInvalidDate   = "formato de data inválido, esperado YYYY-MM-DD"
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

// Handle GET /api/v1/appointments?status=&startDate=&endDate=&unread=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &models.ListAppointmentsRequest{
		OnlyUnread: query.Get("unread") == "true",
	}

	if raw := query.Get("status"); raw != "" {
		status := domain.AppointmentStatus(raw)
		switch status {
		case domain.StatusScheduled, domain.StatusConfirmed, domain.StatusCompleted, domain.StatusCancelled:
			req.Status = &status
		default:
			h.logger.Warn("GET /appointments - Invalid status %q", raw)
			handlers.RespondBadRequest(w, msgInvalidStatus)
			return
		}
	}

	for _, q := range []struct {
		name   string
		target **time.Time
	}{
		{"startDate", &req.StartDate},
		{"endDate", &req.EndDate},
	} {
		raw := query.Get(q.name)
		if raw == "" {
			continue
		}
		parsed, err := time.ParseInLocation(domain.DateFormat, raw, time.Local)
		if err != nil {
			h.logger.Warn("GET /appointments - Invalid %s %q: %v", q.name, raw, err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		*q.target = &parsed
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		h.logger.Error("GET /appointments - Failed to list appointments: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomainAppointments(result))
}
