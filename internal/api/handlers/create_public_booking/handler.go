package create_public_booking

import (
	"errors"
	"net/http"

	"github.com/psiagenda/agenda-service/internal/api/handlers"
	createPublicBooking "github.com/psiagenda/agenda-service/internal/usecase/create_public_booking"
)

const (
	msgInvalidRequestBody = "corpo da requisição inválido"
	msgInvalidDateTime    = "data ou horário inválido, esperado YYYY-MM-DD e HH:MM"
	msgSlotExpired        = "este horário não está mais disponível, escolha outro"
	msgValidationFailed   = "alguns campos precisam de correção"
)

type Handler struct {
	useCase CreatePublicBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreatePublicBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/booking
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /booking - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /booking - Failed to parse date/time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var validationErr *createPublicBooking.ValidationError
		switch {
		case errors.Is(err, createPublicBooking.ErrSlotExpired):
			h.logger.Warn("POST /booking - Slot expired: date=%s time=%s", req.Date, req.Time)
			handlers.RespondError(w, http.StatusConflict, msgSlotExpired)

		case errors.As(err, &validationErr):
			h.logger.Warn("POST /booking - Validation failed: %v", err)
			handlers.RespondJSON(w, http.StatusUnprocessableEntity, FromValidationError(validationErr))

		case errors.Is(err, createPublicBooking.ErrInvalidInput):
			h.logger.Warn("POST /booking - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDateTime)

		default:
			h.logger.Error("POST /booking - Failed to create booking: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /booking - Booking created: id=%s date=%s time=%s",
		result.ID, req.Date, req.Time)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
