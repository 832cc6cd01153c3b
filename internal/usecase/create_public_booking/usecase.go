package create_public_booking

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/psiagenda/agenda-service/internal/domain"
)

// UseCase validates a public booking submission and persists the resulting
// appointment. It has no dependency on the slot generator: the temporal
// check is re-derived independently to catch races between slot display and
// submission.
type UseCase struct {
	appointmentRepo AppointmentRepository
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase creates a new use case instance
func NewUseCase(appointmentRepo AppointmentRepository, logger Logger) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute validates the submission and, on success, creates the appointment
// with status Agendado and an unread notification flag.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreatePublicBooking: date=%s, time=%s, name=%q",
		req.Date.Format(domain.DateFormat), req.Time, req.PatientName)

	// 1. The slot selection itself must be present and well-formed
	if req.Date.IsZero() {
		uc.logger.Warn("CreatePublicBooking: date is required")
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if req.Time.IsZero() {
		uc.logger.Warn("CreatePublicBooking: time is required")
		return nil, fmt.Errorf("%w: time is required", ErrInvalidInput)
	}
	if err := req.Time.Validate(); err != nil {
		uc.logger.Warn("CreatePublicBooking: invalid time format: %v", err)
		return nil, fmt.Errorf("%w: invalid time format: %v", ErrInvalidInput, err)
	}

	// 2. Current time
	now := uc.timeProvider.Now()

	// 3. Contact field checks, accumulated per field
	fieldErrs := validateContactFields(req, now)

	// 4. Temporal re-check against raw "now". This dominates field errors:
	// an expired slot sends the user back to slot selection regardless of
	// the rest of the form.
	expired, err := isSlotExpired(req.Date, req.Time, now)
	if err != nil {
		uc.logger.Error("CreatePublicBooking: failed to compute slot instant: %v", err)
		return nil, fmt.Errorf("%w: failed to compute slot instant: %v", ErrInternal, err)
	}
	if expired {
		uc.logger.Warn("CreatePublicBooking: slot %s %s already passed",
			req.Date.Format(domain.DateFormat), req.Time)
		return nil, ErrSlotExpired
	}

	if len(fieldErrs) > 0 {
		uc.logger.Warn("CreatePublicBooking: %d field errors", len(fieldErrs))
		return nil, &ValidationError{Fields: fieldErrs}
	}

	// 5. Synthesize contact notes for the guest booker
	contactNotes := buildContactNotes(req, now.Location())

	appointment := &domain.Appointment{
		ID:           uuid.NewString(),
		PatientID:    domain.GuestPatientID,
		PatientName:  req.PatientName,
		Date:         req.Date,
		Time:         req.Time,
		Status:       domain.StatusScheduled,
		ContactNotes: &contactNotes,
		Read:         false,
	}

	created, err := uc.appointmentRepo.Create(ctx, appointment)
	if err != nil {
		uc.logger.Error("CreatePublicBooking: failed to create appointment: %v", err)
		return nil, fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
	}

	uc.logger.Info("CreatePublicBooking: created appointment id=%s for %s %s",
		created.ID, created.Date.Format(domain.DateFormat), created.Time)

	return &Response{
		ID:           created.ID,
		PatientID:    created.PatientID,
		PatientName:  created.PatientName,
		Date:         created.Date,
		Time:         created.Time,
		Status:       string(created.Status),
		ContactNotes: contactNotes,
		Read:         created.Read,
		CreatedAt:    created.CreatedAt,
	}, nil
}

// buildContactNotes synthesizes the free-text contact block stored on
// appointments of bookers without a patient record. The "Tel:" marker is
// what the WhatsApp fallback later extracts the phone from.
func buildContactNotes(req *Request, loc *time.Location) string {
	dobFormatted := "Não informado"
	if dob, err := time.ParseInLocation(domain.DateFormat, req.DateOfBirth, loc); err == nil {
		dobFormatted = dob.Format(domain.DateFormatBR)
	}
	return fmt.Sprintf("Contato: %s | Tel: %s | Nascimento: %s", req.Email, req.Phone, dobFormatted)
}
