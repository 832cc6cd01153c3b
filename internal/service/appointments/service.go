package appointments

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/psiagenda/agenda-service/internal/domain"
	appointmentRepo "github.com/psiagenda/agenda-service/internal/infra/storage/appointment"
	patientRepo "github.com/psiagenda/agenda-service/internal/infra/storage/patient"
	"github.com/psiagenda/agenda-service/internal/integrations/whatsapp"
	"github.com/psiagenda/agenda-service/internal/service/appointments/models"
)

// Service manages the professional's agenda
type Service struct {
	appointments AppointmentRepository
	patients     PatientRepository
	logger       Logger

	// publicBookingURL is embedded in reschedule messages
	publicBookingURL string
}

// NewService creates a new appointments service
func NewService(
	appointments AppointmentRepository,
	patients PatientRepository,
	logger Logger,
	publicBookingURL string,
) *Service {
	return &Service{
		appointments:     appointments,
		patients:         patients,
		logger:           logger,
		publicBookingURL: publicBookingURL,
	}
}

// List returns appointments matching the filter
func (s *Service) List(ctx context.Context, req *models.ListAppointmentsRequest) ([]*domain.Appointment, error) {
	result, err := s.appointments.List(ctx, req.ToDomainFilter())
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}
	return result, nil
}

// GetByID returns a single appointment
func (s *Service) GetByID(ctx context.Context, id string) (*domain.Appointment, error) {
	appointment, err := s.appointments.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetByID: appointment id=%s not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByID: repository error for id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}
	return appointment, nil
}

// Create registers an appointment on behalf of the admin. Admin entries are
// born already read; public bookings go through the booking use case instead.
func (s *Service) Create(ctx context.Context, req *models.CreateAppointmentRequest) (*domain.Appointment, error) {
	s.logger.Info("Create: creating appointment for patient=%s on %s %s",
		req.PatientID, req.Date.Format(domain.DateFormat), req.Time)

	// 1. Validate the request
	if strings.TrimSpace(req.PatientName) == "" && req.PatientID == "" {
		return nil, fmt.Errorf("%w: patient is required", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if err := req.Time.Validate(); err != nil {
		return nil, fmt.Errorf("%w: time: %v", ErrInvalidInput, err)
	}

	patientID := req.PatientID
	patientName := strings.TrimSpace(req.PatientName)

	// 2. Resolve the patient record when one is referenced
	if patientID != "" && patientID != domain.GuestPatientID {
		patient, err := s.patients.GetByID(ctx, patientID)
		if err != nil {
			if errors.Is(err, patientRepo.ErrPatientNotFound) {
				s.logger.Warn("Create: patient id=%s not found", patientID)
				return nil, ErrPatientNotFound
			}
			s.logger.Error("Create: failed to get patient id=%s: %v", patientID, err)
			return nil, fmt.Errorf("%w: Create - failed to get patient: %v", ErrInternal, err)
		}
		if patientName == "" {
			patientName = patient.Name
		}
	}
	if patientID == "" {
		patientID = domain.GuestPatientID
	}

	// 3. Persist
	appointment := &domain.Appointment{
		ID:           uuid.NewString(),
		PatientID:    patientID,
		PatientName:  patientName,
		Date:         req.Date,
		Time:         req.Time,
		Status:       domain.StatusScheduled,
		ContactNotes: req.Notes,
		Read:         true,
	}

	created, err := s.appointments.Create(ctx, appointment)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created appointment id=%s", created.ID)
	return created, nil
}

// UpdateStatus moves an appointment to a new status, enforcing the allowed
// transitions
func (s *Service) UpdateStatus(ctx context.Context, id string, status domain.AppointmentStatus) (*domain.Appointment, error) {
	s.logger.Info("UpdateStatus: appointment id=%s -> %s", id, status)

	appointment, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !appointment.CanTransitionTo(status) {
		s.logger.Warn("UpdateStatus: transition %s -> %s not allowed for id=%s",
			appointment.Status, status, id)
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, appointment.Status, status)
	}

	if err := s.appointments.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("UpdateStatus: repository error for id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	appointment.Status = status
	return appointment, nil
}

// MarkRead clears the unread badge of one appointment
func (s *Service) MarkRead(ctx context.Context, id string) error {
	if err := s.appointments.MarkRead(ctx, id); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("MarkRead: appointment id=%s not found", id)
			return ErrAppointmentNotFound
		}
		s.logger.Error("MarkRead: repository error for id=%s: %v", id, err)
		return fmt.Errorf("%w: MarkRead - repository error: %v", ErrInternal, err)
	}
	return nil
}

// MarkAllRead clears the unread badge of every appointment
func (s *Service) MarkAllRead(ctx context.Context) error {
	if err := s.appointments.MarkAllRead(ctx); err != nil {
		s.logger.Error("MarkAllRead: repository error: %v", err)
		return fmt.Errorf("%w: MarkAllRead - repository error: %v", ErrInternal, err)
	}
	return nil
}

// WhatsAppAction builds the wa.me link for the given action and, for confirm
// and cancel, transitions the appointment status first
func (s *Service) WhatsAppAction(ctx context.Context, id string, action models.WhatsAppAction) (*models.WhatsAppLinkResponse, error) {
	s.logger.Info("WhatsAppAction: appointment id=%s action=%s", id, action)

	// 1. Validate the action
	if !action.Valid() {
		return nil, fmt.Errorf("%w: unknown action %q", ErrInvalidInput, action)
	}

	// 2. Load the appointment
	appointment, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// 3. Resolve the phone number
	phone, err := s.resolvePhone(ctx, appointment)
	if err != nil {
		return nil, err
	}

	// 4. Apply the status transition for confirm and cancel
	switch action {
	case models.ActionConfirm:
		appointment, err = s.UpdateStatus(ctx, id, domain.StatusConfirmed)
	case models.ActionCancel:
		appointment, err = s.UpdateStatus(ctx, id, domain.StatusCancelled)
	}
	if err != nil {
		return nil, err
	}

	// 5. Build the message and link
	dateBR := appointment.Date.Format(domain.DateFormatBR)

	var message string
	switch action {
	case models.ActionConfirm:
		message = whatsapp.ConfirmMessage(appointment.PatientName, dateBR, appointment.Time.String())
	case models.ActionCancel:
		message = whatsapp.CancelMessage(appointment.PatientName, dateBR, appointment.Time.String())
	case models.ActionReschedule:
		message = whatsapp.RescheduleMessage(appointment.PatientName, s.publicBookingURL)
	}

	link := whatsapp.BuildLink(whatsapp.NormalizePhone(phone), message)

	s.logger.Info("WhatsAppAction: built %s link for appointment id=%s", action, id)
	return &models.WhatsAppLinkResponse{
		URL:    link,
		Action: action,
		Status: appointment.Status,
	}, nil
}

// resolvePhone finds a phone number for the appointment: the patient record
// when one exists, otherwise the "Tel:" segment of the contact notes written
// by public bookings.
func (s *Service) resolvePhone(ctx context.Context, appointment *domain.Appointment) (string, error) {
	if appointment.PatientID != "" && appointment.PatientID != domain.GuestPatientID {
		patient, err := s.patients.GetByID(ctx, appointment.PatientID)
		if err != nil && !errors.Is(err, patientRepo.ErrPatientNotFound) {
			s.logger.Error("resolvePhone: failed to get patient id=%s: %v", appointment.PatientID, err)
			return "", fmt.Errorf("%w: resolvePhone - failed to get patient: %v", ErrInternal, err)
		}
		if patient != nil && patient.Phone != "" {
			return patient.Phone, nil
		}
	}

	if appointment.ContactNotes != nil {
		if phone := whatsapp.ExtractPhoneFromNotes(*appointment.ContactNotes); phone != "" {
			return phone, nil
		}
	}

	s.logger.Warn("resolvePhone: no phone for appointment id=%s", appointment.ID)
	return "", ErrNoPhone
}
