package patients

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/psiagenda/agenda-service/internal/domain"
	patientRepo "github.com/psiagenda/agenda-service/internal/infra/storage/patient"
	"github.com/psiagenda/agenda-service/internal/service/patients/models"
)

// Service manages the patient records of the professional
type Service struct {
	repo         PatientRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService creates a new patients service
func NewService(repo PatientRepository, timeProvider TimeProvider, logger Logger) *Service {
	return &Service{
		repo:         repo,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// List returns all patients ordered by name
func (s *Service) List(ctx context.Context) ([]*domain.Patient, error) {
	patients, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}
	return patients, nil
}

// Create registers a new patient
func (s *Service) Create(ctx context.Context, req *models.CreatePatientRequest) (*domain.Patient, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	s.logger.Info("Create: creating patient %q", name)

	patient := &domain.Patient{
		ID:        uuid.NewString(),
		Name:      name,
		Email:     strings.TrimSpace(req.Email),
		Phone:     strings.TrimSpace(req.Phone),
		AvatarURL: req.AvatarURL,
	}

	created, err := s.repo.Create(ctx, patient)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created patient id=%s", created.ID)
	return created, nil
}

// GetByID returns a patient together with their clinical notes, newest first
func (s *Service) GetByID(ctx context.Context, id string) (*models.PatientWithNotes, error) {
	patient, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, patientRepo.ErrPatientNotFound) {
			s.logger.Warn("GetByID: patient id=%s not found", id)
			return nil, ErrPatientNotFound
		}
		s.logger.Error("GetByID: repository error for id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	notes, err := s.repo.GetNotes(ctx, id)
	if err != nil {
		s.logger.Error("GetByID: failed to get notes for patient id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - failed to get notes: %v", ErrInternal, err)
	}

	return &models.PatientWithNotes{Patient: patient, Notes: notes}, nil
}

// Update overwrites the editable fields of a patient
func (s *Service) Update(ctx context.Context, id string, req *models.UpdatePatientRequest) (*domain.Patient, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	s.logger.Info("Update: updating patient id=%s", id)

	patient := &domain.Patient{
		ID:        id,
		Name:      name,
		Email:     strings.TrimSpace(req.Email),
		Phone:     strings.TrimSpace(req.Phone),
		AvatarURL: req.AvatarURL,
	}

	if err := s.repo.Update(ctx, patient); err != nil {
		if errors.Is(err, patientRepo.ErrPatientNotFound) {
			s.logger.Warn("Update: patient id=%s not found", id)
			return nil, ErrPatientNotFound
		}
		s.logger.Error("Update: repository error for id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	return s.getPatient(ctx, id)
}

// AddNote appends a clinical note to the patient's record
func (s *Service) AddNote(ctx context.Context, patientID string, req *models.AddNoteRequest) (*domain.ClinicalNote, error) {
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, fmt.Errorf("%w: content is required", ErrInvalidInput)
	}

	// The patient must exist before a note is attached
	if _, err := s.getPatient(ctx, patientID); err != nil {
		return nil, err
	}

	date := req.Date
	if date.IsZero() {
		date = s.timeProvider.Now()
	}

	note := &domain.ClinicalNote{
		ID:        uuid.NewString(),
		PatientID: patientID,
		Date:      date,
		Content:   content,
	}

	created, err := s.repo.AddNote(ctx, note)
	if err != nil {
		s.logger.Error("AddNote: repository error for patient id=%s: %v", patientID, err)
		return nil, fmt.Errorf("%w: AddNote - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("AddNote: added note id=%s to patient id=%s", created.ID, patientID)
	return created, nil
}

// getPatient fetches a patient mapping the not-found sentinel
func (s *Service) getPatient(ctx context.Context, id string) (*domain.Patient, error) {
	patient, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, patientRepo.ErrPatientNotFound) {
			return nil, ErrPatientNotFound
		}
		s.logger.Error("getPatient: repository error for id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: getPatient - repository error: %v", ErrInternal, err)
	}
	return patient, nil
}
