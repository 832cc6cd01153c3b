package patients

import (
	"context"
	"time"

	"github.com/psiagenda/agenda-service/internal/domain"
)

// PatientRepository is the persistence contract for patients and their
// clinical notes
type PatientRepository interface {
	Create(ctx context.Context, patient *domain.Patient) (*domain.Patient, error)
	GetByID(ctx context.Context, id string) (*domain.Patient, error)
	List(ctx context.Context) ([]*domain.Patient, error)
	Update(ctx context.Context, patient *domain.Patient) error
	AddNote(ctx context.Context, note *domain.ClinicalNote) (*domain.ClinicalNote, error)
	GetNotes(ctx context.Context, patientID string) ([]*domain.ClinicalNote, error)
}

// TimeProvider supplies the current time, injectable for tests
type TimeProvider interface {
	Now() time.Time
}

// Logger is the logging contract of the service
type Logger interface {
	Debug(format string, args ...interface{})
	Info(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Error(format string, args ...interface{})
}
