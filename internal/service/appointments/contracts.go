package appointments

import (
	"context"

	"github.com/psiagenda/agenda-service/internal/domain"
)

// AppointmentRepository is the persistence contract for appointments
type AppointmentRepository interface {
	Create(ctx context.Context, appointment *domain.Appointment) (*domain.Appointment, error)
	GetByID(ctx context.Context, id string) (*domain.Appointment, error)
	List(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error)
	UpdateStatus(ctx context.Context, id string, status domain.AppointmentStatus) error
	MarkRead(ctx context.Context, id string) error
	MarkAllRead(ctx context.Context) error
}

// PatientRepository is the slice of the patient store the service needs to
// resolve phone numbers
type PatientRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Patient, error)
}

// Logger is the logging contract of the service
type Logger interface {
	Debug(format string, args ...interface{})
	Info(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Error(format string, args ...interface{})
}
