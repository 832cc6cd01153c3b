package create_public_booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/psiagenda/agenda-service/internal/domain"
)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

type fakeAppointmentRepo struct {
	created *domain.Appointment
	err     error
}

func (f *fakeAppointmentRepo) Create(_ context.Context, a *domain.Appointment) (*domain.Appointment, error) {
	if f.err != nil {
		return nil, f.err
	}
	stored := *a
	stored.CreatedAt = time.Date(2026, 3, 2, 10, 0, 0, 0, time.Local)
	f.created = &stored
	return &stored, nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func newTestUseCase(repo *fakeAppointmentRepo, now time.Time) *UseCase {
	uc := NewUseCase(repo, nopLogger{})
	uc.timeProvider = fixedClock{now: now}
	return uc
}

func validRequest() *Request {
	return &Request{
		Date:        time.Date(2026, 3, 12, 0, 0, 0, 0, time.Local),
		Time:        "14:00",
		PatientName: "Maria Souza",
		Email:       "maria@example.com",
		Phone:       "(11) 99999-0000",
		DateOfBirth: "1990-05-20",
	}
}

func TestExecute_Success(t *testing.T) {
	repo := &fakeAppointmentRepo{}
	uc := newTestUseCase(repo, time.Date(2026, 3, 2, 10, 0, 0, 0, time.Local))

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, domain.GuestPatientID, resp.PatientID)
	assert.Equal(t, "Maria Souza", resp.PatientName)
	assert.Equal(t, string(domain.StatusScheduled), resp.Status)
	assert.False(t, resp.Read)
	assert.Equal(t,
		"Contato: maria@example.com | Tel: (11) 99999-0000 | Nascimento: 20/05/1990",
		resp.ContactNotes)

	require.NotNil(t, repo.created)
	assert.Equal(t, domain.StatusScheduled, repo.created.Status)
	assert.False(t, repo.created.Read)
}

func TestExecute_MissingDateOrTime(t *testing.T) {
	uc := newTestUseCase(&fakeAppointmentRepo{}, time.Date(2026, 3, 2, 10, 0, 0, 0, time.Local))

	req := validRequest()
	req.Date = time.Time{}
	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)

	req = validRequest()
	req.Time = ""
	_, err = uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)

	req = validRequest()
	req.Time = "25:00"
	_, err = uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_FieldErrorsAccumulate(t *testing.T) {
	uc := newTestUseCase(&fakeAppointmentRepo{}, time.Date(2026, 3, 2, 10, 0, 0, 0, time.Local))

	req := validRequest()
	req.PatientName = "  "
	req.Email = ""
	req.Phone = ""
	req.DateOfBirth = ""

	_, err := uc.Execute(context.Background(), req)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	require.Len(t, vErr.Fields, 4)

	codes := make(map[string]string, len(vErr.Fields))
	for _, f := range vErr.Fields {
		codes[f.Field] = f.Code
	}
	assert.Equal(t, CodeMissingName, codes["patientName"])
	assert.Equal(t, CodeMissingEmail, codes["email"])
	assert.Equal(t, CodeMissingPhone, codes["phone"])
	assert.Equal(t, CodeMissingDateOfBirth, codes["dateOfBirth"])
}

func TestExecute_SlotExpiredDominatesFieldErrors(t *testing.T) {
	// slot on March 2nd 09:00, submitted at 10:00 the same day, with an
	// empty contact form on top
	uc := newTestUseCase(&fakeAppointmentRepo{}, time.Date(2026, 3, 2, 10, 0, 0, 0, time.Local))

	req := &Request{
		Date: time.Date(2026, 3, 2, 0, 0, 0, 0, time.Local),
		Time: "09:00",
	}

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSlotExpired)
}

func TestExecute_SlotAtExactlyNowIsExpired(t *testing.T) {
	uc := newTestUseCase(&fakeAppointmentRepo{}, time.Date(2026, 3, 2, 14, 0, 0, 0, time.Local))

	req := validRequest()
	req.Date = time.Date(2026, 3, 2, 0, 0, 0, 0, time.Local)
	req.Time = "14:00"

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSlotExpired)
}

func TestExecute_SlotInsideNoticeWindowStillAccepted(t *testing.T) {
	// the resubmission guard uses raw "now", not now + minNoticeHours: a
	// slot one minute ahead is still accepted here
	uc := newTestUseCase(&fakeAppointmentRepo{}, time.Date(2026, 3, 2, 13, 59, 0, 0, time.Local))

	req := validRequest()
	req.Date = time.Date(2026, 3, 2, 0, 0, 0, 0, time.Local)
	req.Time = "14:00"

	_, err := uc.Execute(context.Background(), req)
	assert.NoError(t, err)
}

func TestExecute_RepositoryError(t *testing.T) {
	uc := newTestUseCase(&fakeAppointmentRepo{err: errors.New("connection refused")},
		time.Date(2026, 3, 2, 10, 0, 0, 0, time.Local))

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrInternal)
}

func TestExecute_UnknownDateOfBirthInContactNotes(t *testing.T) {
	repo := &fakeAppointmentRepo{}
	uc := newTestUseCase(repo, time.Date(2026, 3, 2, 10, 0, 0, 0, time.Local))

	req := validRequest()
	req.DateOfBirth = "1990-05-20"
	_, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, repo.created.ContactNotes)
	assert.Contains(t, *repo.created.ContactNotes, "Nascimento: 20/05/1990")
}
