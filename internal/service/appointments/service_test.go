package appointments

import (
	"context"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/psiagenda/agenda-service/internal/domain"
	appointmentRepo "github.com/psiagenda/agenda-service/internal/infra/storage/appointment"
	patientRepo "github.com/psiagenda/agenda-service/internal/infra/storage/patient"
	"github.com/psiagenda/agenda-service/internal/service/appointments/models"
)

const testBookingURL = "https://agenda.example.com/booking"

type fakeAppointmentRepo struct {
	byID map[string]*domain.Appointment
}

func newFakeAppointmentRepo(appointments ...*domain.Appointment) *fakeAppointmentRepo {
	byID := make(map[string]*domain.Appointment, len(appointments))
	for _, a := range appointments {
		byID[a.ID] = a
	}
	return &fakeAppointmentRepo{byID: byID}
}

func (f *fakeAppointmentRepo) Create(_ context.Context, a *domain.Appointment) (*domain.Appointment, error) {
	stored := *a
	stored.CreatedAt = time.Date(2026, 3, 2, 10, 0, 0, 0, time.Local)
	f.byID[stored.ID] = &stored
	return &stored, nil
}

func (f *fakeAppointmentRepo) GetByID(_ context.Context, id string) (*domain.Appointment, error) {
	a, ok := f.byID[id]
	if !ok {
		return nil, appointmentRepo.ErrAppointmentNotFound
	}
	copied := *a
	return &copied, nil
}

func (f *fakeAppointmentRepo) List(_ context.Context, _ domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	out := make([]*domain.Appointment, 0, len(f.byID))
	for _, a := range f.byID {
		copied := *a
		out = append(out, &copied)
	}
	return out, nil
}

func (f *fakeAppointmentRepo) UpdateStatus(_ context.Context, id string, status domain.AppointmentStatus) error {
	a, ok := f.byID[id]
	if !ok {
		return appointmentRepo.ErrAppointmentNotFound
	}
	a.Status = status
	return nil
}

func (f *fakeAppointmentRepo) MarkRead(_ context.Context, id string) error {
	a, ok := f.byID[id]
	if !ok {
		return appointmentRepo.ErrAppointmentNotFound
	}
	a.Read = true
	return nil
}

func (f *fakeAppointmentRepo) MarkAllRead(_ context.Context) error {
	for _, a := range f.byID {
		a.Read = true
	}
	return nil
}

type fakePatientRepo struct {
	byID map[string]*domain.Patient
}

func (f *fakePatientRepo) GetByID(_ context.Context, id string) (*domain.Patient, error) {
	p, ok := f.byID[id]
	if !ok {
		return nil, patientRepo.ErrPatientNotFound
	}
	return p, nil
}

type nopLogger struct{}

func (nopLogger) Debug(format string, args ...interface{}) {}
func (nopLogger) Info(format string, args ...interface{})  {}
func (nopLogger) Warn(format string, args ...interface{})  {}
func (nopLogger) Error(format string, args ...interface{}) {}

func newTestService(appointments *fakeAppointmentRepo, patients *fakePatientRepo) *Service {
	if patients == nil {
		patients = &fakePatientRepo{byID: map[string]*domain.Patient{}}
	}
	return NewService(appointments, patients, nopLogger{}, testBookingURL)
}

func scheduledAppointment(id string) *domain.Appointment {
	return &domain.Appointment{
		ID:          id,
		PatientID:   domain.GuestPatientID,
		PatientName: "Maria Souza",
		Date:        time.Date(2026, 3, 12, 0, 0, 0, 0, time.Local),
		Time:        "14:00",
		Status:      domain.StatusScheduled,
	}
}

func TestCreate_ResolvesPatientName(t *testing.T) {
	patients := &fakePatientRepo{byID: map[string]*domain.Patient{
		"p1": {ID: "p1", Name: "João Pereira", Phone: "(11) 98888-7777"},
	}}
	svc := newTestService(newFakeAppointmentRepo(), patients)

	created, err := svc.Create(context.Background(), &models.CreateAppointmentRequest{
		PatientID: "p1",
		Date:      time.Date(2026, 3, 12, 0, 0, 0, 0, time.Local),
		Time:      "10:00",
	})
	require.NoError(t, err)

	assert.Equal(t, "João Pereira", created.PatientName)
	assert.Equal(t, domain.StatusScheduled, created.Status)
	assert.True(t, created.Read)
	assert.NotEmpty(t, created.ID)
}

func TestCreate_GuestWhenNoPatientID(t *testing.T) {
	svc := newTestService(newFakeAppointmentRepo(), nil)

	created, err := svc.Create(context.Background(), &models.CreateAppointmentRequest{
		PatientName: "Ana Lima",
		Date:        time.Date(2026, 3, 12, 0, 0, 0, 0, time.Local),
		Time:        "10:00",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.GuestPatientID, created.PatientID)
}

func TestCreate_Validation(t *testing.T) {
	svc := newTestService(newFakeAppointmentRepo(), nil)

	_, err := svc.Create(context.Background(), &models.CreateAppointmentRequest{
		Date: time.Date(2026, 3, 12, 0, 0, 0, 0, time.Local),
		Time: "10:00",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Create(context.Background(), &models.CreateAppointmentRequest{
		PatientName: "Ana Lima",
		Time:        "10:00",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Create(context.Background(), &models.CreateAppointmentRequest{
		PatientName: "Ana Lima",
		Date:        time.Date(2026, 3, 12, 0, 0, 0, 0, time.Local),
		Time:        "10h",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCreate_UnknownPatient(t *testing.T) {
	svc := newTestService(newFakeAppointmentRepo(), nil)

	_, err := svc.Create(context.Background(), &models.CreateAppointmentRequest{
		PatientID: "missing",
		Date:      time.Date(2026, 3, 12, 0, 0, 0, 0, time.Local),
		Time:      "10:00",
	})
	assert.ErrorIs(t, err, ErrPatientNotFound)
}

func TestUpdateStatus_Transitions(t *testing.T) {
	tests := []struct {
		name    string
		from    domain.AppointmentStatus
		to      domain.AppointmentStatus
		allowed bool
	}{
		{"scheduled to confirmed", domain.StatusScheduled, domain.StatusConfirmed, true},
		{"scheduled to cancelled", domain.StatusScheduled, domain.StatusCancelled, true},
		{"scheduled to completed", domain.StatusScheduled, domain.StatusCompleted, true},
		{"confirmed to completed", domain.StatusConfirmed, domain.StatusCompleted, true},
		{"confirmed to cancelled", domain.StatusConfirmed, domain.StatusCancelled, true},
		{"cancelled to confirmed", domain.StatusCancelled, domain.StatusConfirmed, false},
		{"cancelled to completed", domain.StatusCancelled, domain.StatusCompleted, false},
		{"completed to cancelled", domain.StatusCompleted, domain.StatusCancelled, false},
		{"anything to scheduled", domain.StatusConfirmed, domain.StatusScheduled, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			appointment := scheduledAppointment("a1")
			appointment.Status = tt.from
			repo := newFakeAppointmentRepo(appointment)
			svc := newTestService(repo, nil)

			updated, err := svc.UpdateStatus(context.Background(), "a1", tt.to)
			if !tt.allowed {
				assert.ErrorIs(t, err, ErrInvalidTransition)
				assert.Equal(t, tt.from, repo.byID["a1"].Status)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.to, updated.Status)
			assert.Equal(t, tt.to, repo.byID["a1"].Status)
		})
	}
}

func TestUpdateStatus_NotFound(t *testing.T) {
	svc := newTestService(newFakeAppointmentRepo(), nil)

	_, err := svc.UpdateStatus(context.Background(), "missing", domain.StatusConfirmed)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestWhatsAppAction_ConfirmTransitionsAndBuildsLink(t *testing.T) {
	appointment := scheduledAppointment("a1")
	notes := "Contato: maria@example.com | Tel: (11) 99999-0000 | Nascimento: 20/05/1990"
	appointment.ContactNotes = &notes
	repo := newFakeAppointmentRepo(appointment)
	svc := newTestService(repo, nil)

	resp, err := svc.WhatsAppAction(context.Background(), "a1", models.ActionConfirm)
	require.NoError(t, err)

	assert.Equal(t, domain.StatusConfirmed, resp.Status)
	assert.Equal(t, domain.StatusConfirmed, repo.byID["a1"].Status)
	assert.Contains(t, resp.URL, "https://wa.me/5511999990000?text=")

	decoded, err := url.QueryUnescape(resp.URL[len("https://wa.me/5511999990000?text="):])
	require.NoError(t, err)
	assert.Equal(t, "Olá Maria Souza, confirmando sua consulta para o dia 12/03/2026 às 14:00. Aguardamos você!", decoded)
}

func TestWhatsAppAction_CancelTransitions(t *testing.T) {
	appointment := scheduledAppointment("a1")
	notes := "Contato: maria@example.com | Tel: 11999990000 | Nascimento: Não informado"
	appointment.ContactNotes = &notes
	repo := newFakeAppointmentRepo(appointment)
	svc := newTestService(repo, nil)

	resp, err := svc.WhatsAppAction(context.Background(), "a1", models.ActionCancel)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, resp.Status)
	assert.Contains(t, resp.URL, "foi+cancelada")
}

func TestWhatsAppAction_RescheduleKeepsStatusAndEmbedsBookingURL(t *testing.T) {
	patients := &fakePatientRepo{byID: map[string]*domain.Patient{
		"p1": {ID: "p1", Name: "João Pereira", Phone: "(11) 98888-7777"},
	}}
	appointment := scheduledAppointment("a1")
	appointment.PatientID = "p1"
	appointment.PatientName = "João Pereira"
	repo := newFakeAppointmentRepo(appointment)
	svc := newTestService(repo, patients)

	resp, err := svc.WhatsAppAction(context.Background(), "a1", models.ActionReschedule)
	require.NoError(t, err)

	assert.Equal(t, domain.StatusScheduled, resp.Status)
	assert.Equal(t, domain.StatusScheduled, repo.byID["a1"].Status)
	assert.Contains(t, resp.URL, "wa.me/5511988887777")
	assert.Contains(t, resp.URL, url.QueryEscape(testBookingURL))
}

func TestWhatsAppAction_PatientPhonePreferredOverNotes(t *testing.T) {
	patients := &fakePatientRepo{byID: map[string]*domain.Patient{
		"p1": {ID: "p1", Name: "João Pereira", Phone: "(21) 97777-6666"},
	}}
	appointment := scheduledAppointment("a1")
	appointment.PatientID = "p1"
	notes := "Tel: (11) 99999-0000"
	appointment.ContactNotes = &notes
	svc := newTestService(newFakeAppointmentRepo(appointment), patients)

	resp, err := svc.WhatsAppAction(context.Background(), "a1", models.ActionReschedule)
	require.NoError(t, err)
	assert.Contains(t, resp.URL, "wa.me/5521977776666")
}

func TestWhatsAppAction_NoPhone(t *testing.T) {
	appointment := scheduledAppointment("a1")
	svc := newTestService(newFakeAppointmentRepo(appointment), nil)

	_, err := svc.WhatsAppAction(context.Background(), "a1", models.ActionConfirm)
	assert.ErrorIs(t, err, ErrNoPhone)
}

func TestWhatsAppAction_InvalidAction(t *testing.T) {
	svc := newTestService(newFakeAppointmentRepo(scheduledAppointment("a1")), nil)

	_, err := svc.WhatsAppAction(context.Background(), "a1", "shout")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestWhatsAppAction_ConfirmOnCancelledFails(t *testing.T) {
	appointment := scheduledAppointment("a1")
	appointment.Status = domain.StatusCancelled
	notes := "Tel: 11999990000"
	appointment.ContactNotes = &notes
	svc := newTestService(newFakeAppointmentRepo(appointment), nil)

	_, err := svc.WhatsAppAction(context.Background(), "a1", models.ActionConfirm)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestMarkRead(t *testing.T) {
	appointment := scheduledAppointment("a1")
	appointment.Read = false
	repo := newFakeAppointmentRepo(appointment)
	svc := newTestService(repo, nil)

	require.NoError(t, svc.MarkRead(context.Background(), "a1"))
	assert.True(t, repo.byID["a1"].Read)

	assert.ErrorIs(t, svc.MarkRead(context.Background(), "missing"), ErrAppointmentNotFound)
}

func TestMarkAllRead(t *testing.T) {
	a1 := scheduledAppointment("a1")
	a2 := scheduledAppointment("a2")
	repo := newFakeAppointmentRepo(a1, a2)
	svc := newTestService(repo, nil)

	require.NoError(t, svc.MarkAllRead(context.Background()))
	assert.True(t, repo.byID["a1"].Read)
	assert.True(t, repo.byID["a2"].Read)
}
