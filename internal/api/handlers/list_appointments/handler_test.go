package list_appointments

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/psiagenda/agenda-service/internal/domain"
	"github.com/psiagenda/agenda-service/internal/service/appointments/models"
)

type fakeService struct {
	result []*domain.Appointment
	err    error

	gotReq *models.ListAppointmentsRequest
}

func (f *fakeService) List(_ context.Context, req *models.ListAppointmentsRequest) ([]*domain.Appointment, error) {
	f.gotReq = req
	return f.result, f.err
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func listAppointments(t *testing.T, h *Handler, query string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/appointments"+query, nil)
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_NoFilters(t *testing.T) {
	svc := &fakeService{result: []*domain.Appointment{
		{
			ID:          "a1",
			PatientID:   domain.GuestPatientID,
			PatientName: "Maria Souza",
			Date:        time.Date(2026, 3, 12, 0, 0, 0, 0, time.Local),
			Time:        "14:00",
			Status:      domain.StatusScheduled,
		},
	}}
	h := NewHandler(svc, nopLogger{})

	rec := listAppointments(t, h, "")

	require.Equal(t, http.StatusOK, rec.Code)

	var resp AppointmentListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Appointments, 1)
	assert.Equal(t, "2026-03-12", resp.Appointments[0].Date)
	assert.Equal(t, "Agendado", resp.Appointments[0].Status)

	require.NotNil(t, svc.gotReq)
	assert.Nil(t, svc.gotReq.Status)
	assert.Nil(t, svc.gotReq.StartDate)
	assert.False(t, svc.gotReq.OnlyUnread)
}

func TestHandle_Filters(t *testing.T) {
	svc := &fakeService{}
	h := NewHandler(svc, nopLogger{})

	rec := listAppointments(t, h, "?status=Confirmado&startDate=2026-03-01&endDate=2026-03-31&unread=true")

	require.Equal(t, http.StatusOK, rec.Code)

	require.NotNil(t, svc.gotReq)
	require.NotNil(t, svc.gotReq.Status)
	assert.Equal(t, domain.StatusConfirmed, *svc.gotReq.Status)
	require.NotNil(t, svc.gotReq.StartDate)
	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.Local), *svc.gotReq.StartDate)
	require.NotNil(t, svc.gotReq.EndDate)
	assert.Equal(t, time.Date(2026, 3, 31, 0, 0, 0, 0, time.Local), *svc.gotReq.EndDate)
	assert.True(t, svc.gotReq.OnlyUnread)
}

func TestHandle_InvalidStatus(t *testing.T) {
	h := NewHandler(&fakeService{}, nopLogger{})

	rec := listAppointments(t, h, "?status=Pending")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), msgInvalidStatus)
}

func TestHandle_InvalidDates(t *testing.T) {
	h := NewHandler(&fakeService{}, nopLogger{})

	assert.Equal(t, http.StatusBadRequest, listAppointments(t, h, "?startDate=01-03-2026").Code)
	assert.Equal(t, http.StatusBadRequest, listAppointments(t, h, "?endDate=hoje").Code)
}

func TestHandle_EmptyListIsNotNull(t *testing.T) {
	h := NewHandler(&fakeService{}, nopLogger{})

	rec := listAppointments(t, h, "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"appointments":[]`)
}

func TestHandle_ServiceError(t *testing.T) {
	h := NewHandler(&fakeService{err: assert.AnError}, nopLogger{})

	rec := listAppointments(t, h, "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
