package create_public_booking

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	createPublicBooking "github.com/psiagenda/agenda-service/internal/usecase/create_public_booking"
)

type fakeUseCase struct {
	resp *createPublicBooking.Response
	err  error

	gotReq *createPublicBooking.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *createPublicBooking.Request) (*createPublicBooking.Response, error) {
	f.gotReq = req
	return f.resp, f.err
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func postBooking(t *testing.T, h *Handler, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/booking", bytes.NewReader(raw))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func validBody() CreateBookingRequest {
	return CreateBookingRequest{
		Date:        "2026-03-12",
		Time:        "14:00",
		PatientName: "Maria Souza",
		Email:       "maria@example.com",
		Phone:       "(11) 99999-0000",
		DateOfBirth: "1990-05-20",
	}
}

func TestHandle_Created(t *testing.T) {
	uc := &fakeUseCase{resp: &createPublicBooking.Response{
		ID:           "a1",
		PatientID:    "guest",
		PatientName:  "Maria Souza",
		Date:         time.Date(2026, 3, 12, 0, 0, 0, 0, time.Local),
		Time:         "14:00",
		Status:       "Agendado",
		ContactNotes: "Contato: maria@example.com | Tel: (11) 99999-0000 | Nascimento: 20/05/1990",
		Read:         false,
		CreatedAt:    time.Date(2026, 3, 2, 10, 0, 0, 0, time.Local),
	}}
	h := NewHandler(uc, nopLogger{})

	rec := postBooking(t, h, validBody())

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "a1", resp.ID)
	assert.Equal(t, "guest", resp.PatientID)
	assert.Equal(t, "2026-03-12", resp.Date)
	assert.Equal(t, "14:00", resp.Time)
	assert.Equal(t, "Agendado", resp.Status)
	assert.False(t, resp.Read)

	require.NotNil(t, uc.gotReq)
	assert.Equal(t, "Maria Souza", uc.gotReq.PatientName)
}

func TestHandle_ValidationErrorsReturn422(t *testing.T) {
	uc := &fakeUseCase{err: &createPublicBooking.ValidationError{
		Fields: []createPublicBooking.FieldError{
			{Field: "email", Code: createPublicBooking.CodeInvalidEmailFormat, Message: "Digite um email válido."},
			{Field: "phone", Code: createPublicBooking.CodeMissingPhone, Message: "Telefone é obrigatório."},
		},
	}}
	h := NewHandler(uc, nopLogger{})

	rec := postBooking(t, h, validBody())

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var resp ValidationErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, msgValidationFailed, resp.Message)
	require.Len(t, resp.Fields, 2)
	assert.Equal(t, "INVALID_EMAIL_FORMAT", resp.Fields[0].Code)
	assert.Equal(t, "MISSING_PHONE", resp.Fields[1].Code)
}

func TestHandle_SlotExpiredReturns409(t *testing.T) {
	uc := &fakeUseCase{err: createPublicBooking.ErrSlotExpired}
	h := NewHandler(uc, nopLogger{})

	rec := postBooking(t, h, validBody())

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), msgSlotExpired)
}

func TestHandle_MalformedDateReturns400(t *testing.T) {
	h := NewHandler(&fakeUseCase{}, nopLogger{})

	body := validBody()
	body.Date = "12/03/2026"
	rec := postBooking(t, h, body)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_MalformedBodyReturns400(t *testing.T) {
	h := NewHandler(&fakeUseCase{}, nopLogger{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/booking", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_InternalErrorReturns500(t *testing.T) {
	uc := &fakeUseCase{err: createPublicBooking.ErrInternal}
	h := NewHandler(uc, nopLogger{})

	rec := postBooking(t, h, validBody())

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
