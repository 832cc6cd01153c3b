package create_public_booking

import (
	"time"

	"github.com/psiagenda/agenda-service/internal/domain"
	createPublicBooking "github.com/psiagenda/agenda-service/internal/usecase/create_public_booking"
	"github.com/psiagenda/agenda-service/pkg/types"
)

// CreateBookingRequest is the public booking submission
type CreateBookingRequest struct {
	Date        string `json:"date"` // "2026-03-12"
	Time        string `json:"time"` // "14:00"
	PatientName string `json:"patientName"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	DateOfBirth string `json:"dateOfBirth"` // "1990-05-20"
}

// BookingResponse is the created appointment
type BookingResponse struct {
	ID          string `json:"id"`
	PatientID   string `json:"patientId"`
	PatientName string `json:"patientName"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Status      string `json:"status"`
	Notes       string `json:"notes"`
	Read        bool   `json:"read"`
	CreatedAt   string `json:"createdAt"`
}

// FieldErrorResponse is one recoverable per-field validation failure
type FieldErrorResponse struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ValidationErrorResponse is the 422 body listing every offending field
type ValidationErrorResponse struct {
	Message string               `json:"message"`
	Fields  []FieldErrorResponse `json:"fields"`
}

// ToUseCaseRequest converts the HTTP request into the use case model
func (r *CreateBookingRequest) ToUseCaseRequest() (*createPublicBooking.Request, error) {
	date, err := time.ParseInLocation(domain.DateFormat, r.Date, time.Local)
	if err != nil {
		return nil, err
	}

	slot, err := types.NewTimeStringFromString(r.Time)
	if err != nil {
		return nil, err
	}

	return &createPublicBooking.Request{
		Date:        date,
		Time:        slot,
		PatientName: r.PatientName,
		Email:       r.Email,
		Phone:       r.Phone,
		DateOfBirth: r.DateOfBirth,
	}, nil
}

// FromUseCaseResponse converts the use case response into the HTTP response
func FromUseCaseResponse(resp *createPublicBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:          resp.ID,
		PatientID:   resp.PatientID,
		PatientName: resp.PatientName,
		Date:        resp.Date.Format(domain.DateFormat),
		Time:        resp.Time.String(),
		Status:      resp.Status,
		Notes:       resp.ContactNotes,
		Read:        resp.Read,
		CreatedAt:   resp.CreatedAt.Format(time.RFC3339),
	}
}

// FromValidationError converts accumulated field errors into the 422 body
func FromValidationError(err *createPublicBooking.ValidationError) *ValidationErrorResponse {
	fields := make([]FieldErrorResponse, 0, len(err.Fields))
	for _, f := range err.Fields {
		fields = append(fields, FieldErrorResponse{
			Field:   f.Field,
			Code:    f.Code,
			Message: f.Message,
		})
	}
	return &ValidationErrorResponse{
		Message: msgValidationFailed,
		Fields:  fields,
	}
}
