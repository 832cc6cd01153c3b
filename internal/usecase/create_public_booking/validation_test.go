package create_public_booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateContactFields_Email(t *testing.T) {
	now := time.Date(2026, 3, 2, 10, 0, 0, 0, time.Local)

	tests := []struct {
		name     string
		email    string
		wantCode string
	}{
		{name: "valid", email: "maria@example.com"},
		{name: "valid short", email: "a@b.com"},
		{name: "valid with subdomain", email: "a@mail.example.org"},
		{name: "missing", email: "", wantCode: CodeMissingEmail},
		{name: "no tld dot", email: "a@b", wantCode: CodeInvalidEmailFormat},
		{name: "no at sign", email: "maria.example.com", wantCode: CodeInvalidEmailFormat},
		{name: "whitespace inside", email: "ma ria@example.com", wantCode: CodeInvalidEmailFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			req.Email = tt.email
			errs := validateContactFields(req, now)
			assertSingleFieldCode(t, errs, "email", tt.wantCode)
		})
	}
}

func TestValidateContactFields_Phone(t *testing.T) {
	now := time.Date(2026, 3, 2, 10, 0, 0, 0, time.Local)

	tests := []struct {
		name     string
		phone    string
		wantCode string
	}{
		{name: "formatted mobile", phone: "(11) 99999-0000"},
		{name: "bare mobile digits", phone: "11999990000"},
		{name: "bare landline digits", phone: "1133334444"},
		{name: "missing", phone: "", wantCode: CodeMissingPhone},
		{name: "too short", phone: "123", wantCode: CodeInvalidPhoneFormat},
		{name: "letters", phone: "onze nove nove", wantCode: CodeInvalidPhoneFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			req.Phone = tt.phone
			errs := validateContactFields(req, now)
			assertSingleFieldCode(t, errs, "phone", tt.wantCode)
		})
	}
}

func TestValidateContactFields_DateOfBirth(t *testing.T) {
	now := time.Date(2026, 3, 2, 10, 0, 0, 0, time.Local)

	tests := []struct {
		name     string
		dob      string
		wantCode string
	}{
		{name: "valid", dob: "1990-05-20"},
		{name: "missing", dob: "", wantCode: CodeMissingDateOfBirth},
		{name: "malformed", dob: "20/05/1990", wantCode: CodeInvalidDateOfBirth},
		{name: "future", dob: "2030-01-01", wantCode: CodeFutureDateOfBirth},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			req.DateOfBirth = tt.dob
			errs := validateContactFields(req, now)
			assertSingleFieldCode(t, errs, "dateOfBirth", tt.wantCode)
		})
	}
}

func TestValidateContactFields_NameWhitespaceOnly(t *testing.T) {
	now := time.Date(2026, 3, 2, 10, 0, 0, 0, time.Local)

	req := validRequest()
	req.PatientName = "   "
	errs := validateContactFields(req, now)

	require.Len(t, errs, 1)
	assert.Equal(t, CodeMissingName, errs[0].Code)
	assert.Equal(t, msgMissingName, errs[0].Message)
}

func TestValidateContactFields_MessagesArePortuguese(t *testing.T) {
	now := time.Date(2026, 3, 2, 10, 0, 0, 0, time.Local)

	req := &Request{DateOfBirth: "bad"}
	errs := validateContactFields(req, now)

	messages := make(map[string]string, len(errs))
	for _, e := range errs {
		messages[e.Code] = e.Message
	}
	assert.Equal(t, "Nome é obrigatório.", messages[CodeMissingName])
	assert.Equal(t, "Email é obrigatório.", messages[CodeMissingEmail])
	assert.Equal(t, "Telefone é obrigatório.", messages[CodeMissingPhone])
	assert.Equal(t, "Data de nascimento inválida.", messages[CodeInvalidDateOfBirth])
}

func TestIsSlotExpired(t *testing.T) {
	now := time.Date(2026, 3, 2, 14, 0, 0, 0, time.Local)
	date := time.Date(2026, 3, 2, 0, 0, 0, 0, time.Local)

	expired, err := isSlotExpired(date, "13:00", now)
	require.NoError(t, err)
	assert.True(t, expired)

	// a slot exactly at "now" counts as expired
	expired, err = isSlotExpired(date, "14:00", now)
	require.NoError(t, err)
	assert.True(t, expired)

	expired, err = isSlotExpired(date, "14:01", now)
	require.NoError(t, err)
	assert.False(t, expired)

	_, err = isSlotExpired(date, "not-a-time", now)
	assert.Error(t, err)
}

// assertSingleFieldCode checks that the given field either has no error
// (wantCode empty) or exactly the expected code.
func assertSingleFieldCode(t *testing.T, errs []FieldError, field, wantCode string) {
	t.Helper()
	var found []FieldError
	for _, e := range errs {
		if e.Field == field {
			found = append(found, e)
		}
	}
	if wantCode == "" {
		assert.Empty(t, found)
		return
	}
	require.Len(t, found, 1)
	assert.Equal(t, wantCode, found[0].Code)
	assert.NotEmpty(t, found[0].Message)
}
