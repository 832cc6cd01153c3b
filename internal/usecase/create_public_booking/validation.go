package create_public_booking

import (
	"regexp"
	"strings"
	"time"

	"github.com/psiagenda/agenda-service/internal/domain"
	"github.com/psiagenda/agenda-service/pkg/types"
)

const (
	msgMissingName        = "Nome é obrigatório."
	msgMissingEmail       = "Email é obrigatório."
	msgInvalidEmail       = "Digite um email válido."
	msgMissingPhone       = "Telefone é obrigatório."
	msgInvalidPhone       = "Formato inválido. Use (DD) 99999-9999"
	msgMissingDateOfBirth = "Data de nascimento é obrigatória."
	msgInvalidDateOfBirth = "Data de nascimento inválida."
	msgFutureDateOfBirth  = "Data inválida (futuro)."
)

var (
	// local-part@domain.tld: at least one @, no whitespace, a dot after the @
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

	// Brazilian phone shape: optional parenthesized 2-digit area code,
	// 4-5 digits, optional separator, 4 digits.
	// Accepts "(11) 99999-0000" and "1133334444" alike.
	phonePattern = regexp.MustCompile(`^\(?\d{2}\)?[\s-]?\d{4,5}[\s-]?\d{4}$`)
)

// validateContactFields runs the per-field checks of a public submission.
// The checks are independent and errors accumulate; the caller re-prompts
// only the offending fields.
func validateContactFields(req *Request, now time.Time) []FieldError {
	var fieldErrs []FieldError

	if strings.TrimSpace(req.PatientName) == "" {
		fieldErrs = append(fieldErrs, FieldError{
			Field: "patientName", Code: CodeMissingName, Message: msgMissingName,
		})
	}

	switch {
	case req.Email == "":
		fieldErrs = append(fieldErrs, FieldError{
			Field: "email", Code: CodeMissingEmail, Message: msgMissingEmail,
		})
	case !emailPattern.MatchString(req.Email):
		fieldErrs = append(fieldErrs, FieldError{
			Field: "email", Code: CodeInvalidEmailFormat, Message: msgInvalidEmail,
		})
	}

	switch {
	case req.Phone == "":
		fieldErrs = append(fieldErrs, FieldError{
			Field: "phone", Code: CodeMissingPhone, Message: msgMissingPhone,
		})
	case !phonePattern.MatchString(req.Phone):
		fieldErrs = append(fieldErrs, FieldError{
			Field: "phone", Code: CodeInvalidPhoneFormat, Message: msgInvalidPhone,
		})
	}

	switch dob, err := time.ParseInLocation(domain.DateFormat, req.DateOfBirth, now.Location()); {
	case req.DateOfBirth == "":
		fieldErrs = append(fieldErrs, FieldError{
			Field: "dateOfBirth", Code: CodeMissingDateOfBirth, Message: msgMissingDateOfBirth,
		})
	case err != nil:
		fieldErrs = append(fieldErrs, FieldError{
			Field: "dateOfBirth", Code: CodeInvalidDateOfBirth, Message: msgInvalidDateOfBirth,
		})
	case dob.After(now):
		fieldErrs = append(fieldErrs, FieldError{
			Field: "dateOfBirth", Code: CodeFutureDateOfBirth, Message: msgFutureDateOfBirth,
		})
	}

	return fieldErrs
}

// isSlotExpired recomputes the instant for the chosen {date, time} and
// reports whether it is no longer strictly in the future. This is a
// last-chance race guard against a slot list generated earlier: it uses raw
// "now", not now + minNoticeHours, deliberately weaker than the notice
// filter applied when the slot list was generated.
func isSlotExpired(date time.Time, slot types.TimeString, now time.Time) (bool, error) {
	instant, err := slot.OnDate(date)
	if err != nil {
		return false, err
	}
	return !instant.After(now), nil
}
