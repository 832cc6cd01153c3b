package create_public_booking

import (
	"time"

	"github.com/psiagenda/agenda-service/pkg/types"
)

// Request is a public booking submission: the chosen slot plus the contact
// form of a booker without a registered patient record.
type Request struct {
	Date        time.Time
	Time        types.TimeString
	PatientName string
	Email       string
	Phone       string
	DateOfBirth string // YYYY-MM-DD
}

// Response is the persisted appointment created for the booker
type Response struct {
	ID           string
	PatientID    string
	PatientName  string
	Date         time.Time
	Time         types.TimeString
	Status       string
	ContactNotes string
	Read         bool
	CreatedAt    time.Time
}
