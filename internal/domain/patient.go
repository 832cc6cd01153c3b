package domain

import "time"

// Patient represents a registered patient of the professional
type Patient struct {
	ID        string
	Name      string
	Email     string
	Phone     string
	AvatarURL *string
	CreatedAt time.Time
}

// ClinicalNote represents a dated session annotation on a patient's record.
// Notes are listed newest first.
type ClinicalNote struct {
	ID        string
	PatientID string
	Date      time.Time
	Content   string
}
