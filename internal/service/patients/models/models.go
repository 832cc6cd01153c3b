package models

import (
	"time"

	"github.com/psiagenda/agenda-service/internal/domain"
)

// CreatePatientRequest is the admin create payload
type CreatePatientRequest struct {
	Name      string
	Email     string
	Phone     string
	AvatarURL *string
}

// UpdatePatientRequest is the full-overwrite update payload
type UpdatePatientRequest struct {
	Name      string
	Email     string
	Phone     string
	AvatarURL *string
}

// AddNoteRequest appends a clinical note to a patient's record. A zero Date
// means today.
type AddNoteRequest struct {
	Date    time.Time
	Content string
}

// PatientWithNotes bundles a patient and their clinical notes, newest first
type PatientWithNotes struct {
	Patient *domain.Patient
	Notes   []*domain.ClinicalNote
}
