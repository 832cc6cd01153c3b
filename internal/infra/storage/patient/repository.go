package patient

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/psiagenda/agenda-service/internal/domain"
	"github.com/psiagenda/agenda-service/pkg/psqlbuilder"
)

// Repository is the PostgreSQL store for patients and their clinical notes
type Repository struct {
	db DBExecutor
}

// NewRepository creates a new patient repository
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a new patient
func (r *Repository) Create(ctx context.Context, patient *domain.Patient) (*domain.Patient, error) {
	query, args, err := psqlbuilder.Insert("patients").
		Columns("id", "name", "email", "phone", "avatar_url").
		Values(patient.ID, patient.Name, patient.Email, patient.Phone, patient.AvatarURL).
		Suffix("RETURNING created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&createdAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	patient.CreatedAt = createdAt.Time
	return patient, nil
}

// GetByID fetches a patient by ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Patient, error) {
	query, args, err := psqlbuilder.Select("id", "name", "email", "phone", "avatar_url", "created_at").
		From("patients").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var p domain.Patient
	var createdAt sql.NullTime

	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&p.ID, &p.Name, &p.Email, &p.Phone, &p.AvatarURL, &createdAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrPatientNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan patient: %v", ErrScanRow, err)
	}

	p.CreatedAt = createdAt.Time
	return &p, nil
}

// List fetches all patients ordered by name
func (r *Repository) List(ctx context.Context) ([]*domain.Patient, error) {
	query, args, err := psqlbuilder.Select("id", "name", "email", "phone", "avatar_url", "created_at").
		From("patients").
		OrderBy("name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	patients := make([]*domain.Patient, 0)
	for rows.Next() {
		var p domain.Patient
		var createdAt sql.NullTime

		if err := rows.Scan(&p.ID, &p.Name, &p.Email, &p.Phone, &p.AvatarURL, &createdAt); err != nil {
			return nil, fmt.Errorf("%w: List - scan patient: %v", ErrScanRow, err)
		}

		p.CreatedAt = createdAt.Time
		patients = append(patients, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return patients, nil
}

// Update overwrites the editable patient fields
func (r *Repository) Update(ctx context.Context, patient *domain.Patient) error {
	query, args, err := psqlbuilder.Update("patients").
		Set("name", patient.Name).
		Set("email", patient.Email).
		Set("phone", patient.Phone).
		Set("avatar_url", patient.AvatarURL).
		Where(squirrel.Eq{"id": patient.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrPatientNotFound
	}

	return nil
}

// AddNote inserts a clinical note for a patient
func (r *Repository) AddNote(ctx context.Context, note *domain.ClinicalNote) (*domain.ClinicalNote, error) {
	query, args, err := psqlbuilder.Insert("clinical_notes").
		Columns("id", "patient_id", "date", "content").
		Values(note.ID, note.PatientID, note.Date, note.Content).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: AddNote - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("%w: AddNote - execute insert: %v", ErrExecQuery, err)
	}

	return note, nil
}

// GetNotes fetches a patient's clinical notes, newest first
func (r *Repository) GetNotes(ctx context.Context, patientID string) ([]*domain.ClinicalNote, error) {
	query, args, err := psqlbuilder.Select("id", "patient_id", "date", "content").
		From("clinical_notes").
		Where(squirrel.Eq{"patient_id": patientID}).
		OrderBy("date DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetNotes - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetNotes - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	notes := make([]*domain.ClinicalNote, 0)
	for rows.Next() {
		var n domain.ClinicalNote
		if err := rows.Scan(&n.ID, &n.PatientID, &n.Date, &n.Content); err != nil {
			return nil, fmt.Errorf("%w: GetNotes - scan note: %v", ErrScanRow, err)
		}
		notes = append(notes, &n)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetNotes - rows error: %v", ErrScanRow, err)
	}

	return notes, nil
}
