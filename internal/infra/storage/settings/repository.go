package settings

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/psiagenda/agenda-service/pkg/psqlbuilder"
)

// professionalSettingsKey is the single row key. The tool serves one
// professional, so the table only ever holds this entry.
const professionalSettingsKey = "professional_settings"

// Repository is the PostgreSQL key-value store for professional settings.
// The value column is JSONB so older payload shapes survive schema growth
// and get migrated on read by the service layer.
type Repository struct {
	db DBExecutor
}

// NewRepository creates a new settings repository
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Load returns the raw JSON settings payload
func (r *Repository) Load(ctx context.Context) ([]byte, error) {
	query, args, err := psqlbuilder.Select("value").
		From("settings").
		Where(squirrel.Eq{"key": professionalSettingsKey}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Load - build select query: %v", ErrBuildQuery, err)
	}

	var value []byte
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, ErrSettingsNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Load - scan value: %v", ErrExecQuery, err)
	}

	return value, nil
}

// Save upserts the JSON settings payload
func (r *Repository) Save(ctx context.Context, value []byte) error {
	query, args, err := psqlbuilder.Insert("settings").
		Columns("key", "value", "updated_at").
		Values(professionalSettingsKey, value, squirrel.Expr("now()")).
		Suffix("ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Save - build upsert query: %v", ErrBuildQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Save - execute upsert: %v", ErrExecQuery, err)
	}

	return nil
}
