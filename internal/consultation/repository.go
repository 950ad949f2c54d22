package consultation

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

type postgresRepo struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &postgresRepo{db: db}
}

func (r *postgresRepo) GetByID(ctx context.Context, id uuid.UUID) (*Record, error) {
	query := `SELECT id, patient_name, patient_age, report, transcript, created_at, updated_at FROM consultations WHERE id = $1`

	row := r.db.QueryRowContext(ctx, query, id)

	var rec Record
	var reportJSON, transcriptJSON []byte

	err := row.Scan(
		&rec.ID,
		&rec.PatientName,
		&rec.PatientAge,
		&reportJSON,
		&transcriptJSON,
		&rec.CreatedAt,
		&rec.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if len(reportJSON) > 0 {
		if err := json.Unmarshal(reportJSON, &rec.Report); err != nil {
			return nil, fmt.Errorf("failed to unmarshal report: %w", err)
		}
	}
	if len(transcriptJSON) > 0 {
		if err := json.Unmarshal(transcriptJSON, &rec.Transcript); err != nil {
			return nil, fmt.Errorf("failed to unmarshal transcript: %w", err)
		}
	}

	return &rec, nil
}

func (r *postgresRepo) Save(ctx context.Context, rec *Record) error {
	reportJSON, err := json.Marshal(rec.Report)
	if err != nil {
		return err
	}
	transcriptJSON, err := json.Marshal(rec.Transcript)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO consultations (id, patient_name, patient_age, report, transcript, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE SET
			patient_name = $2,
			patient_age = $3,
			report = $4,
			transcript = $5,
			updated_at = $7
	`
	_, err = r.db.ExecContext(ctx, query,
		rec.ID, rec.PatientName, rec.PatientAge, reportJSON, transcriptJSON, rec.CreatedAt, rec.UpdatedAt)
	return err
}
