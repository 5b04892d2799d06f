package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"ventureforge/domain/content"
	"ventureforge/ports"
)

// deepDiveRepository implements the DeepDiveRepository interface
type deepDiveRepository struct {
	db *sqlx.DB
}

// NewDeepDiveRepository creates a new deep-dive report repository
func NewDeepDiveRepository(db *sqlx.DB) ports.DeepDiveRepository {
	return &deepDiveRepository{db: db}
}

// Save inserts a generated section record
func (r *deepDiveRepository) Save(ctx context.Context, rec *ports.DeepDiveRecord) error {
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}

	query := `INSERT INTO deep_dive_reports (
		id, user_id, subject_key, section, trust_research, fallback, content, created_at
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.db.ExecContext(ctx, query,
		rec.ID, rec.UserID, rec.SubjectKey, rec.Section, rec.TrustResearch, rec.Fallback, rec.Content, rec.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save deep dive report: %w", err)
	}
	return nil
}

// LatestBySubject returns the most recent record for a subject/section pair
func (r *deepDiveRepository) LatestBySubject(ctx context.Context, subjectKey string, section content.Section) (*ports.DeepDiveRecord, error) {
	query := `SELECT id, user_id, subject_key, section, trust_research, fallback, content, created_at
	FROM deep_dive_reports
	WHERE subject_key = $1 AND section = $2
	ORDER BY created_at DESC
	LIMIT 1`

	var rec ports.DeepDiveRecord
	err := r.db.GetContext(ctx, &rec, query, subjectKey, section)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load deep dive report: %w", err)
	}
	return &rec, nil
}
