package postgres

import (
	"fmt"

	"github.com/jmoiron/sqlx"
)

// Schema for deep-dive persistence. Applied idempotently at startup and by
// cmd/migrate.
const schema = `
CREATE TABLE IF NOT EXISTS deep_dive_reports (
	id             UUID PRIMARY KEY,
	user_id        TEXT NOT NULL DEFAULT '',
	subject_key    TEXT NOT NULL,
	section        TEXT NOT NULL,
	trust_research BOOLEAN NOT NULL DEFAULT FALSE,
	fallback       BOOLEAN NOT NULL DEFAULT FALSE,
	content        JSONB NOT NULL,
	created_at     TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_deep_dive_subject_section
	ON deep_dive_reports (subject_key, section, created_at DESC);
`

// EnsureSchema creates the deep-dive tables if they don't exist.
func EnsureSchema(db *sqlx.DB) error {
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to apply deep dive schema: %w", err)
	}
	return nil
}
