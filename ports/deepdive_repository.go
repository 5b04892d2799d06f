package ports

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"ventureforge/domain/content"
)

// DeepDiveRecord is one persisted generated section. Content objects are
// immutable once produced; this layer owns their persistence.
type DeepDiveRecord struct {
	ID            uuid.UUID       `db:"id"`
	UserID        string          `db:"user_id"`
	SubjectKey    string          `db:"subject_key"`
	Section       content.Section `db:"section"`
	TrustResearch bool            `db:"trust_research"`
	Fallback      bool            `db:"fallback"`
	Content       json.RawMessage `db:"content"`
	CreatedAt     time.Time       `db:"created_at"`
}

// DeepDiveRepository stores generated deep-dive sections.
type DeepDiveRepository interface {
	Save(ctx context.Context, rec *DeepDiveRecord) error
	LatestBySubject(ctx context.Context, subjectKey string, section content.Section) (*DeepDiveRecord, error)
}
