package entity

import (
	"time"

	"github.com/google/uuid"
)

// Passage is an embedded chunk of source document text. Created by the
// ingestion pipeline, read-only to retrieval. Embedding is nil for chunks
// that have not been embedded yet; those are invisible to similarity search.
type Passage struct {
	Id         uuid.UUID
	DocumentId uuid.UUID
	VentureId  uuid.UUID
	Content    string
	Embedding  []float32
	ChunkIndex int
	CreatedAt  time.Time
	UpdatedAt  *time.Time
	DeletedAt  *time.Time
	IsDeleted  bool
}
