package contract

import (
	"context"

	"venture-advisory-be/internal/entity"
	"venture-advisory-be/internal/repository/specification"

	"github.com/google/uuid"
)

// ScoredPassage wraps a Passage with its raw cosine similarity against
// the query vector. Freshness re-ranking happens above this layer.
type ScoredPassage struct {
	Passage    *entity.Passage
	Similarity float64 // 0.0 to 1.0 (1.0 = identical)
}

type PassageRepository interface {
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Passage, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Passage, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	// SearchSimilarWithScore returns up to limit candidates for one venture,
	// ordered by raw similarity descending. Chunks without embeddings and
	// soft-deleted rows are excluded.
	SearchSimilarWithScore(ctx context.Context, ventureId uuid.UUID, embedding []float32, limit int) ([]*ScoredPassage, error)
}
