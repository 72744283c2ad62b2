package contract

import (
	"context"

	"venture-advisory-be/internal/entity"
	"venture-advisory-be/internal/repository/specification"

	"github.com/google/uuid"
)

type KnowledgeEntityRepository interface {
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.KnowledgeEntity, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.KnowledgeEntity, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	// SearchByKeyword matches active entities whose type or attributes contain
	// the query terms, scoped to one venture, highest confidence first.
	SearchByKeyword(ctx context.Context, ventureId uuid.UUID, query string, entityTypes []string, limit int) ([]*entity.KnowledgeEntity, error)
}
