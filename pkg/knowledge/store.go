// Package knowledge exposes the structured venture fact store to the
// retrieval core. Entities are owned and mutated by the extraction
// pipeline; this surface is strictly read-only.
package knowledge

import (
	"context"

	"venture-advisory-be/internal/entity"
	"venture-advisory-be/internal/repository/specification"
	"venture-advisory-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type Store struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewStore(uowFactory unitofwork.RepositoryFactory) *Store {
	return &Store{
		uowFactory: uowFactory,
	}
}

// SearchByKeyword returns active entities matching the query terms,
// scoped to one venture, optionally filtered by entity type.
func (s *Store) SearchByKeyword(ctx context.Context, ventureId uuid.UUID, query string, entityTypes []string, limit int) ([]*entity.KnowledgeEntity, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.KnowledgeEntityRepository().SearchByKeyword(ctx, ventureId, query, entityTypes, limit)
}

// FindAllByVenture returns every entity for the venture, newest first.
func (s *Store) FindAllByVenture(ctx context.Context, ventureId uuid.UUID) ([]*entity.KnowledgeEntity, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.KnowledgeEntityRepository().FindAll(ctx,
		specification.ByVentureID{VentureID: ventureId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
}
