package retrieval

import (
	"context"

	"venture-advisory-be/internal/repository/contract"
	"venture-advisory-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// RepositorySource adapts the passage repository to the CandidateSource
// the engine consumes. Read-only: retrieval never writes to the store.
type RepositorySource struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewRepositorySource(uowFactory unitofwork.RepositoryFactory) *RepositorySource {
	return &RepositorySource{
		uowFactory: uowFactory,
	}
}

func (s *RepositorySource) SearchSimilarWithScore(ctx context.Context, ventureId uuid.UUID, embedding []float32, limit int) ([]*contract.ScoredPassage, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.PassageRepository().SearchSimilarWithScore(ctx, ventureId, embedding, limit)
}
