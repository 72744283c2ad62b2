package service

import (
	"context"
	"fmt"
	"time"

	"venture-advisory-be/internal/dto"
	"venture-advisory-be/internal/pkg/logger"
	"venture-advisory-be/internal/repository/specification"
	"venture-advisory-be/internal/repository/unitofwork"
	"venture-advisory-be/pkg/cache"
	"venture-advisory-be/pkg/evidence"

	"github.com/google/uuid"
)

type IKnowledgeService interface {
	Snapshot(ctx context.Context, userId uuid.UUID, ventureId uuid.UUID) (*dto.KnowledgeSnapshotResponse, error)
	InvalidateSnapshot(ctx context.Context, userId uuid.UUID, ventureId uuid.UUID) error
}

// knowledgeService serves full knowledge graph snapshots for profile
// views. Snapshots are cached briefly in Redis since the extraction
// pipeline mutates the graph far less often than clients poll it.
type knowledgeService struct {
	uowFactory    unitofwork.RepositoryFactory
	orchestrator  *evidence.Orchestrator
	snapshotCache *cache.SnapshotCache
	sysLogger     logger.ILogger
}

func NewKnowledgeService(
	uowFactory unitofwork.RepositoryFactory,
	orchestrator *evidence.Orchestrator,
	snapshotCache *cache.SnapshotCache,
	sysLogger logger.ILogger,
) IKnowledgeService {
	return &knowledgeService{
		uowFactory:    uowFactory,
		orchestrator:  orchestrator,
		snapshotCache: snapshotCache,
		sysLogger:     sysLogger,
	}
}

func (ks *knowledgeService) Snapshot(ctx context.Context, userId uuid.UUID, ventureId uuid.UUID) (*dto.KnowledgeSnapshotResponse, error) {
	uow := ks.uowFactory.NewUnitOfWork(ctx)

	venture, err := uow.VentureRepository().FindOne(ctx,
		specification.ByID{ID: ventureId},
		specification.ByUserID{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if venture == nil {
		return nil, fmt.Errorf("venture not found or access denied")
	}

	if entities, hit := ks.snapshotCache.Get(ctx, ventureId); hit {
		return &dto.KnowledgeSnapshotResponse{
			VentureId:   ventureId,
			EntityCount: len(entities),
			Entities:    dto.KnowledgeEntitiesToDTO(entities),
			Cached:      true,
			FetchedAt:   time.Now(),
		}, nil
	}

	entities, count, err := ks.orchestrator.Snapshot(ctx, ventureId)
	if err != nil {
		return nil, err
	}

	ks.snapshotCache.Set(ctx, ventureId, entities)

	return &dto.KnowledgeSnapshotResponse{
		VentureId:   ventureId,
		EntityCount: count,
		Entities:    dto.KnowledgeEntitiesToDTO(entities),
		Cached:      false,
		FetchedAt:   time.Now(),
	}, nil
}

func (ks *knowledgeService) InvalidateSnapshot(ctx context.Context, userId uuid.UUID, ventureId uuid.UUID) error {
	uow := ks.uowFactory.NewUnitOfWork(ctx)

	venture, err := uow.VentureRepository().FindOne(ctx,
		specification.ByID{ID: ventureId},
		specification.ByUserID{UserID: userId},
	)
	if err != nil {
		return err
	}
	if venture == nil {
		return fmt.Errorf("venture not found or access denied")
	}

	ks.snapshotCache.Invalidate(ctx, ventureId)
	ks.sysLogger.Info("knowledge", "snapshot cache invalidated", map[string]interface{}{
		"venture_id": ventureId,
	})
	return nil
}
