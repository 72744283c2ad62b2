package evidence

import (
	"context"
	"time"

	"venture-advisory-be/internal/entity"
	"venture-advisory-be/pkg/retrieval"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// PassageRetriever is the retrieval engine surface the orchestrator needs.
type PassageRetriever interface {
	Search(ctx context.Context, ventureId uuid.UUID, queryEmbedding []float32, maxChunks int) ([]retrieval.ScoredPassage, error)
}

// EntitySearcher is the knowledge store surface the orchestrator needs.
type EntitySearcher interface {
	SearchByKeyword(ctx context.Context, ventureId uuid.UUID, query string, entityTypes []string, limit int) ([]*entity.KnowledgeEntity, error)
	FindAllByVenture(ctx context.Context, ventureId uuid.UUID) ([]*entity.KnowledgeEntity, error)
}

// Citation points an agent's answer back at one retrieved passage.
type Citation struct {
	PassageId  uuid.UUID `json:"passage_id"`
	DocumentId uuid.UUID `json:"document_id"`
	Score      float64   `json:"score"`
}

// Bundle is the merged evidence for one chat turn. Owned by the caller
// after return; the orchestrator keeps nothing.
type Bundle struct {
	Passages  []retrieval.ScoredPassage `json:"passages"`
	Entities  []*entity.KnowledgeEntity `json:"entities"`
	Citations []Citation                `json:"citations"`
}

// Orchestrator fans out to the retrieval engine and the knowledge store
// concurrently and merges their results. Both branches must succeed: an
// agent reasoning over half the intended evidence is worse than an
// explicit failure the caller can retry, so the first error aborts the
// whole call and no partial bundle is ever returned.
type Orchestrator struct {
	retriever   PassageRetriever
	entities    EntitySearcher
	timeout     time.Duration
	entityLimit int
}

func NewOrchestrator(retriever PassageRetriever, entities EntitySearcher, timeout time.Duration) *Orchestrator {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Orchestrator{
		retriever:   retriever,
		entities:    entities,
		timeout:     timeout,
		entityLimit: 20,
	}
}

// Retrieve assembles one evidence bundle. The two branches run under a
// shared deadline; caller cancellation propagates to both. Ordering
// between the branches is unspecified, total latency is bounded by the
// slower one.
func (o *Orchestrator) Retrieve(
	ctx context.Context,
	ventureId uuid.UUID,
	query string,
	queryEmbedding []float32,
	entityTypes []string,
	maxChunks int,
) (*Bundle, error) {

	ctx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	var (
		passages []retrieval.ScoredPassage
		matched  []*entity.KnowledgeEntity
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		res, err := o.retriever.Search(gctx, ventureId, queryEmbedding, maxChunks)
		if err != nil {
			return &BackendError{Branch: BranchRetrieval, Err: err}
		}
		passages = res
		return nil
	})

	g.Go(func() error {
		res, err := o.entities.SearchByKeyword(gctx, ventureId, query, entityTypes, o.entityLimit)
		if err != nil {
			return &BackendError{Branch: BranchKnowledge, Err: err}
		}
		matched = res
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	citations := make([]Citation, len(passages))
	for i, p := range passages {
		citations[i] = Citation{
			PassageId:  p.PassageId,
			DocumentId: p.DocumentId,
			Score:      p.FinalScore,
		}
	}

	return &Bundle{
		Passages:  passages,
		Entities:  matched,
		Citations: citations,
	}, nil
}

// Snapshot fetches every entity for a venture with no ranking or
// filtering. Used for profile views, not chat; it bypasses the retrieval
// engine entirely.
func (o *Orchestrator) Snapshot(ctx context.Context, ventureId uuid.UUID) ([]*entity.KnowledgeEntity, int, error) {
	ctx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	entities, err := o.entities.FindAllByVenture(ctx, ventureId)
	if err != nil {
		return nil, 0, &BackendError{Branch: BranchKnowledge, Err: err}
	}
	return entities, len(entities), nil
}
