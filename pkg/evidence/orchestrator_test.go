package evidence

import (
	"context"
	"errors"
	"testing"
	"time"

	"venture-advisory-be/internal/entity"
	"venture-advisory-be/pkg/retrieval"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type fakeRetriever struct {
	passages []retrieval.ScoredPassage
	err      error
	delay    time.Duration
}

func (f *fakeRetriever) Search(ctx context.Context, _ uuid.UUID, _ []float32, _ int) ([]retrieval.ScoredPassage, error) {
	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if f.err != nil {
		return nil, f.err
	}
	return f.passages, nil
}

type fakeSearcher struct {
	matched []*entity.KnowledgeEntity
	all     []*entity.KnowledgeEntity
	err     error
}

func (f *fakeSearcher) SearchByKeyword(_ context.Context, _ uuid.UUID, _ string, _ []string, _ int) ([]*entity.KnowledgeEntity, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.matched, nil
}

func (f *fakeSearcher) FindAllByVenture(_ context.Context, _ uuid.UUID) ([]*entity.KnowledgeEntity, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.all, nil
}

func scoredPassage(score float64) retrieval.ScoredPassage {
	return retrieval.ScoredPassage{
		PassageId:  uuid.New(),
		DocumentId: uuid.New(),
		Content:    "chunk",
		Similarity: score,
		FinalScore: score,
	}
}

func knowledgeEntity(entityType string) *entity.KnowledgeEntity {
	return &entity.KnowledgeEntity{
		Id:         uuid.New(),
		EntityType: entityType,
		Status:     "active",
		Confidence: 0.9,
	}
}

func TestRetrieveMergesBothBranches(t *testing.T) {
	passages := []retrieval.ScoredPassage{scoredPassage(0.9), scoredPassage(0.7)}
	entities := []*entity.KnowledgeEntity{knowledgeEntity("funding_round")}

	o := NewOrchestrator(
		&fakeRetriever{passages: passages},
		&fakeSearcher{matched: entities},
		time.Second,
	)

	bundle, err := o.Retrieve(context.Background(), uuid.New(), "how much runway?", []float32{0.1}, nil, 5)
	require.NoError(t, err)
	require.NotNil(t, bundle)

	assert.Len(t, bundle.Passages, 2)
	assert.Len(t, bundle.Entities, 1)

	// One citation per passage, same order, carrying the final score.
	require.Len(t, bundle.Citations, 2)
	for i, c := range bundle.Citations {
		assert.Equal(t, passages[i].PassageId, c.PassageId)
		assert.Equal(t, passages[i].DocumentId, c.DocumentId)
		assert.Equal(t, passages[i].FinalScore, c.Score)
	}
}

func TestRetrieveEmptyResultsAreValid(t *testing.T) {
	o := NewOrchestrator(
		&fakeRetriever{passages: []retrieval.ScoredPassage{}},
		&fakeSearcher{matched: []*entity.KnowledgeEntity{}},
		time.Second,
	)

	bundle, err := o.Retrieve(context.Background(), uuid.New(), "anything", []float32{0.1}, nil, 5)
	require.NoError(t, err)
	require.NotNil(t, bundle)

	assert.Empty(t, bundle.Passages)
	assert.Empty(t, bundle.Entities)
	assert.Empty(t, bundle.Citations)
}

func TestRetrieveRetrievalFailureReturnsNoBundle(t *testing.T) {
	o := NewOrchestrator(
		&fakeRetriever{err: errors.New("pgvector down")},
		&fakeSearcher{matched: []*entity.KnowledgeEntity{knowledgeEntity("team_member")}},
		time.Second,
	)

	bundle, err := o.Retrieve(context.Background(), uuid.New(), "anything", []float32{0.1}, nil, 5)
	require.Error(t, err)
	assert.Nil(t, bundle)

	var backendErr *BackendError
	require.ErrorAs(t, err, &backendErr)
	assert.Equal(t, BranchRetrieval, backendErr.Branch)
}

func TestRetrieveKnowledgeFailureReturnsNoBundle(t *testing.T) {
	o := NewOrchestrator(
		&fakeRetriever{passages: []retrieval.ScoredPassage{scoredPassage(0.9)}},
		&fakeSearcher{err: errors.New("graph store unreachable")},
		time.Second,
	)

	bundle, err := o.Retrieve(context.Background(), uuid.New(), "anything", []float32{0.1}, nil, 5)
	require.Error(t, err)
	assert.Nil(t, bundle)

	var backendErr *BackendError
	require.ErrorAs(t, err, &backendErr)
	assert.Equal(t, BranchKnowledge, backendErr.Branch)
}

func TestRetrieveTimeoutAbortsSlowBranch(t *testing.T) {
	o := NewOrchestrator(
		&fakeRetriever{passages: []retrieval.ScoredPassage{scoredPassage(0.9)}, delay: 5 * time.Second},
		&fakeSearcher{},
		50*time.Millisecond,
	)

	bundle, err := o.Retrieve(context.Background(), uuid.New(), "anything", []float32{0.1}, nil, 5)
	require.Error(t, err)
	assert.Nil(t, bundle)
}

func TestSnapshotBypassesRetrieval(t *testing.T) {
	all := []*entity.KnowledgeEntity{
		knowledgeEntity("funding_round"),
		knowledgeEntity("market_claim"),
		knowledgeEntity("team_member"),
	}

	// A broken retriever must not matter: snapshots never touch it.
	o := NewOrchestrator(
		&fakeRetriever{err: errors.New("pgvector down")},
		&fakeSearcher{all: all},
		time.Second,
	)

	entities, count, err := o.Snapshot(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Equal(t, 3, count)
	assert.Len(t, entities, 3)
}

func TestSnapshotFailureWrapsKnowledgeBranch(t *testing.T) {
	o := NewOrchestrator(
		&fakeRetriever{},
		&fakeSearcher{err: errors.New("graph store unreachable")},
		time.Second,
	)

	entities, count, err := o.Snapshot(context.Background(), uuid.New())
	require.Error(t, err)
	assert.Nil(t, entities)
	assert.Zero(t, count)

	var backendErr *BackendError
	require.ErrorAs(t, err, &backendErr)
	assert.Equal(t, BranchKnowledge, backendErr.Branch)
}
