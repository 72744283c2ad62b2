package retrieval

import (
	"context"
	"errors"
	"testing"
	"time"

	"venture-advisory-be/internal/entity"
	"venture-advisory-be/internal/repository/contract"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	candidates []*contract.ScoredPassage
	err        error
	gotLimit   int
}

func (f *fakeSource) SearchSimilarWithScore(_ context.Context, _ uuid.UUID, _ []float32, limit int) ([]*contract.ScoredPassage, error) {
	f.gotLimit = limit
	if f.err != nil {
		return nil, f.err
	}
	if len(f.candidates) > limit {
		return f.candidates[:limit], nil
	}
	return f.candidates, nil
}

func fixedNow() time.Time {
	return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
}

func candidate(similarity float64, ageDays float64) *contract.ScoredPassage {
	return &contract.ScoredPassage{
		Passage: &entity.Passage{
			Id:         uuid.New(),
			DocumentId: uuid.New(),
			Content:    "chunk",
			CreatedAt:  fixedNow().Add(-time.Duration(ageDays*24) * time.Hour),
		},
		Similarity: similarity,
	}
}

func newTestEngine(src *fakeSource) *Engine {
	e := NewEngine(src, 70)
	e.now = fixedNow
	return e
}

func TestSearchFreshnessReranking(t *testing.T) {
	// A is more similar but 200 days old; B is slightly less similar but
	// one day old. Freshness weighting must lift B above A.
	stale := candidate(0.98, 200)
	fresh := candidate(0.80, 1)
	src := &fakeSource{candidates: []*contract.ScoredPassage{stale, fresh}}

	results, err := newTestEngine(src).Search(context.Background(), uuid.New(), []float32{0.1}, 5)
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, fresh.Passage.Id, results[0].PassageId)
	assert.Equal(t, stale.Passage.Id, results[1].PassageId)
	assert.Greater(t, results[0].FinalScore, results[1].FinalScore)
}

func TestSearchFinalScoreNeverExceedsSimilarity(t *testing.T) {
	src := &fakeSource{candidates: []*contract.ScoredPassage{
		candidate(0.9, 0),
		candidate(0.7, 35),
		candidate(0.5, 400),
	}}

	results, err := newTestEngine(src).Search(context.Background(), uuid.New(), []float32{0.1}, 5)
	require.NoError(t, err)

	for _, r := range results {
		assert.LessOrEqual(t, r.FinalScore, r.Similarity)
		assert.Greater(t, r.FreshnessWeight, 0.0)
		assert.LessOrEqual(t, r.FreshnessWeight, 1.0)
	}
}

func TestSearchOverFetchesTwiceMaxChunks(t *testing.T) {
	src := &fakeSource{}

	_, err := newTestEngine(src).Search(context.Background(), uuid.New(), []float32{0.1}, 8)
	require.NoError(t, err)

	assert.Equal(t, 16, src.gotLimit)
}

func TestSearchTruncatesToMaxChunks(t *testing.T) {
	var cands []*contract.ScoredPassage
	for i := 0; i < 10; i++ {
		cands = append(cands, candidate(0.9-float64(i)*0.05, float64(i)))
	}
	src := &fakeSource{candidates: cands}

	results, err := newTestEngine(src).Search(context.Background(), uuid.New(), []float32{0.1}, 3)
	require.NoError(t, err)

	assert.Len(t, results, 3)
}

func TestSearchEmptyStoreIsNotAnError(t *testing.T) {
	src := &fakeSource{}

	results, err := newTestEngine(src).Search(context.Background(), uuid.New(), []float32{0.1}, 5)
	require.NoError(t, err)
	require.NotNil(t, results)
	assert.Empty(t, results)
}

func TestSearchPropagatesSourceError(t *testing.T) {
	src := &fakeSource{err: errors.New("connection refused")}

	results, err := newTestEngine(src).Search(context.Background(), uuid.New(), []float32{0.1}, 5)
	assert.Error(t, err)
	assert.Nil(t, results)
}

func TestSearchDefaultsMaxChunks(t *testing.T) {
	src := &fakeSource{}

	_, err := newTestEngine(src).Search(context.Background(), uuid.New(), []float32{0.1}, 0)
	require.NoError(t, err)

	assert.Equal(t, 10, src.gotLimit)
}

func TestSearchScoresAreRounded(t *testing.T) {
	src := &fakeSource{candidates: []*contract.ScoredPassage{candidate(0.123456789, 13)}}

	results, err := newTestEngine(src).Search(context.Background(), uuid.New(), []float32{0.1}, 5)
	require.NoError(t, err)
	require.Len(t, results, 1)

	r := results[0]
	assert.Equal(t, Round6(r.Similarity), r.Similarity)
	assert.Equal(t, Round6(r.FreshnessWeight), r.FreshnessWeight)
	assert.Equal(t, Round6(r.FinalScore), r.FinalScore)
	assert.Equal(t, 0.123457, r.Similarity)
}
