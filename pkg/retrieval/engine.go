package retrieval

import (
	"context"
	"fmt"
	"sort"
	"time"

	"venture-advisory-be/internal/repository/contract"

	"github.com/google/uuid"
)

// CandidateSource provides raw nearest-neighbor candidates for one
// venture, ordered by similarity descending.
type CandidateSource interface {
	SearchSimilarWithScore(ctx context.Context, ventureId uuid.UUID, embedding []float32, limit int) ([]*contract.ScoredPassage, error)
}

// ScoredPassage is one re-ranked retrieval result. All numeric fields are
// rounded to 6 decimal places; FinalScore never exceeds Similarity because
// the freshness weight lies in (0, 1].
type ScoredPassage struct {
	PassageId       uuid.UUID `json:"passage_id"`
	DocumentId      uuid.UUID `json:"document_id"`
	Content         string    `json:"content"`
	Similarity      float64   `json:"similarity"`
	FreshnessWeight float64   `json:"freshness_weight"`
	FinalScore      float64   `json:"final_score"`
}

// Engine ranks passages by freshness-weighted similarity. Construct one
// at startup and share it; it holds no per-call state.
type Engine struct {
	source       CandidateSource
	halfLifeDays float64
	now          func() time.Time
}

func NewEngine(source CandidateSource, halfLifeDays float64) *Engine {
	if halfLifeDays <= 0 {
		halfLifeDays = FreshnessHalfLifeDays
	}
	return &Engine{
		source:       source,
		halfLifeDays: halfLifeDays,
		now:          time.Now,
	}
}

// Search returns the top maxChunks passages by final score. It over-fetches
// 2x maxChunks raw candidates so freshness re-ranking has headroom to lift
// a fresher-but-slightly-less-similar passage past a stale one, without a
// full scan. Zero candidates is a valid empty result, not an error.
func (e *Engine) Search(ctx context.Context, ventureId uuid.UUID, queryEmbedding []float32, maxChunks int) ([]ScoredPassage, error) {
	if maxChunks <= 0 {
		maxChunks = 5
	}

	candidates, err := e.source.SearchSimilarWithScore(ctx, ventureId, queryEmbedding, 2*maxChunks)
	if err != nil {
		return nil, fmt.Errorf("vector search failed: %w", err)
	}
	if len(candidates) == 0 {
		return []ScoredPassage{}, nil
	}

	now := e.now()
	scored := make([]ScoredPassage, 0, len(candidates))
	for _, c := range candidates {
		ageDays := now.Sub(c.Passage.CreatedAt).Hours() / 24
		weight := FreshnessWeight(ageDays, e.halfLifeDays)
		scored = append(scored, ScoredPassage{
			PassageId:       c.Passage.Id,
			DocumentId:      c.Passage.DocumentId,
			Content:         c.Passage.Content,
			Similarity:      Round6(c.Similarity),
			FreshnessWeight: Round6(weight),
			FinalScore:      Round6(c.Similarity * weight),
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].FinalScore > scored[j].FinalScore
	})

	if len(scored) > maxChunks {
		scored = scored[:maxChunks]
	}
	return scored, nil
}
