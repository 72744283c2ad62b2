package implementation

import (
	"context"
	"errors"

	"venture-advisory-be/internal/entity"
	"venture-advisory-be/internal/mapper"
	"venture-advisory-be/internal/model"
	"venture-advisory-be/internal/repository/contract"
	"venture-advisory-be/internal/repository/specification"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
)

type PassageRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.PassageMapper
}

func NewPassageRepository(db *gorm.DB) contract.PassageRepository {
	return &PassageRepositoryImpl{
		db:     db,
		mapper: mapper.NewPassageMapper(),
	}
}

func (r *PassageRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *PassageRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Passage, error) {
	var m model.Passage
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *PassageRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Passage, error) {
	var models []*model.Passage
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *PassageRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	err := query.Model(&model.Passage{}).Count(&count).Error
	return count, err
}

// SearchSimilarWithScore returns candidates with their cosine similarity.
// Cosine distance in pgvector is 1 - cosine_similarity, so we select
// 1 - (embedding <=> query_vector) as similarity. The query is always
// scoped to one venture and skips chunks that have no embedding yet.
func (r *PassageRepositoryImpl) SearchSimilarWithScore(ctx context.Context, ventureId uuid.UUID, embedding []float32, limit int) ([]*contract.ScoredPassage, error) {
	if limit <= 0 {
		limit = 10
	}

	type result struct {
		model.Passage
		Similarity float64
	}
	var results []result

	queryVector := pgvector.NewVector(embedding)

	err := r.db.WithContext(ctx).
		Table("document_chunks").
		Select("document_chunks.*, 1 - (embedding <=> ?) as similarity", queryVector).
		Where("document_chunks.venture_id = ?", ventureId).
		Where("document_chunks.embedding IS NOT NULL").
		Where("document_chunks.deleted_at IS NULL").
		Order("similarity DESC").
		Limit(limit).
		Scan(&results).Error

	if err != nil {
		return nil, err
	}

	scored := make([]*contract.ScoredPassage, len(results))
	for i, res := range results {
		scored[i] = &contract.ScoredPassage{
			Passage:    r.mapper.ToEntity(&res.Passage),
			Similarity: res.Similarity,
		}
	}
	return scored, nil
}
