package implementation

import (
	"context"
	"errors"
	"strings"

	"venture-advisory-be/internal/entity"
	"venture-advisory-be/internal/mapper"
	"venture-advisory-be/internal/model"
	"venture-advisory-be/internal/repository/contract"
	"venture-advisory-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type KnowledgeEntityRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.KnowledgeEntityMapper
}

func NewKnowledgeEntityRepository(db *gorm.DB) contract.KnowledgeEntityRepository {
	return &KnowledgeEntityRepositoryImpl{
		db:     db,
		mapper: mapper.NewKnowledgeEntityMapper(),
	}
}

func (r *KnowledgeEntityRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *KnowledgeEntityRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.KnowledgeEntity, error) {
	var m model.KnowledgeEntity
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *KnowledgeEntityRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.KnowledgeEntity, error) {
	var models []*model.KnowledgeEntity
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *KnowledgeEntityRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	err := query.Model(&model.KnowledgeEntity{}).Count(&count).Error
	return count, err
}

// SearchByKeyword matches active entities against the query terms using
// case-insensitive containment over the entity type and the serialized
// attribute map. Terms are ORed: a mention of any one of them counts.
func (r *KnowledgeEntityRepositoryImpl) SearchByKeyword(ctx context.Context, ventureId uuid.UUID, query string, entityTypes []string, limit int) ([]*entity.KnowledgeEntity, error) {
	if limit <= 0 {
		limit = 20
	}

	q := r.db.WithContext(ctx).
		Model(&model.KnowledgeEntity{}).
		Where("venture_id = ?", ventureId).
		Where("status = ?", "active")

	if len(entityTypes) > 0 {
		q = q.Where("entity_type IN ?", entityTypes)
	}

	terms := keywordTerms(query)
	if len(terms) > 0 {
		cond := r.db.Session(&gorm.Session{NewDB: true})
		for _, term := range terms {
			pattern := "%" + term + "%"
			cond = cond.Or("entity_type ILIKE ?", pattern).Or("attributes::text ILIKE ?", pattern)
		}
		q = q.Where(cond)
	}

	var models []*model.KnowledgeEntity
	if err := q.Order("confidence DESC").Limit(limit).Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

// keywordTerms splits the query into lowercase terms, dropping words too
// short to be meaningful search keys.
func keywordTerms(query string) []string {
	var terms []string
	for _, w := range strings.Fields(strings.ToLower(query)) {
		w = strings.Trim(w, ".,!?\"'()")
		if len(w) >= 3 {
			terms = append(terms, w)
		}
	}
	return terms
}
