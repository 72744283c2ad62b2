package mapper

import (
	"time"

	"venture-advisory-be/internal/entity"
	"venture-advisory-be/internal/model"

	"gorm.io/datatypes"
)

type KnowledgeEntityMapper struct{}

func NewKnowledgeEntityMapper() *KnowledgeEntityMapper {
	return &KnowledgeEntityMapper{}
}

func (m *KnowledgeEntityMapper) ToEntity(e *model.KnowledgeEntity) *entity.KnowledgeEntity {
	if e == nil {
		return nil
	}

	var updatedAt *time.Time
	if !e.UpdatedAt.IsZero() {
		t := e.UpdatedAt
		updatedAt = &t
	}

	return &entity.KnowledgeEntity{
		Id:            e.Id,
		VentureId:     e.VentureId,
		EntityType:    e.EntityType,
		Attributes:    map[string]interface{}(e.Attributes),
		Confidence:    e.Confidence,
		Status:        e.Status,
		EvidenceCount: e.EvidenceCount,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     updatedAt,
	}
}

func (m *KnowledgeEntityMapper) ToModel(e *entity.KnowledgeEntity) *model.KnowledgeEntity {
	if e == nil {
		return nil
	}

	var updatedAt time.Time
	if e.UpdatedAt != nil {
		updatedAt = *e.UpdatedAt
	}

	return &model.KnowledgeEntity{
		Id:            e.Id,
		VentureId:     e.VentureId,
		EntityType:    e.EntityType,
		Attributes:    datatypes.JSONMap(e.Attributes),
		Confidence:    e.Confidence,
		Status:        e.Status,
		EvidenceCount: e.EvidenceCount,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     updatedAt,
	}
}

func (m *KnowledgeEntityMapper) ToEntities(records []*model.KnowledgeEntity) []*entity.KnowledgeEntity {
	entities := make([]*entity.KnowledgeEntity, len(records))
	for i, r := range records {
		entities[i] = m.ToEntity(r)
	}
	return entities
}
