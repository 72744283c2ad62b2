package mapper

import (
	"time"

	"venture-advisory-be/internal/entity"
	"venture-advisory-be/internal/model"

	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
)

type PassageMapper struct{}

func NewPassageMapper() *PassageMapper {
	return &PassageMapper{}
}

func (m *PassageMapper) ToEntity(e *model.Passage) *entity.Passage {
	if e == nil {
		return nil
	}

	var deletedAt *time.Time
	if e.DeletedAt.Valid {
		t := e.DeletedAt.Time
		deletedAt = &t
	}

	var updatedAt *time.Time
	if !e.UpdatedAt.IsZero() {
		t := e.UpdatedAt
		updatedAt = &t
	}

	var embedding []float32
	if e.Embedding != nil {
		embedding = e.Embedding.Slice()
	}

	return &entity.Passage{
		Id:         e.Id,
		DocumentId: e.DocumentId,
		VentureId:  e.VentureId,
		Content:    e.Content,
		Embedding:  embedding,
		ChunkIndex: e.ChunkIndex,
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  updatedAt,
		DeletedAt:  deletedAt,
		IsDeleted:  e.DeletedAt.Valid,
	}
}

func (m *PassageMapper) ToModel(e *entity.Passage) *model.Passage {
	if e == nil {
		return nil
	}

	var deletedAt gorm.DeletedAt
	if e.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *e.DeletedAt, Valid: true}
	} else if e.IsDeleted {
		deletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	}

	var updatedAt time.Time
	if e.UpdatedAt != nil {
		updatedAt = *e.UpdatedAt
	}

	var embedding *pgvector.Vector
	if e.Embedding != nil {
		v := pgvector.NewVector(e.Embedding)
		embedding = &v
	}

	return &model.Passage{
		Id:         e.Id,
		DocumentId: e.DocumentId,
		VentureId:  e.VentureId,
		Content:    e.Content,
		Embedding:  embedding,
		ChunkIndex: e.ChunkIndex,
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  updatedAt,
		DeletedAt:  deletedAt,
	}
}

func (m *PassageMapper) ToEntities(passages []*model.Passage) []*entity.Passage {
	entities := make([]*entity.Passage, len(passages))
	for i, p := range passages {
		entities[i] = m.ToEntity(p)
	}
	return entities
}
