package mapper

import (
	"time"

	"venture-advisory-be/internal/entity"
	"venture-advisory-be/internal/model"

	"gorm.io/gorm"
)

type VentureMapper struct{}

func NewVentureMapper() *VentureMapper {
	return &VentureMapper{}
}

func (m *VentureMapper) ToEntity(e *model.Venture) *entity.Venture {
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

	return &entity.Venture{
		Id:        e.Id,
		Name:      e.Name,
		Stage:     e.Stage,
		UserId:    e.UserId,
		CreatedAt: e.CreatedAt,
		UpdatedAt: updatedAt,
		DeletedAt: deletedAt,
		IsDeleted: e.DeletedAt.Valid,
	}
}

func (m *VentureMapper) ToModel(e *entity.Venture) *model.Venture {
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

	return &model.Venture{
		Id:        e.Id,
		Name:      e.Name,
		Stage:     e.Stage,
		UserId:    e.UserId,
		CreatedAt: e.CreatedAt,
		UpdatedAt: updatedAt,
		DeletedAt: deletedAt,
	}
}

func (m *VentureMapper) ToEntities(ventures []*model.Venture) []*entity.Venture {
	entities := make([]*entity.Venture, len(ventures))
	for i, v := range ventures {
		entities[i] = m.ToEntity(v)
	}
	return entities
}
