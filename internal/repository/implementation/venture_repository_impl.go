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
	"gorm.io/gorm"
)

type VentureRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.VentureMapper
}

func NewVentureRepository(db *gorm.DB) contract.VentureRepository {
	return &VentureRepositoryImpl{
		db:     db,
		mapper: mapper.NewVentureMapper(),
	}
}

func (r *VentureRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *VentureRepositoryImpl) Create(ctx context.Context, venture *entity.Venture) error {
	m := r.mapper.ToModel(venture)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*venture = *r.mapper.ToEntity(m)
	return nil
}

func (r *VentureRepositoryImpl) Update(ctx context.Context, venture *entity.Venture) error {
	m := r.mapper.ToModel(venture)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*venture = *r.mapper.ToEntity(m)
	return nil
}

func (r *VentureRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Venture{}, id).Error
}

func (r *VentureRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Venture, error) {
	var m model.Venture
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *VentureRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Venture, error) {
	var models []*model.Venture
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *VentureRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	err := query.Model(&model.Venture{}).Count(&count).Error
	return count, err
}
