package contract

import (
	"context"

	"venture-advisory-be/internal/entity"
	"venture-advisory-be/internal/repository/specification"

	"github.com/google/uuid"
)

type VentureRepository interface {
	Create(ctx context.Context, venture *entity.Venture) error
	Update(ctx context.Context, venture *entity.Venture) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Venture, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Venture, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
