package contract

import (
	"context"

	"venture-advisory-be/internal/entity"
	"venture-advisory-be/internal/repository/specification"
)

type DocumentRepository interface {
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Document, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Document, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
