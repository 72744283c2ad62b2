package contract

import (
	"context"

	"venture-advisory-be/internal/entity"
	"venture-advisory-be/internal/repository/specification"
)

type ChatCitationRepository interface {
	CreateBulk(ctx context.Context, citations []*entity.ChatCitation) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatCitation, error)
}
