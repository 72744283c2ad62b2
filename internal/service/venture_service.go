package service

import (
	"context"
	"fmt"
	"time"

	"venture-advisory-be/internal/dto"
	"venture-advisory-be/internal/entity"
	"venture-advisory-be/internal/repository/specification"
	"venture-advisory-be/internal/repository/unitofwork"
	"venture-advisory-be/pkg/routing"

	"github.com/google/uuid"
)

type IVentureService interface {
	Create(ctx context.Context, userId uuid.UUID, request *dto.CreateVentureRequest) (*dto.CreateVentureResponse, error)
	Show(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.ShowVentureResponse, error)
	List(ctx context.Context, userId uuid.UUID) ([]*dto.ShowVentureResponse, error)
	UpdateStage(ctx context.Context, userId uuid.UUID, request *dto.UpdateVentureStageRequest) (*dto.ShowVentureResponse, error)
	Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error
	ListDocuments(ctx context.Context, userId uuid.UUID, ventureId uuid.UUID) ([]*dto.VentureDocumentResponse, error)
}

type ventureService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewVentureService(uowFactory unitofwork.RepositoryFactory) IVentureService {
	return &ventureService{
		uowFactory: uowFactory,
	}
}

func (vs *ventureService) Create(ctx context.Context, userId uuid.UUID, request *dto.CreateVentureRequest) (*dto.CreateVentureResponse, error) {
	if _, ok := routing.ParseStage(request.Stage); !ok {
		return nil, fmt.Errorf("unknown venture stage: %s", request.Stage)
	}

	uow := vs.uowFactory.NewUnitOfWork(ctx)

	venture := entity.Venture{
		Id:        uuid.New(),
		Name:      request.Name,
		Stage:     request.Stage,
		UserId:    userId,
		CreatedAt: time.Now(),
	}

	if err := uow.VentureRepository().Create(ctx, &venture); err != nil {
		return nil, err
	}

	return &dto.CreateVentureResponse{Id: venture.Id}, nil
}

func (vs *ventureService) Show(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.ShowVentureResponse, error) {
	uow := vs.uowFactory.NewUnitOfWork(ctx)

	venture, err := uow.VentureRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.ByUserID{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if venture == nil {
		return nil, fmt.Errorf("venture not found or access denied")
	}

	return ventureToResponse(venture), nil
}

func (vs *ventureService) List(ctx context.Context, userId uuid.UUID) ([]*dto.ShowVentureResponse, error) {
	uow := vs.uowFactory.NewUnitOfWork(ctx)

	ventures, err := uow.VentureRepository().FindAll(ctx,
		specification.ByUserID{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	response := make([]*dto.ShowVentureResponse, 0, len(ventures))
	for _, v := range ventures {
		response = append(response, ventureToResponse(v))
	}
	return response, nil
}

func (vs *ventureService) UpdateStage(ctx context.Context, userId uuid.UUID, request *dto.UpdateVentureStageRequest) (*dto.ShowVentureResponse, error) {
	if _, ok := routing.ParseStage(request.Stage); !ok {
		return nil, fmt.Errorf("unknown venture stage: %s", request.Stage)
	}

	uow := vs.uowFactory.NewUnitOfWork(ctx)

	venture, err := uow.VentureRepository().FindOne(ctx,
		specification.ByID{ID: request.Id},
		specification.ByUserID{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if venture == nil {
		return nil, fmt.Errorf("venture not found or access denied")
	}

	now := time.Now()
	venture.Stage = request.Stage
	venture.UpdatedAt = &now

	if err := uow.VentureRepository().Update(ctx, venture); err != nil {
		return nil, err
	}

	return ventureToResponse(venture), nil
}

func (vs *ventureService) Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	uow := vs.uowFactory.NewUnitOfWork(ctx)

	venture, err := uow.VentureRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.ByUserID{UserID: userId},
	)
	if err != nil {
		return err
	}
	if venture == nil {
		return fmt.Errorf("venture not found or access denied")
	}

	return uow.VentureRepository().Delete(ctx, id)
}

func (vs *ventureService) ListDocuments(ctx context.Context, userId uuid.UUID, ventureId uuid.UUID) ([]*dto.VentureDocumentResponse, error) {
	uow := vs.uowFactory.NewUnitOfWork(ctx)

	venture, err := uow.VentureRepository().FindOne(ctx,
		specification.ByID{ID: ventureId},
		specification.ByUserID{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if venture == nil {
		return nil, fmt.Errorf("venture not found or access denied")
	}

	documents, err := uow.DocumentRepository().FindAll(ctx,
		specification.ByVentureID{VentureID: ventureId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	response := make([]*dto.VentureDocumentResponse, 0, len(documents))
	for _, d := range documents {
		response = append(response, &dto.VentureDocumentResponse{
			Id:        d.Id,
			FileName:  d.FileName,
			MimeType:  d.MimeType,
			Status:    d.Status,
			CreatedAt: d.CreatedAt,
		})
	}
	return response, nil
}

func ventureToResponse(v *entity.Venture) *dto.ShowVentureResponse {
	return &dto.ShowVentureResponse{
		Id:        v.Id,
		Name:      v.Name,
		Stage:     v.Stage,
		CreatedAt: v.CreatedAt,
		UpdatedAt: v.UpdatedAt,
	}
}
