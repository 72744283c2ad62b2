package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateVentureRequest struct {
	Name  string `json:"name" validate:"required"`
	Stage string `json:"stage" validate:"required"`
}

type CreateVentureResponse struct {
	Id uuid.UUID `json:"id"`
}

type UpdateVentureStageRequest struct {
	Id    uuid.UUID
	Stage string `json:"stage" validate:"required"`
}

type ShowVentureResponse struct {
	Id        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	Stage     string     `json:"stage"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

type VentureDocumentResponse struct {
	Id        uuid.UUID `json:"id"`
	FileName  string    `json:"file_name"`
	MimeType  string    `json:"mime_type"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}
