package entity

import (
	"time"

	"github.com/google/uuid"
)

type Venture struct {
	Id        uuid.UUID
	Name      string
	Stage     string
	UserId    uuid.UUID
	CreatedAt time.Time
	UpdatedAt *time.Time
	DeletedAt *time.Time
	IsDeleted bool
}
