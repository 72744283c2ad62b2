package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Venture struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Stage     string    `gorm:"type:varchar(32);not null;default:'ideation'"`
	UserId    uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (Venture) TableName() string {
	return "ventures"
}
