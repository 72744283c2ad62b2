package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Document struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	VentureId uuid.UUID `gorm:"type:uuid;not null;index"`
	FileName  string    `gorm:"type:varchar(512);not null"`
	MimeType  string    `gorm:"type:varchar(128)"`
	Status    string    `gorm:"type:varchar(32);default:'processed'"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"index"`

	Venture *Venture `gorm:"foreignKey:VentureId;references:Id;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

func (Document) TableName() string {
	return "documents"
}
