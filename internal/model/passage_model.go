package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
)

type Passage struct {
	Id         uuid.UUID        `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	DocumentId uuid.UUID        `gorm:"type:uuid;not null;index"`
	VentureId  uuid.UUID        `gorm:"type:uuid;not null;index"`
	Content    string           `gorm:"type:text"`
	Embedding  *pgvector.Vector `gorm:"type:vector(768)"` // nullable until the ingestion worker embeds the chunk
	ChunkIndex int              `gorm:"default:0"`
	CreatedAt  time.Time        `gorm:"autoCreateTime"`
	UpdatedAt  time.Time        `gorm:"autoUpdateTime"`
	DeletedAt  gorm.DeletedAt   `gorm:"index"`

	Document *Document `gorm:"foreignKey:DocumentId;references:Id;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

func (Passage) TableName() string {
	return "document_chunks"
}
