package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type KnowledgeEntity struct {
	Id            uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	VentureId     uuid.UUID         `gorm:"type:uuid;not null;index"`
	EntityType    string            `gorm:"type:varchar(64);not null;index"`
	Attributes    datatypes.JSONMap `gorm:"type:jsonb"`
	Confidence    float64           `gorm:"type:decimal(4,3);default:0.5"`
	Status        string            `gorm:"type:varchar(32);default:'active'"`
	EvidenceCount int               `gorm:"default:0"`
	CreatedAt     time.Time         `gorm:"autoCreateTime"`
	UpdatedAt     time.Time         `gorm:"autoUpdateTime"`
}

func (KnowledgeEntity) TableName() string {
	return "knowledge_entities"
}
