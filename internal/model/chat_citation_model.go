package model

import (
	"time"

	"github.com/google/uuid"
)

type ChatCitation struct {
	Id            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ChatMessageId uuid.UUID `gorm:"type:uuid;not null;index"`
	PassageId     uuid.UUID `gorm:"type:uuid;not null;index"`
	DocumentId    uuid.UUID `gorm:"type:uuid;not null"`
	Score         float64   `gorm:"type:decimal(7,6);default:0"`
	CreatedAt     time.Time `gorm:"autoCreateTime"`

	ChatMessage *ChatMessage `gorm:"foreignKey:ChatMessageId;references:Id;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Passage     *Passage     `gorm:"foreignKey:PassageId;references:Id;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

func (ChatCitation) TableName() string {
	return "chat_citations"
}
