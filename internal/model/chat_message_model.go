package model

import (
	"time"

	"github.com/google/uuid"
)

type ChatMessage struct {
	Id            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ChatSessionId uuid.UUID `gorm:"type:uuid;not null;index"`
	Role          string    `gorm:"type:varchar(16);not null"`
	Content       string    `gorm:"type:text;not null"`
	AgentId       string    `gorm:"type:varchar(64)"`
	Confidence    float64   `gorm:"type:decimal(4,3);default:0"`
	CreatedAt     time.Time `gorm:"autoCreateTime"`

	ChatSession *ChatSession `gorm:"foreignKey:ChatSessionId;references:Id;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

func (ChatMessage) TableName() string {
	return "chat_messages"
}
