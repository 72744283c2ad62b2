package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ByChatSessionID filters by chat session
type ByChatSessionID struct {
	ChatSessionID uuid.UUID
}

func (s ByChatSessionID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("chat_session_id = ?", s.ChatSessionID)
}

// ByChatMessageIDs filters citations by their parent messages
type ByChatMessageIDs struct {
	ChatMessageIDs []uuid.UUID
}

func (s ByChatMessageIDs) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("chat_message_id IN ?", s.ChatMessageIDs)
}
