package entity

import (
	"time"

	"github.com/google/uuid"
)

// ChatCitation records which passage grounded a chat turn, with the
// freshness-weighted score the passage had at retrieval time.
type ChatCitation struct {
	Id            uuid.UUID
	ChatMessageId uuid.UUID
	PassageId     uuid.UUID
	DocumentId    uuid.UUID
	Score         float64
	CreatedAt     time.Time
}
