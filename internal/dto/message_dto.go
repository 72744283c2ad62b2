package dto

import "github.com/google/uuid"

// PublishPersistCitationsMessage is the payload dispatched to the citation
// persistence worker after a chat turn completes.
type PublishPersistCitationsMessage struct {
	ChatMessageId uuid.UUID     `json:"chat_message_id"`
	Citations     []CitationDTO `json:"citations"`
}
