package mapper

import (
	"time"

	"venture-advisory-be/internal/entity"
	"venture-advisory-be/internal/model"

	"gorm.io/gorm"
)

type ChatMapper struct{}

func NewChatMapper() *ChatMapper {
	return &ChatMapper{}
}

func (m *ChatMapper) SessionToEntity(e *model.ChatSession) *entity.ChatSession {
	if e == nil {
		return nil
	}

	var deletedAt *time.Time
	if e.DeletedAt.Valid {
		t := e.DeletedAt.Time
		deletedAt = &t
	}

	var updatedAt *time.Time
	if !e.UpdatedAt.IsZero() {
		t := e.UpdatedAt
		updatedAt = &t
	}

	return &entity.ChatSession{
		Id:        e.Id,
		UserId:    e.UserId,
		VentureId: e.VentureId,
		Title:     e.Title,
		CreatedAt: e.CreatedAt,
		UpdatedAt: updatedAt,
		DeletedAt: deletedAt,
		IsDeleted: e.DeletedAt.Valid,
	}
}

func (m *ChatMapper) SessionToModel(e *entity.ChatSession) *model.ChatSession {
	if e == nil {
		return nil
	}

	var deletedAt gorm.DeletedAt
	if e.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *e.DeletedAt, Valid: true}
	} else if e.IsDeleted {
		deletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	}

	var updatedAt time.Time
	if e.UpdatedAt != nil {
		updatedAt = *e.UpdatedAt
	}

	return &model.ChatSession{
		Id:        e.Id,
		UserId:    e.UserId,
		VentureId: e.VentureId,
		Title:     e.Title,
		CreatedAt: e.CreatedAt,
		UpdatedAt: updatedAt,
		DeletedAt: deletedAt,
	}
}

func (m *ChatMapper) MessageToEntity(e *model.ChatMessage) *entity.ChatMessage {
	if e == nil {
		return nil
	}

	return &entity.ChatMessage{
		Id:            e.Id,
		ChatSessionId: e.ChatSessionId,
		Role:          e.Role,
		Content:       e.Content,
		AgentId:       e.AgentId,
		Confidence:    e.Confidence,
		CreatedAt:     e.CreatedAt,
	}
}

func (m *ChatMapper) MessageToModel(e *entity.ChatMessage) *model.ChatMessage {
	if e == nil {
		return nil
	}

	return &model.ChatMessage{
		Id:            e.Id,
		ChatSessionId: e.ChatSessionId,
		Role:          e.Role,
		Content:       e.Content,
		AgentId:       e.AgentId,
		Confidence:    e.Confidence,
		CreatedAt:     e.CreatedAt,
	}
}

func (m *ChatMapper) CitationToEntity(e *model.ChatCitation) *entity.ChatCitation {
	if e == nil {
		return nil
	}

	return &entity.ChatCitation{
		Id:            e.Id,
		ChatMessageId: e.ChatMessageId,
		PassageId:     e.PassageId,
		DocumentId:    e.DocumentId,
		Score:         e.Score,
		CreatedAt:     e.CreatedAt,
	}
}

func (m *ChatMapper) CitationToModel(e *entity.ChatCitation) *model.ChatCitation {
	if e == nil {
		return nil
	}

	return &model.ChatCitation{
		Id:            e.Id,
		ChatMessageId: e.ChatMessageId,
		PassageId:     e.PassageId,
		DocumentId:    e.DocumentId,
		Score:         e.Score,
		CreatedAt:     e.CreatedAt,
	}
}
