package unitofwork

import (
	"context"

	"venture-advisory-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	VentureRepository() contract.VentureRepository
	DocumentRepository() contract.DocumentRepository
	PassageRepository() contract.PassageRepository
	KnowledgeEntityRepository() contract.KnowledgeEntityRepository

	ChatSessionRepository() contract.ChatSessionRepository
	ChatMessageRepository() contract.ChatMessageRepository
	ChatCitationRepository() contract.ChatCitationRepository
}
