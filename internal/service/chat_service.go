package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"venture-advisory-be/internal/constant"
	"venture-advisory-be/internal/dto"
	"venture-advisory-be/internal/entity"
	"venture-advisory-be/internal/pkg/logger"
	"venture-advisory-be/internal/repository/memory"
	"venture-advisory-be/internal/repository/specification"
	"venture-advisory-be/internal/repository/unitofwork"
	"venture-advisory-be/pkg/embedding"
	"venture-advisory-be/pkg/events"
	"venture-advisory-be/pkg/evidence"
	"venture-advisory-be/pkg/routing"

	"github.com/google/uuid"
)

// EventPublisher is the analytics bus surface the chat service needs.
type EventPublisher interface {
	Publish(ctx context.Context, event events.Event) error
}

type IChatService interface {
	CreateSession(ctx context.Context, userId uuid.UUID, request *dto.CreateSessionRequest) (*dto.CreateSessionResponse, error)
	GetAllSessions(ctx context.Context, userId uuid.UUID) ([]*dto.GetAllSessionsResponse, error)
	GetChatHistory(ctx context.Context, userId uuid.UUID, sessionId uuid.UUID) ([]*dto.GetChatHistoryResponse, error)
	SendChat(ctx context.Context, userId uuid.UUID, request *dto.SendChatRequest) (*dto.SendChatResponse, error)
	DeleteSession(ctx context.Context, userId uuid.UUID, sessionId uuid.UUID) error
}

// chatService drives one chat turn end to end: routing decision first,
// evidence assembly second, persistence last. Routing is synchronous and
// cannot fail; evidence can, and a failed turn persists nothing.
type chatService struct {
	uowFactory        unitofwork.RepositoryFactory
	conversationRepo  *memory.ConversationRepository
	router            *routing.Engine
	orchestrator      *evidence.Orchestrator
	embeddingProvider embedding.EmbeddingProvider
	publisherService  IPublisherService
	eventPublisher    EventPublisher
	sysLogger         logger.ILogger
	maxChunks         int
}

func NewChatService(
	uowFactory unitofwork.RepositoryFactory,
	conversationRepo *memory.ConversationRepository,
	router *routing.Engine,
	orchestrator *evidence.Orchestrator,
	embeddingProvider embedding.EmbeddingProvider,
	publisherService IPublisherService,
	eventPublisher EventPublisher,
	sysLogger logger.ILogger,
	maxChunks int,
) IChatService {
	if maxChunks <= 0 {
		maxChunks = 8
	}
	return &chatService{
		uowFactory:        uowFactory,
		conversationRepo:  conversationRepo,
		router:            router,
		orchestrator:      orchestrator,
		embeddingProvider: embeddingProvider,
		publisherService:  publisherService,
		eventPublisher:    eventPublisher,
		sysLogger:         sysLogger,
		maxChunks:         maxChunks,
	}
}

func (cs *chatService) CreateSession(ctx context.Context, userId uuid.UUID, request *dto.CreateSessionRequest) (*dto.CreateSessionResponse, error) {
	uow := cs.uowFactory.NewUnitOfWork(ctx)

	venture, err := uow.VentureRepository().FindOne(ctx,
		specification.ByID{ID: request.VentureId},
		specification.ByUserID{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if venture == nil {
		return nil, fmt.Errorf("venture not found or access denied")
	}

	title := request.Title
	if title == "" {
		title = "Unnamed session"
	}

	chatSession := entity.ChatSession{
		Id:        uuid.New(),
		UserId:    userId,
		VentureId: venture.Id,
		Title:     title,
		CreatedAt: time.Now(),
	}

	if err := uow.ChatSessionRepository().Create(ctx, &chatSession); err != nil {
		return nil, err
	}

	return &dto.CreateSessionResponse{Id: chatSession.Id}, nil
}

func (cs *chatService) GetAllSessions(ctx context.Context, userId uuid.UUID) ([]*dto.GetAllSessionsResponse, error) {
	uow := cs.uowFactory.NewUnitOfWork(ctx)

	chatSessions, err := uow.ChatSessionRepository().FindAll(ctx,
		specification.ByUserID{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	response := make([]*dto.GetAllSessionsResponse, 0, len(chatSessions))
	for _, s := range chatSessions {
		response = append(response, &dto.GetAllSessionsResponse{
			Id:        s.Id,
			VentureId: s.VentureId,
			Title:     s.Title,
			CreatedAt: s.CreatedAt,
			UpdatedAt: s.UpdatedAt,
		})
	}

	return response, nil
}

func (cs *chatService) GetChatHistory(ctx context.Context, userId uuid.UUID, sessionId uuid.UUID) ([]*dto.GetChatHistoryResponse, error) {
	uow := cs.uowFactory.NewUnitOfWork(ctx)

	sess, err := uow.ChatSessionRepository().FindOne(ctx,
		specification.ByID{ID: sessionId},
		specification.ByUserID{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, fmt.Errorf("session not found or access denied")
	}

	chatMessages, err := uow.ChatMessageRepository().FindAll(ctx,
		specification.ByChatSessionID{ChatSessionID: sessionId},
		specification.OrderBy{Field: "created_at", Desc: false},
	)
	if err != nil {
		return nil, err
	}

	messageIds := make([]uuid.UUID, len(chatMessages))
	for i, msg := range chatMessages {
		messageIds[i] = msg.Id
	}

	citationsByMsgId := make(map[uuid.UUID][]dto.CitationDTO)
	if len(messageIds) > 0 {
		citations, err := uow.ChatCitationRepository().FindAll(ctx,
			specification.ByChatMessageIDs{ChatMessageIDs: messageIds},
		)
		if err != nil {
			return nil, err
		}
		for _, c := range citations {
			citationsByMsgId[c.ChatMessageId] = append(citationsByMsgId[c.ChatMessageId], dto.CitationDTO{
				PassageId:  c.PassageId,
				DocumentId: c.DocumentId,
				Score:      c.Score,
			})
		}
	}

	response := make([]*dto.GetChatHistoryResponse, 0, len(chatMessages))
	for _, msg := range chatMessages {
		response = append(response, &dto.GetChatHistoryResponse{
			Id:         msg.Id,
			Role:       msg.Role,
			Chat:       msg.Content,
			AgentId:    msg.AgentId,
			Confidence: msg.Confidence,
			CreatedAt:  msg.CreatedAt,
			Citations:  citationsByMsgId[msg.Id],
		})
	}

	return response, nil
}

func (cs *chatService) SendChat(ctx context.Context, userId uuid.UUID, request *dto.SendChatRequest) (*dto.SendChatResponse, error) {
	uow := cs.uowFactory.NewUnitOfWork(ctx)

	// 1. Ownership check, then load the venture for its stage.
	sess, err := uow.ChatSessionRepository().FindOne(ctx,
		specification.ByID{ID: request.ChatSessionId},
		specification.ByUserID{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, fmt.Errorf("session not found or access denied")
	}

	venture, err := uow.VentureRepository().FindOne(ctx, specification.ByID{ID: sess.VentureId})
	if err != nil {
		return nil, err
	}
	if venture == nil {
		return nil, fmt.Errorf("venture not found")
	}

	// 2. Routing decision. Stage parsing is lenient: an unknown stage
	// simply matches no stage override.
	stage, _ := routing.ParseStage(venture.Stage)

	var activeArtifactAgentId string
	state, found := cs.conversationRepo.Get(sess.Id.String())
	if found {
		activeArtifactAgentId = state.ActiveArtifactAgentId
	}

	plan := cs.router.Route(routing.Request{
		Message:               request.Chat,
		Stage:                 stage,
		OverrideAgentId:       request.OverrideAgentId,
		ActiveArtifactAgentId: activeArtifactAgentId,
	})

	cs.sysLogger.Info("chat", "routed chat turn", map[string]interface{}{
		"session_id": sess.Id,
		"agent_id":   plan.AgentId,
		"confidence": plan.Confidence,
		"reasoning":  plan.Reasoning,
		"elapsed_ms": plan.ElapsedMs,
	})

	// 3. Evidence assembly: embed the raw prompt, then fan out.
	embRes, err := cs.embeddingProvider.Generate(request.Chat, "RETRIEVAL_QUERY")
	if err != nil {
		return nil, &evidence.BackendError{Branch: evidence.BranchRetrieval, Err: err}
	}

	bundle, err := cs.orchestrator.Retrieve(ctx, venture.Id, request.Chat, embRes.Embedding.Values, nil, cs.maxChunks)
	if err != nil {
		return nil, err
	}

	// 4. Persist the turn. Citations are written asynchronously by the
	// consumer; the message row itself is the only synchronous write.
	now := time.Now()
	chatMessage := entity.ChatMessage{
		Id:            uuid.New(),
		ChatSessionId: sess.Id,
		Role:          constant.ChatMessageRoleUser,
		Content:       request.Chat,
		AgentId:       plan.AgentId,
		Confidence:    plan.Confidence,
		CreatedAt:     now,
	}
	if err := uow.ChatMessageRepository().Create(ctx, &chatMessage); err != nil {
		return nil, err
	}

	// 5. Continuation hint for the next turn.
	newState := &memory.ConversationState{
		SessionId:   sess.Id.String(),
		LastAgentId: plan.AgentId,
		LastQuery:   request.Chat,
	}
	if plan.ProducesArtifact {
		newState.ActiveArtifactAgentId = plan.AgentId
	} else if found {
		newState.ActiveArtifactAgentId = state.ActiveArtifactAgentId
	}
	cs.conversationRepo.Save(newState)

	// 6. Async citation persistence.
	if len(bundle.Citations) > 0 {
		msgPayload := dto.PublishPersistCitationsMessage{
			ChatMessageId: chatMessage.Id,
			Citations:     dto.CitationsToDTO(bundle.Citations),
		}
		msgJson, err := json.Marshal(msgPayload)
		if err != nil {
			return nil, err
		}
		if err := cs.publisherService.Publish(ctx, msgJson); err != nil {
			return nil, err
		}
	}

	// 7. Analytics event. Auxiliary, never fails the request.
	if cs.eventPublisher != nil {
		evt := events.NewChatTurnRouted(venture.Id.String(), sess.Id.String(), plan.AgentId, plan.Confidence, plan.ElapsedMs)
		if err := cs.eventPublisher.Publish(ctx, evt); err != nil {
			cs.sysLogger.Warn("chat", "failed to publish CHAT_TURN_ROUTED event", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}

	return &dto.SendChatResponse{
		ChatSessionId: sess.Id,
		MessageId:     chatMessage.Id,
		Plan: dto.RoutingPlanDTO{
			AgentId:          plan.AgentId,
			ModelProfile:     plan.ModelProfile,
			Tools:            plan.Tools,
			ProducesArtifact: plan.ProducesArtifact,
			FallbackAgentId:  plan.FallbackAgentId,
			Confidence:       plan.Confidence,
			Reasoning:        plan.Reasoning,
			ElapsedMs:        plan.ElapsedMs,
		},
		Evidence: dto.EvidenceDTO{
			Passages:  dto.PassagesToDTO(bundle.Passages),
			Entities:  dto.KnowledgeEntitiesToDTO(bundle.Entities),
			Citations: dto.CitationsToDTO(bundle.Citations),
		},
		CreatedAt: now,
	}, nil
}

func (cs *chatService) DeleteSession(ctx context.Context, userId uuid.UUID, sessionId uuid.UUID) error {
	uow := cs.uowFactory.NewUnitOfWork(ctx)

	sess, err := uow.ChatSessionRepository().FindOne(ctx,
		specification.ByID{ID: sessionId},
		specification.ByUserID{UserID: userId},
	)
	if err != nil {
		return err
	}
	if sess == nil {
		return fmt.Errorf("session not found or access denied")
	}

	if err := uow.ChatSessionRepository().Delete(ctx, sessionId); err != nil {
		return err
	}

	cs.conversationRepo.Delete(sessionId.String())
	return nil
}
