package service

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"venture-advisory-be/internal/dto"
	"venture-advisory-be/internal/entity"
	"venture-advisory-be/internal/repository/unitofwork"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService persists chat citations off the request path. Losing a
// citation row degrades the history view, not the chat turn itself, so
// this runs as a background worker fed by the in-process bus.
type consumerService struct {
	pubSub     *gochannel.GoChannel
	topicName  string
	uowFactory unitofwork.RepositoryFactory
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
) IConsumerService {
	return &consumerService{
		pubSub:     pubSub,
		topicName:  topicName,
		uowFactory: uowFactory,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.PublishPersistCitationsMessage
	err := json.Unmarshal(msg.Payload, &payload)
	if err != nil {
		log.Printf("[ERROR] Failed to unmarshal message: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	if len(payload.Citations) == 0 {
		msg.Ack()
		return
	}

	now := time.Now()
	citations := make([]*entity.ChatCitation, 0, len(payload.Citations))
	for _, c := range payload.Citations {
		citations = append(citations, &entity.ChatCitation{
			Id:            uuid.New(),
			ChatMessageId: payload.ChatMessageId,
			PassageId:     c.PassageId,
			DocumentId:    c.DocumentId,
			Score:         c.Score,
			CreatedAt:     now,
		})
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)
	if err := uow.ChatCitationRepository().CreateBulk(ctx, citations); err != nil {
		log.Printf("[ERROR] Failed to persist citations for message %s: %v", payload.ChatMessageId, err)
		msg.Nack() // Nack for retriable errors
		return
	}

	msg.Ack()
}
