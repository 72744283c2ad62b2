package bootstrap

import (
	"context"
	"log"
	"time"

	"venture-advisory-be/internal/config"
	"venture-advisory-be/internal/controller"
	"venture-advisory-be/internal/pkg/logger"
	"venture-advisory-be/internal/repository/memory"
	"venture-advisory-be/internal/repository/unitofwork"
	"venture-advisory-be/internal/service"
	"venture-advisory-be/pkg/cache"
	"venture-advisory-be/pkg/embedding"
	"venture-advisory-be/pkg/evidence"
	"venture-advisory-be/pkg/knowledge"
	"venture-advisory-be/pkg/retrieval"
	"venture-advisory-be/pkg/routing"

	pktNats "venture-advisory-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	VentureController   controller.IVentureController
	ChatController      controller.IChatController
	KnowledgeController controller.IKnowledgeController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// Initialize Embedding Provider based on Config
	var embeddingProvider embedding.EmbeddingProvider
	if cfg.Ai.EmbeddingProvider == "ollama" {
		embeddingProvider = embedding.NewOllamaProvider(
			cfg.Ai.OllamaBaseURL,
			cfg.Ai.OllamaModel,
		)
		log.Printf("[INFO] Using Embedding Provider: OLLAMA (%s)", cfg.Ai.OllamaModel)
	} else {
		embeddingProvider = embedding.NewGeminiProvider(cfg.Keys.GoogleGemini)
		log.Printf("[INFO] Using Embedding Provider: GEMINI")
	}

	// In-memory conversation state for routing continuation
	conversationRepo := memory.NewConversationRepository()

	// 2.5 Infrastructure
	// NATS
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}

	// Redis
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
	}

	// 3. Domain Engines
	routingEngine := routing.NewEngine(routing.NewRegistry(routing.DefaultAgents()))
	retrievalEngine := retrieval.NewEngine(
		retrieval.NewRepositorySource(uowFactory),
		cfg.Retrieval.HalfLifeDays,
	)
	knowledgeStore := knowledge.NewStore(uowFactory)
	orchestrator := evidence.NewOrchestrator(
		retrievalEngine,
		knowledgeStore,
		time.Duration(cfg.Retrieval.TimeoutMs)*time.Millisecond,
	)
	snapshotCache := cache.NewSnapshotCache(rdb, time.Duration(cfg.Retrieval.SnapshotTTLSecs)*time.Second)

	// 4. Services
	publisherService := service.NewPublisherService(cfg.Keys.CitationTopicName, pubSub)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.Keys.CitationTopicName,
		uowFactory,
	)

	ventureService := service.NewVentureService(uowFactory)
	knowledgeService := service.NewKnowledgeService(uowFactory, orchestrator, snapshotCache, sysLogger)

	var eventPublisher service.EventPublisher
	if natsPub != nil {
		eventPublisher = natsPub
	}
	chatService := service.NewChatService(
		uowFactory,
		conversationRepo,
		routingEngine,
		orchestrator,
		embeddingProvider,
		publisherService,
		eventPublisher,
		sysLogger,
		cfg.Retrieval.MaxChunks,
	)

	// 5. Controllers
	return &Container{
		VentureController:   controller.NewVentureController(ventureService),
		ChatController:      controller.NewChatController(chatService),
		KnowledgeController: controller.NewKnowledgeController(knowledgeService),

		ConsumerService: consumerService,
	}
}
