package bootstrap

import (
	"context"
	"log"

	"maum-baedal-be/internal/config"
	"maum-baedal-be/internal/controller"
	"maum-baedal-be/internal/handler"
	"maum-baedal-be/internal/pkg/logger"
	"maum-baedal-be/internal/pkg/mailer"
	"maum-baedal-be/internal/repository/implementation"
	"maum-baedal-be/internal/repository/memory"
	"maum-baedal-be/internal/repository/unitofwork"
	"maum-baedal-be/internal/service"
	"maum-baedal-be/internal/websocket"

	pktNats "maum-baedal-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	QuestionController     controller.IQuestionController
	ShareController        controller.IShareController
	ConversationController controller.IConversationController
	LabelController        controller.ILabelController
	HistoryController      controller.IHistoryController
	AuthController         controller.IAuthController
	OAuthController        controller.IOAuthController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	// WebSockets & Notification
	NotificationHandler *handler.NotificationHandler
	WebSocketHub        *websocket.Hub
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
	)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 2.5 Infrastructure
	// NATS
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}
	natsSub, err := pktNats.NewSubscriber(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Subscriber: %v", err)
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

	// WebSocket Hub
	wsLogger := logger.NewIsolatedLogger("logs/notification.log")
	wsHub := websocket.NewHub(rdb, wsLogger)
	go wsHub.Run()

	// 3. Services
	questionCache := memory.NewQuestionCache()

	publisherService := service.NewPublisherService(cfg.Topics.ProjectConversation, pubSub)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.Topics.ProjectConversation,
		uowFactory,
	)

	questionService := service.NewQuestionService(uowFactory, questionCache, cfg.Share.RotationHourKST)
	shareService := service.NewShareService(
		uowFactory,
		emailService,
		natsPub,
		sysLogger,
		cfg.App.ClientURL,
		cfg.Share.TokenTTLHours,
	)
	answerService := service.NewAnswerService(
		uowFactory,
		publisherService,
		natsPub,
		sysLogger,
	)
	conversationService := service.NewConversationService(uowFactory)
	labelService := service.NewLabelService(uowFactory)
	historyService := service.NewHistoryService(uowFactory)

	authService := service.NewAuthService(uowFactory, emailService, natsPub)
	oauthService := service.NewOAuthService(uowFactory, sysLogger)

	// 3.5 Notification System
	notifRepo := implementation.NewNotificationRepository(db)
	notifService := service.NewNotificationService(notifRepo, uowFactory, natsSub, wsHub, wsLogger)

	// Start Service (Worker)
	if natsSub != nil {
		go notifService.Start()
	}

	notifHandler := handler.NewNotificationHandler(notifService, wsHub, wsLogger)

	// 4. Controllers
	return &Container{
		NotificationHandler: notifHandler,
		WebSocketHub:        wsHub,

		QuestionController:     controller.NewQuestionController(questionService),
		ShareController:        controller.NewShareController(shareService, answerService),
		ConversationController: controller.NewConversationController(conversationService, answerService),
		LabelController:        controller.NewLabelController(labelService),
		HistoryController:      controller.NewHistoryController(historyService),
		AuthController:         controller.NewAuthController(authService),
		OAuthController:        controller.NewOAuthController(oauthService),

		ConsumerService: consumerService,
	}
}
