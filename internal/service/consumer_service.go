package service

import (
	"context"
	"encoding/json"
	"log"
	"strconv"
	"time"
	"unicode/utf8"

	"maum-baedal-be/internal/dto"
	"maum-baedal-be/internal/entity"
	"maum-baedal-be/internal/repository/specification"
	"maum-baedal-be/internal/repository/unitofwork"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

// previewLength bounds the latest-answer preview stored on summary rows.
const previewLength = 80

// Gochannel redelivers nacked messages immediately, so retriable failures
// (a down database, mostly) pace themselves here instead of spinning hot.
const (
	projectionRetryDelay  = 2 * time.Second
	projectionMaxAttempts = 10
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService rebuilds history summaries whenever a conversation changes.
// One summary row per participant with an account: each family member owns
// their own archive/favorite flags over the same conversation.
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
	var payload dto.ProjectConversationMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal projection message: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)

	conversation, err := uow.ConversationRepository().FindOne(ctx, specification.ByID{ID: payload.ConversationId})
	if err != nil {
		log.Printf("[ERROR] Failed to load conversation %s: %v", payload.ConversationId, err)
		cs.retry(msg)
		return
	}
	if conversation == nil {
		log.Printf("[WARN] Conversation not found, skipping projection: %s", payload.ConversationId)
		msg.Ack()
		return
	}

	question, err := uow.QuestionRepository().FindOne(ctx, specification.ByID{ID: conversation.QuestionId})
	if err != nil {
		log.Printf("[ERROR] Failed to load question %s: %v", conversation.QuestionId, err)
		cs.retry(msg)
		return
	}

	participants, err := uow.ParticipantRepository().FindAll(ctx,
		specification.ByConversationID{ConversationID: conversation.Id},
	)
	if err != nil {
		log.Printf("[ERROR] Failed to load participants for %s: %v", conversation.Id, err)
		cs.retry(msg)
		return
	}

	answers, err := uow.AnswerRepository().FindAll(ctx,
		specification.ByConversationID{ConversationID: conversation.Id},
	)
	if err != nil {
		log.Printf("[ERROR] Failed to load answers for %s: %v", conversation.Id, err)
		cs.retry(msg)
		return
	}

	preview := ""
	var lastAnsweredAt *time.Time
	if len(answers) > 0 {
		latest := answers[len(answers)-1]
		preview = truncateRunes(latest.Content, previewLength)
		at := latest.CreatedAt
		lastAnsweredAt = &at
	}

	if err := uow.Begin(ctx); err != nil {
		log.Printf("[ERROR] Failed to begin transaction: %v", err)
		cs.retry(msg)
		return
	}
	defer uow.Rollback()

	for _, p := range participants {
		if p.UserId == nil {
			continue // guests have no history view
		}

		summary := entity.ConversationSummary{
			Id:                  uuid.New(),
			ConversationId:      conversation.Id,
			OwnerId:             *p.UserId,
			ParticipantCount:    len(participants),
			AnswerCount:         len(answers),
			Status:              conversation.Status,
			LatestAnswerPreview: preview,
			LastAnsweredAt:      lastAnsweredAt,
			CreatedAt:           conversation.CreatedAt,
		}
		if question != nil {
			summary.QuestionContent = question.Content
			summary.QuestionCategory = question.Category
		}

		if err := uow.SummaryRepository().Upsert(ctx, &summary); err != nil {
			log.Printf("[ERROR] Failed to upsert summary for owner %s: %v", *p.UserId, err)
			cs.retry(msg)
			return
		}
	}

	if err := uow.Commit(); err != nil {
		log.Printf("[ERROR] Failed to commit projection: %v", err)
		cs.retry(msg)
		return
	}

	log.Printf("[INFO] Projected conversation %s (%d answers, %d participants)",
		conversation.Id, len(answers), len(participants))
	msg.Ack()
}

// retry paces redelivery of a retriable failure and gives up after
// projectionMaxAttempts: the projection is rebuilt in full on the next
// accepted answer, so a dropped message costs staleness, not data.
func (cs *consumerService) retry(msg *message.Message) {
	attempts, _ := strconv.Atoi(msg.Metadata.Get("attempts"))
	attempts++
	if attempts >= projectionMaxAttempts {
		log.Printf("[ERROR] Dropping projection message %s after %d attempts", msg.UUID, attempts)
		msg.Ack()
		return
	}
	msg.Metadata.Set("attempts", strconv.Itoa(attempts))
	time.Sleep(projectionRetryDelay)
	msg.Nack()
}

func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n]) + "…"
}
