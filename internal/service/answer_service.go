package service

import (
	"context"
	"encoding/json"
	"strings"
	"time"
	"unicode/utf8"

	"maum-baedal-be/internal/constant"
	"maum-baedal-be/internal/dto"
	"maum-baedal-be/internal/entity"
	"maum-baedal-be/internal/pkg/apperror"
	"maum-baedal-be/internal/pkg/logger"
	"maum-baedal-be/internal/repository/specification"
	"maum-baedal-be/internal/repository/unitofwork"
	"maum-baedal-be/pkg/events"
	pktNats "maum-baedal-be/pkg/nats"

	"github.com/google/uuid"
)

type IAnswerService interface {
	// SubmitByToken records the recipient's answer against a share token,
	// consuming the token in the same transaction. First redemption creates
	// the conversation and enrolls the sender.
	SubmitByToken(ctx context.Context, tokenStr string, req *dto.SubmitAnswerRequest) (*dto.SubmitAnswerResponse, error)

	// SubmitByConversation records an existing participant's answer.
	SubmitByConversation(ctx context.Context, userId, conversationId uuid.UUID, req *dto.SubmitAnswerRequest) (*dto.SubmitAnswerResponse, error)
}

type answerService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	eventPublisher   *pktNats.Publisher
	logger           logger.ILogger
}

func NewAnswerService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	eventPublisher *pktNats.Publisher,
	log logger.ILogger,
) IAnswerService {
	return &answerService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		eventPublisher:   eventPublisher,
		logger:           log,
	}
}

// validateContent enforces the 2..800 codepoint bound. Codepoints, not
// bytes: Korean answers would otherwise hit the ceiling three times early.
func validateContent(content string) error {
	n := utf8.RuneCountInString(content)
	if n < constant.AnswerMinLength || n > constant.AnswerMaxLength {
		return apperror.ContentLengthViolation("answer must be between 2 and 800 characters")
	}
	return nil
}

func (s *answerService) SubmitByToken(ctx context.Context, tokenStr string, req *dto.SubmitAnswerRequest) (*dto.SubmitAnswerResponse, error) {
	now := time.Now()
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	// The row lock is the single-redemption guarantee: a concurrent
	// submission for the same token blocks here and then sees UsedAt set.
	token, err := uow.ShareTokenRepository().FindOne(ctx,
		specification.ByTokenString{Token: tokenStr},
		specification.LockForUpdate{},
	)
	if err != nil {
		return nil, err
	}
	if token == nil || token.IsUsed() || token.IsExpired(now) {
		return nil, apperror.InvalidTarget("share link is no longer available")
	}

	if err := validateContent(req.Content); err != nil {
		return nil, err
	}

	authorName := strings.TrimSpace(req.AuthorName)
	if authorName == "" {
		return nil, apperror.MissingAuthor("author name is required")
	}

	conversation := entity.Conversation{
		Id:         uuid.New(),
		QuestionId: token.QuestionId,
		Status:     constant.ConversationActive,
		CreatedAt:  now,
	}
	if err := uow.ConversationRepository().Create(ctx, &conversation); err != nil {
		return nil, err
	}

	// Enroll the sender so their gate starts locked until they answer too.
	senderName := "보낸 사람"
	if sender, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: token.SenderId}); err == nil && sender != nil {
		senderName = sender.FullName
	}
	senderId := token.SenderId
	senderParticipant := entity.Participant{
		Id:             uuid.New(),
		ConversationId: conversation.Id,
		UserId:         &senderId,
		DisplayName:    senderName,
		HasAnswered:    false,
		JoinedAt:       now,
	}
	if err := uow.ParticipantRepository().Create(ctx, &senderParticipant); err != nil {
		return nil, err
	}

	recipient := entity.Participant{
		Id:             uuid.New(),
		ConversationId: conversation.Id,
		UserId:         nil, // token recipients answer without an account
		DisplayName:    authorName,
		HasAnswered:    true,
		JoinedAt:       now,
	}
	if err := uow.ParticipantRepository().Create(ctx, &recipient); err != nil {
		return nil, err
	}

	answer := entity.Answer{
		Id:             uuid.New(),
		ConversationId: conversation.Id,
		ParticipantId:  recipient.Id,
		AuthorName:     authorName,
		Content:        req.Content,
		Position:       0,
		CreatedAt:      now,
	}
	if err := uow.AnswerRepository().Create(ctx, &answer); err != nil {
		return nil, err
	}

	// Consume in the same transaction as the append: a crash leaves either
	// both or neither.
	used := now
	token.UsedAt = &used
	convId := conversation.Id
	token.ConversationId = &convId
	if err := uow.ShareTokenRepository().Update(ctx, token); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.afterAccept(ctx, conversation.Id, answer, false)

	gate := BuildGateView(
		[]*entity.Participant{&senderParticipant, &recipient},
		[]*entity.Answer{&answer},
		&recipient,
	)

	return &dto.SubmitAnswerResponse{
		ConversationId: conversation.Id,
		AnswerId:       answer.Id,
		Gate:           gate,
	}, nil
}

func (s *answerService) SubmitByConversation(ctx context.Context, userId, conversationId uuid.UUID, req *dto.SubmitAnswerRequest) (*dto.SubmitAnswerResponse, error) {
	now := time.Now()
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	// Lock the conversation row: simultaneous submissions serialize here,
	// so the "last participant answered" check fires exactly once.
	conversation, err := uow.ConversationRepository().FindOne(ctx,
		specification.ByID{ID: conversationId},
		specification.LockForUpdate{},
	)
	if err != nil {
		return nil, err
	}
	if conversation == nil {
		return nil, apperror.InvalidTarget("conversation not found")
	}

	participant, err := uow.ParticipantRepository().FindOne(ctx,
		specification.ByConversationID{ConversationID: conversationId},
		specification.ByParticipantUserID{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if participant == nil {
		return nil, apperror.Unauthorized("not a participant of this conversation")
	}
	if participant.HasAnswered {
		return nil, apperror.InvalidTarget("answer already submitted")
	}

	if err := validateContent(req.Content); err != nil {
		return nil, err
	}

	authorName := strings.TrimSpace(req.AuthorName)
	if authorName == "" {
		authorName = participant.DisplayName
	}
	if authorName == "" {
		return nil, apperror.MissingAuthor("author name is required")
	}

	position, err := uow.AnswerRepository().Count(ctx,
		specification.ByConversationID{ConversationID: conversationId},
	)
	if err != nil {
		return nil, err
	}

	answer := entity.Answer{
		Id:             uuid.New(),
		ConversationId: conversationId,
		ParticipantId:  participant.Id,
		AuthorName:     authorName,
		Content:        req.Content,
		Position:       int(position),
		CreatedAt:      now,
	}
	if err := uow.AnswerRepository().Create(ctx, &answer); err != nil {
		return nil, err
	}

	participant.HasAnswered = true
	if err := uow.ParticipantRepository().Update(ctx, participant); err != nil {
		return nil, err
	}

	participants, err := uow.ParticipantRepository().FindAll(ctx,
		specification.ByConversationID{ConversationID: conversationId},
	)
	if err != nil {
		return nil, err
	}

	completed := true
	for _, p := range participants {
		if !p.HasAnswered {
			completed = false
			break
		}
	}
	if completed && conversation.Status != constant.ConversationCompleted {
		conversation.Status = constant.ConversationCompleted
		if err := uow.ConversationRepository().Update(ctx, conversation); err != nil {
			return nil, err
		}
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.afterAccept(ctx, conversationId, answer, completed)

	answers, err := s.uowFactory.NewUnitOfWork(ctx).AnswerRepository().FindAll(ctx,
		specification.ByConversationID{ConversationID: conversationId},
	)
	if err != nil {
		return nil, err
	}

	gate := BuildGateView(participants, answers, participant)

	return &dto.SubmitAnswerResponse{
		ConversationId: conversationId,
		AnswerId:       answer.Id,
		Gate:           gate,
	}, nil
}

// afterAccept runs the post-commit side effects: the projection rebuild
// message and the notification events. Both are auxiliary; failures are
// logged, never surfaced to the submitter.
func (s *answerService) afterAccept(ctx context.Context, conversationId uuid.UUID, answer entity.Answer, completed bool) {
	msgPayload := dto.ProjectConversationMessage{ConversationId: conversationId}
	if msgJson, err := json.Marshal(msgPayload); err == nil {
		if err := s.publisherService.Publish(ctx, msgJson); err != nil {
			s.logger.Warn("AnswerService", "Failed to publish projection message", map[string]interface{}{"error": err.Error()})
		}
	}

	if s.eventPublisher == nil {
		return
	}

	evt := events.BaseEvent{
		Type: constant.EventAnswerSubmitted,
		Data: map[string]interface{}{
			"conversation_id": conversationId,
			"answer_id":       answer.Id,
			"author_name":     answer.AuthorName,
		},
		OccurredAt: answer.CreatedAt,
	}
	if err := s.eventPublisher.Publish(ctx, evt); err != nil {
		s.logger.Warn("AnswerService", "Failed to publish ANSWER_SUBMITTED event", map[string]interface{}{"error": err.Error()})
	}

	if completed {
		evt := events.BaseEvent{
			Type: constant.EventConversationCompleted,
			Data: map[string]interface{}{
				"conversation_id": conversationId,
			},
			OccurredAt: time.Now(),
		}
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			s.logger.Warn("AnswerService", "Failed to publish CONVERSATION_COMPLETED event", map[string]interface{}{"error": err.Error()})
		}
	}
}

// BuildGateView runs the gate for one viewer and filters the answer list
// down to what that viewer may see: their own answer always, everyone's
// once the gate opens.
func BuildGateView(participants []*entity.Participant, answers []*entity.Answer, viewer *entity.Participant) dto.GateResponse {
	status, canView := EvaluateGate(participants, viewer)

	answered := 0
	for _, p := range participants {
		if p.HasAnswered {
			answered++
		}
	}

	items := make([]dto.AnswerItem, 0, len(answers))
	for _, a := range answers {
		isMine := viewer != nil && a.ParticipantId == viewer.Id
		if !isMine && !canView {
			continue
		}
		items = append(items, dto.AnswerItem{
			Id:         a.Id,
			AuthorName: a.AuthorName,
			Content:    a.Content,
			Position:   a.Position,
			CreatedAt:  a.CreatedAt,
			IsMine:     isMine,
		})
	}

	return dto.GateResponse{
		Status:               status,
		CanViewOthersAnswers: canView,
		AnsweredCount:        answered,
		ParticipantCount:     len(participants),
		Answers:              items,
	}
}
