package service

import (
	"context"

	"maum-baedal-be/internal/dto"
	"maum-baedal-be/internal/entity"
	"maum-baedal-be/internal/pkg/apperror"
	"maum-baedal-be/internal/repository/specification"
	"maum-baedal-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IConversationService interface {
	// Gate evaluates visibility for the viewer without touching any state.
	Gate(ctx context.Context, viewerId, conversationId uuid.UUID) (*dto.GateResponse, error)

	// Show returns the conversation with its answers filtered through the
	// viewer's gate.
	Show(ctx context.Context, viewerId, conversationId uuid.UUID) (*dto.ShowConversationResponse, error)
}

type conversationService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewConversationService(uowFactory unitofwork.RepositoryFactory) IConversationService {
	return &conversationService{
		uowFactory: uowFactory,
	}
}

func (s *conversationService) Gate(ctx context.Context, viewerId, conversationId uuid.UUID) (*dto.GateResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	conversation, err := uow.ConversationRepository().FindOne(ctx, specification.ByID{ID: conversationId})
	if err != nil {
		return nil, err
	}
	if conversation == nil {
		return nil, apperror.NotFound("conversation not found")
	}

	participants, answers, viewer, err := s.loadGateInput(ctx, uow, viewerId, conversationId)
	if err != nil {
		return nil, err
	}

	gate := BuildGateView(participants, answers, viewer)
	return &gate, nil
}

func (s *conversationService) Show(ctx context.Context, viewerId, conversationId uuid.UUID) (*dto.ShowConversationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	conversation, err := uow.ConversationRepository().FindOne(ctx, specification.ByID{ID: conversationId})
	if err != nil {
		return nil, err
	}
	if conversation == nil {
		return nil, apperror.NotFound("conversation not found")
	}

	participants, answers, viewer, err := s.loadGateInput(ctx, uow, viewerId, conversationId)
	if err != nil {
		return nil, err
	}
	if viewer == nil {
		return nil, apperror.Unauthorized("not a participant of this conversation")
	}

	question, err := uow.QuestionRepository().FindOne(ctx, specification.ByID{ID: conversation.QuestionId})
	if err != nil {
		return nil, err
	}

	questionDTO := dto.QuestionResponse{}
	if question != nil {
		questionDTO = dto.QuestionResponse{
			Id:       question.Id,
			Content:  question.Content,
			Category: question.Category,
			Date:     conversation.CreatedAt.Format("2006-01-02"),
		}
	}

	participantItems := make([]dto.ParticipantItem, 0, len(participants))
	for _, p := range participants {
		participantItems = append(participantItems, dto.ParticipantItem{
			Id:          p.Id,
			DisplayName: p.DisplayName,
			HasAnswered: p.HasAnswered,
			JoinedAt:    p.JoinedAt,
		})
	}

	return &dto.ShowConversationResponse{
		Id:           conversation.Id,
		Question:     questionDTO,
		Status:       conversation.Status,
		Participants: participantItems,
		Gate:         BuildGateView(participants, answers, viewer),
		CreatedAt:    conversation.CreatedAt,
	}, nil
}

func (s *conversationService) loadGateInput(
	ctx context.Context,
	uow unitofwork.UnitOfWork,
	viewerId, conversationId uuid.UUID,
) ([]*entity.Participant, []*entity.Answer, *entity.Participant, error) {
	participants, err := uow.ParticipantRepository().FindAll(ctx,
		specification.ByConversationID{ConversationID: conversationId},
	)
	if err != nil {
		return nil, nil, nil, err
	}

	answers, err := uow.AnswerRepository().FindAll(ctx,
		specification.ByConversationID{ConversationID: conversationId},
	)
	if err != nil {
		return nil, nil, nil, err
	}

	var viewer *entity.Participant
	for _, p := range participants {
		if p.UserId != nil && *p.UserId == viewerId {
			viewer = p
			break
		}
	}

	return participants, answers, viewer, nil
}
