package mapper

import (
	"time"

	"maum-baedal-be/internal/constant"
	"maum-baedal-be/internal/entity"
	"maum-baedal-be/internal/model"
)

type ConversationMapper struct{}

func NewConversationMapper() *ConversationMapper {
	return &ConversationMapper{}
}

func (m *ConversationMapper) ToEntity(c *model.Conversation) *entity.Conversation {
	if c == nil {
		return nil
	}
	var updatedAt *time.Time
	if !c.UpdatedAt.IsZero() {
		t := c.UpdatedAt
		updatedAt = &t
	}
	return &entity.Conversation{
		Id:         c.Id,
		QuestionId: c.QuestionId,
		Status:     constant.ConversationStatus(c.Status),
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  updatedAt,
	}
}

func (m *ConversationMapper) ToModel(c *entity.Conversation) *model.Conversation {
	if c == nil {
		return nil
	}
	var updatedAt time.Time
	if c.UpdatedAt != nil {
		updatedAt = *c.UpdatedAt
	}
	return &model.Conversation{
		Id:         c.Id,
		QuestionId: c.QuestionId,
		Status:     string(c.Status),
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  updatedAt,
	}
}

type ParticipantMapper struct{}

func NewParticipantMapper() *ParticipantMapper {
	return &ParticipantMapper{}
}

func (m *ParticipantMapper) ToEntity(p *model.Participant) *entity.Participant {
	if p == nil {
		return nil
	}
	return &entity.Participant{
		Id:             p.Id,
		ConversationId: p.ConversationId,
		UserId:         p.UserId,
		DisplayName:    p.DisplayName,
		HasAnswered:    p.HasAnswered,
		JoinedAt:       p.JoinedAt,
	}
}

func (m *ParticipantMapper) ToModel(p *entity.Participant) *model.Participant {
	if p == nil {
		return nil
	}
	return &model.Participant{
		Id:             p.Id,
		ConversationId: p.ConversationId,
		UserId:         p.UserId,
		DisplayName:    p.DisplayName,
		HasAnswered:    p.HasAnswered,
		JoinedAt:       p.JoinedAt,
	}
}

func (m *ParticipantMapper) ToEntities(participants []*model.Participant) []*entity.Participant {
	entities := make([]*entity.Participant, len(participants))
	for i, p := range participants {
		entities[i] = m.ToEntity(p)
	}
	return entities
}

type AnswerMapper struct{}

func NewAnswerMapper() *AnswerMapper {
	return &AnswerMapper{}
}

func (m *AnswerMapper) ToEntity(a *model.Answer) *entity.Answer {
	if a == nil {
		return nil
	}
	return &entity.Answer{
		Id:             a.Id,
		ConversationId: a.ConversationId,
		ParticipantId:  a.ParticipantId,
		AuthorName:     a.AuthorName,
		Content:        a.Content,
		Position:       a.Position,
		CreatedAt:      a.CreatedAt,
	}
}

func (m *AnswerMapper) ToModel(a *entity.Answer) *model.Answer {
	if a == nil {
		return nil
	}
	return &model.Answer{
		Id:             a.Id,
		ConversationId: a.ConversationId,
		ParticipantId:  a.ParticipantId,
		AuthorName:     a.AuthorName,
		Content:        a.Content,
		Position:       a.Position,
		CreatedAt:      a.CreatedAt,
	}
}

func (m *AnswerMapper) ToEntities(answers []*model.Answer) []*entity.Answer {
	entities := make([]*entity.Answer, len(answers))
	for i, a := range answers {
		entities[i] = m.ToEntity(a)
	}
	return entities
}
