package mapper

import (
	"time"

	"maum-baedal-be/internal/constant"
	"maum-baedal-be/internal/entity"
	"maum-baedal-be/internal/model"
)

type SummaryMapper struct{}

func NewSummaryMapper() *SummaryMapper {
	return &SummaryMapper{}
}

func (m *SummaryMapper) ToEntity(s *model.ConversationSummary) *entity.ConversationSummary {
	if s == nil {
		return nil
	}
	var updatedAt *time.Time
	if !s.UpdatedAt.IsZero() {
		t := s.UpdatedAt
		updatedAt = &t
	}
	return &entity.ConversationSummary{
		Id:                  s.Id,
		ConversationId:      s.ConversationId,
		OwnerId:             s.OwnerId,
		QuestionContent:     s.QuestionContent,
		QuestionCategory:    constant.QuestionCategory(s.QuestionCategory),
		ParticipantCount:    s.ParticipantCount,
		AnswerCount:         s.AnswerCount,
		Status:              constant.ConversationStatus(s.Status),
		IsArchived:          s.IsArchived,
		IsFavorite:          s.IsFavorite,
		LatestAnswerPreview: s.LatestAnswerPreview,
		LastAnsweredAt:      s.LastAnsweredAt,
		CreatedAt:           s.CreatedAt,
		UpdatedAt:           updatedAt,
	}
}

func (m *SummaryMapper) ToModel(s *entity.ConversationSummary) *model.ConversationSummary {
	if s == nil {
		return nil
	}
	var updatedAt time.Time
	if s.UpdatedAt != nil {
		updatedAt = *s.UpdatedAt
	}
	return &model.ConversationSummary{
		Id:                  s.Id,
		ConversationId:      s.ConversationId,
		OwnerId:             s.OwnerId,
		QuestionContent:     s.QuestionContent,
		QuestionCategory:    string(s.QuestionCategory),
		ParticipantCount:    s.ParticipantCount,
		AnswerCount:         s.AnswerCount,
		Status:              string(s.Status),
		IsArchived:          s.IsArchived,
		IsFavorite:          s.IsFavorite,
		LatestAnswerPreview: s.LatestAnswerPreview,
		LastAnsweredAt:      s.LastAnsweredAt,
		CreatedAt:           s.CreatedAt,
		UpdatedAt:           updatedAt,
	}
}

func (m *SummaryMapper) ToEntities(summaries []*model.ConversationSummary) []*entity.ConversationSummary {
	entities := make([]*entity.ConversationSummary, len(summaries))
	for i, s := range summaries {
		entities[i] = m.ToEntity(s)
	}
	return entities
}
