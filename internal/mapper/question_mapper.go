package mapper

import (
	"maum-baedal-be/internal/constant"
	"maum-baedal-be/internal/entity"
	"maum-baedal-be/internal/model"
)

type QuestionMapper struct{}

func NewQuestionMapper() *QuestionMapper {
	return &QuestionMapper{}
}

func (m *QuestionMapper) ToEntity(q *model.Question) *entity.Question {
	if q == nil {
		return nil
	}
	return &entity.Question{
		Id:        q.Id,
		Content:   q.Content,
		Category:  constant.QuestionCategory(q.Category),
		UsedAt:    q.UsedAt,
		IsActive:  q.IsActive,
		CreatedAt: q.CreatedAt,
	}
}

func (m *QuestionMapper) ToModel(q *entity.Question) *model.Question {
	if q == nil {
		return nil
	}
	return &model.Question{
		Id:        q.Id,
		Content:   q.Content,
		Category:  string(q.Category),
		UsedAt:    q.UsedAt,
		IsActive:  q.IsActive,
		CreatedAt: q.CreatedAt,
	}
}

func (m *QuestionMapper) ToEntities(questions []*model.Question) []*entity.Question {
	entities := make([]*entity.Question, len(questions))
	for i, q := range questions {
		entities[i] = m.ToEntity(q)
	}
	return entities
}
