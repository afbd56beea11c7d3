package mapper

import (
	"maum-baedal-be/internal/entity"
	"maum-baedal-be/internal/model"
)

type ShareTokenMapper struct{}

func NewShareTokenMapper() *ShareTokenMapper {
	return &ShareTokenMapper{}
}

func (m *ShareTokenMapper) ToEntity(t *model.ShareToken) *entity.ShareToken {
	if t == nil {
		return nil
	}
	return &entity.ShareToken{
		Id:               t.Id,
		Token:            t.Token,
		QuestionId:       t.QuestionId,
		SenderId:         t.SenderId,
		RecipientLabelId: t.RecipientLabelId,
		ConversationId:   t.ConversationId,
		IssuedAt:         t.IssuedAt,
		ExpiresAt:        t.ExpiresAt,
		UsedAt:           t.UsedAt,
	}
}

func (m *ShareTokenMapper) ToModel(t *entity.ShareToken) *model.ShareToken {
	if t == nil {
		return nil
	}
	return &model.ShareToken{
		Id:               t.Id,
		Token:            t.Token,
		QuestionId:       t.QuestionId,
		SenderId:         t.SenderId,
		RecipientLabelId: t.RecipientLabelId,
		ConversationId:   t.ConversationId,
		IssuedAt:         t.IssuedAt,
		ExpiresAt:        t.ExpiresAt,
		UsedAt:           t.UsedAt,
	}
}
