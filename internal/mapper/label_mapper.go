package mapper

import (
	"time"

	"maum-baedal-be/internal/constant"
	"maum-baedal-be/internal/entity"
	"maum-baedal-be/internal/model"
)

type LabelMapper struct{}

func NewLabelMapper() *LabelMapper {
	return &LabelMapper{}
}

func (m *LabelMapper) ToEntity(l *model.ManagedLabel) *entity.ManagedLabel {
	if l == nil {
		return nil
	}
	var updatedAt *time.Time
	if !l.UpdatedAt.IsZero() {
		t := l.UpdatedAt
		updatedAt = &t
	}
	return &entity.ManagedLabel{
		Id:           l.Id,
		OwnerId:      l.OwnerId,
		Name:         l.Name,
		Nickname:     l.Nickname,
		Relationship: constant.Relationship(l.Relationship),
		Color:        l.Color,
		Emoji:        l.Emoji,
		UsageCount:   l.UsageCount,
		LastUsedAt:   l.LastUsedAt,
		IsActive:     l.IsActive,
		IsPinned:     l.IsPinned,
		CreatedAt:    l.CreatedAt,
		UpdatedAt:    updatedAt,
	}
}

func (m *LabelMapper) ToModel(l *entity.ManagedLabel) *model.ManagedLabel {
	if l == nil {
		return nil
	}
	var updatedAt time.Time
	if l.UpdatedAt != nil {
		updatedAt = *l.UpdatedAt
	}
	return &model.ManagedLabel{
		Id:           l.Id,
		OwnerId:      l.OwnerId,
		Name:         l.Name,
		Nickname:     l.Nickname,
		Relationship: string(l.Relationship),
		Color:        l.Color,
		Emoji:        l.Emoji,
		UsageCount:   l.UsageCount,
		LastUsedAt:   l.LastUsedAt,
		IsActive:     l.IsActive,
		IsPinned:     l.IsPinned,
		CreatedAt:    l.CreatedAt,
		UpdatedAt:    updatedAt,
	}
}

func (m *LabelMapper) ToEntities(labels []*model.ManagedLabel) []*entity.ManagedLabel {
	entities := make([]*entity.ManagedLabel, len(labels))
	for i, l := range labels {
		entities[i] = m.ToEntity(l)
	}
	return entities
}
