package dto

import (
	"time"

	"github.com/google/uuid"

	"maum-baedal-be/internal/constant"
)

type CreateLabelRequest struct {
	Name         string  `json:"name" validate:"required,max=50"`
	Nickname     *string `json:"nickname" validate:"omitempty,max=50"`
	Relationship string  `json:"relationship" validate:"required"`
	Color        *string `json:"color" validate:"omitempty,hexcolor"`
	Emoji        *string `json:"emoji" validate:"omitempty,max=8"`
}

type CreateLabelResponse struct {
	Id uuid.UUID `json:"id"`
}

type UpdateLabelRequest struct {
	Id           uuid.UUID
	Name         string  `json:"name" validate:"required,max=50"`
	Nickname     *string `json:"nickname" validate:"omitempty,max=50"`
	Relationship string  `json:"relationship" validate:"required"`
	Color        *string `json:"color" validate:"omitempty,hexcolor"`
	Emoji        *string `json:"emoji" validate:"omitempty,max=8"`
	IsPinned     bool    `json:"is_pinned"`
}

type LabelResponse struct {
	Id           uuid.UUID             `json:"id"`
	Name         string                `json:"name"`
	Nickname     *string               `json:"nickname"`
	Relationship constant.Relationship `json:"relationship"`
	Color        *string               `json:"color"`
	Emoji        *string               `json:"emoji"`
	UsageCount   int                   `json:"usage_count"`
	LastUsedAt   *time.Time            `json:"last_used_at"`
	IsActive     bool                  `json:"is_active"`
	IsPinned     bool                  `json:"is_pinned"`
	CreatedAt    time.Time             `json:"created_at"`
}

type ListLabelsQuery struct {
	Sort            constant.LabelSortOrder
	IncludeInactive bool
}
