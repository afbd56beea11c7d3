package entity

import (
	"time"

	"maum-baedal-be/internal/constant"

	"github.com/google/uuid"
)

// ManagedLabel is a saved alias for a family member, used as a send target.
// Labels are soft-deleted (IsActive=false) so history stays queryable.
type ManagedLabel struct {
	Id           uuid.UUID
	OwnerId      uuid.UUID
	Name         string
	Nickname     *string
	Relationship constant.Relationship
	Color        *string
	Emoji        *string
	UsageCount   int
	LastUsedAt   *time.Time
	IsActive     bool
	IsPinned     bool
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}
