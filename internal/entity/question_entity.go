package entity

import (
	"time"

	"maum-baedal-be/internal/constant"

	"github.com/google/uuid"
)

// Question is an immutable daily-question candidate. UsedAt marks the most
// recent date it was served as the question of the day.
type Question struct {
	Id        uuid.UUID
	Content   string
	Category  constant.QuestionCategory
	UsedAt    *time.Time
	IsActive  bool
	CreatedAt time.Time
}
