package entity

import (
	"time"

	"maum-baedal-be/internal/constant"

	"github.com/google/uuid"
)

// ConversationSummary is the read-optimized projection of a conversation used
// by history listings. Rebuilt by the projection consumer from the source
// aggregate on every accepted answer; only the archive/favorite flags are
// mutated in place.
type ConversationSummary struct {
	Id                  uuid.UUID
	ConversationId      uuid.UUID
	OwnerId             uuid.UUID
	QuestionContent     string
	QuestionCategory    constant.QuestionCategory
	ParticipantCount    int
	AnswerCount         int
	Status              constant.ConversationStatus
	IsArchived          bool
	IsFavorite          bool
	LatestAnswerPreview string
	LastAnsweredAt      *time.Time
	CreatedAt           time.Time
	UpdatedAt           *time.Time
}
