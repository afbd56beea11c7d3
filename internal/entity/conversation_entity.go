package entity

import (
	"time"

	"maum-baedal-be/internal/constant"

	"github.com/google/uuid"
)

// Conversation aggregates a question with the answers of its participants.
// Visibility of answers is a per-viewer computation (see service.EvaluateGate);
// the conversation itself never stores a canViewAll flag.
type Conversation struct {
	Id        uuid.UUID
	QuestionId uuid.UUID
	Status    constant.ConversationStatus
	CreatedAt time.Time
	UpdatedAt *time.Time
}

// Participant is a member of a conversation. UserId is nil for recipients
// who answered through a share link without an account.
type Participant struct {
	Id             uuid.UUID
	ConversationId uuid.UUID
	UserId         *uuid.UUID
	DisplayName    string
	HasAnswered    bool
	JoinedAt       time.Time
}

// Answer is immutable once accepted. Position is the dense acceptance order
// within the conversation, assigned under the per-conversation lock.
type Answer struct {
	Id             uuid.UUID
	ConversationId uuid.UUID
	ParticipantId  uuid.UUID
	AuthorName     string
	Content        string
	Position       int
	CreatedAt      time.Time
}
