package entity

import (
	"time"

	"github.com/google/uuid"
)

// ShareToken is a single-use, time-limited credential binding a question,
// its sender and the recipient label. It transitions valid -> used exactly
// once (set only by answer intake), or is treated as expired once the 24h
// horizon passes. Expiry is derived at resolution time, never stored as a flag.
type ShareToken struct {
	Id               uuid.UUID
	Token            string
	QuestionId       uuid.UUID
	SenderId         uuid.UUID
	RecipientLabelId uuid.UUID
	ConversationId   *uuid.UUID // set when the token is redeemed
	IssuedAt         time.Time
	ExpiresAt        time.Time
	UsedAt           *time.Time
}

func (t *ShareToken) IsUsed() bool {
	return t.UsedAt != nil
}

func (t *ShareToken) IsExpired(now time.Time) bool {
	return now.After(t.ExpiresAt)
}
