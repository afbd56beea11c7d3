package dto

import (
	"time"

	"github.com/google/uuid"

	"maum-baedal-be/internal/constant"
)

type IssueTokenRequest struct {
	QuestionId       uuid.UUID `json:"question_id" validate:"required"`
	RecipientLabelId uuid.UUID `json:"recipient_label_id" validate:"required"`
	RecipientEmail   string    `json:"recipient_email" validate:"omitempty,email"` // optional email delivery
}

type IssueTokenResponse struct {
	Token     string    `json:"token"`
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expires_at"`
}

// ResolveTokenResponse is a tagged result, never an error: unknown tokens
// resolve to status "invalid" with no payload, used/expired tokens still
// carry the original question so the recipient sees what was asked.
type ResolveTokenResponse struct {
	Status     constant.TokenStatus `json:"status"`
	Question   *QuestionResponse    `json:"question,omitempty"`
	SenderName string               `json:"sender_name,omitempty"`
	ExpiresAt  *time.Time           `json:"expires_at,omitempty"`
}
