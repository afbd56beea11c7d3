package dto

import (
	"time"

	"github.com/google/uuid"

	"maum-baedal-be/internal/constant"
)

type SubmitAnswerRequest struct {
	Content    string `json:"content" validate:"required"`
	AuthorName string `json:"author_name"` // required on the token path, taken from the account otherwise
}

type AnswerItem struct {
	Id         uuid.UUID `json:"id"`
	AuthorName string    `json:"author_name"`
	Content    string    `json:"content"`
	Position   int       `json:"position"`
	CreatedAt  time.Time `json:"created_at"`
	IsMine     bool      `json:"is_mine"`
}

// GateResponse is the per-viewer visibility verdict. Answers holds only what
// this viewer may see: their own answer always, everyone's once the gate opens.
type GateResponse struct {
	Status               constant.GateStatus `json:"status"`
	CanViewOthersAnswers bool                `json:"can_view_others_answers"`
	AnsweredCount        int                 `json:"answered_count"`
	ParticipantCount     int                 `json:"participant_count"`
	Answers              []AnswerItem        `json:"answers"`
}

type SubmitAnswerResponse struct {
	ConversationId uuid.UUID    `json:"conversation_id"`
	AnswerId       uuid.UUID    `json:"answer_id"`
	Gate           GateResponse `json:"gate"`
}

type ParticipantItem struct {
	Id          uuid.UUID `json:"id"`
	DisplayName string    `json:"display_name"`
	HasAnswered bool      `json:"has_answered"`
	JoinedAt    time.Time `json:"joined_at"`
}

type ShowConversationResponse struct {
	Id           uuid.UUID                   `json:"id"`
	Question     QuestionResponse            `json:"question"`
	Status       constant.ConversationStatus `json:"status"`
	Participants []ParticipantItem           `json:"participants"`
	Gate         GateResponse                `json:"gate"`
	CreatedAt    time.Time                   `json:"created_at"`
}
