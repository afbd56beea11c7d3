package dto

import (
	"time"

	"github.com/google/uuid"

	"maum-baedal-be/internal/constant"
)

// HistoryFilter is parsed from query parameters; zero values mean "no filter".
type HistoryFilter struct {
	Status   constant.ConversationStatus
	Category constant.QuestionCategory
	From     *time.Time
	To       *time.Time
	Archived *bool
	Favorite *bool
	Query    string // substring match on question content
	Page     int
	PageSize int
}

type HistoryItemResponse struct {
	Id                  uuid.UUID                   `json:"id"`
	ConversationId      uuid.UUID                   `json:"conversation_id"`
	QuestionContent     string                      `json:"question_content"`
	QuestionCategory    constant.QuestionCategory   `json:"question_category"`
	ParticipantCount    int                         `json:"participant_count"`
	AnswerCount         int                         `json:"answer_count"`
	Status              constant.ConversationStatus `json:"status"`
	IsArchived          bool                        `json:"is_archived"`
	IsFavorite          bool                        `json:"is_favorite"`
	LatestAnswerPreview string                      `json:"latest_answer_preview"`
	LastAnsweredAt      *time.Time                  `json:"last_answered_at"`
	CreatedAt           time.Time                   `json:"created_at"`
}

type HistoryListResponse struct {
	Items    []HistoryItemResponse `json:"items"`
	Total    int64                 `json:"total"`
	Page     int                   `json:"page"`
	PageSize int                   `json:"page_size"`
}

type MonthlyCount struct {
	Month string `json:"month"` // YYYY-MM
	Count int    `json:"count"`
}

type ParticipantActivity struct {
	DisplayName string `json:"display_name"`
	AnswerCount int    `json:"answer_count"`
}

type HistoryStatsResponse struct {
	Total          int64                               `json:"total"`
	ByStatus       map[constant.ConversationStatus]int `json:"by_status"`
	ByCategory     map[constant.QuestionCategory]int   `json:"by_category"`
	ByMonth        []MonthlyCount                      `json:"by_month"`
	MostActive     []ParticipantActivity               `json:"most_active"`
	FavoriteCount  int                                 `json:"favorite_count"`
	ArchivedCount  int                                 `json:"archived_count"`
	CompletionRate float64                             `json:"completion_rate"`
}
