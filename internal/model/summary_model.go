package model

import (
	"time"

	"github.com/google/uuid"
)

type ConversationSummary struct {
	Id                  uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ConversationId      uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_summaries_conversation_owner,priority:1;not null"`
	OwnerId             uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_summaries_conversation_owner,priority:2;not null;index"`
	QuestionContent     string    `gorm:"type:text;not null"`
	QuestionCategory    string    `gorm:"type:varchar(50);not null;index"`
	ParticipantCount    int       `gorm:"default:0"`
	AnswerCount         int       `gorm:"default:0"`
	Status              string    `gorm:"type:varchar(20);not null;index"`
	IsArchived          bool      `gorm:"default:false"`
	IsFavorite          bool      `gorm:"default:false"`
	LatestAnswerPreview string    `gorm:"type:varchar(200)"`
	LastAnsweredAt      *time.Time
	CreatedAt           time.Time `gorm:"autoCreateTime"`
	UpdatedAt           time.Time `gorm:"autoUpdateTime"`
}

func (ConversationSummary) TableName() string {
	return "conversation_summaries"
}
