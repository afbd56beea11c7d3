package model

import (
	"time"

	"github.com/google/uuid"
)

type ShareToken struct {
	Id               uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Token            string     `gorm:"type:varchar(64);uniqueIndex;not null"`
	QuestionId       uuid.UUID  `gorm:"type:uuid;not null"`
	SenderId         uuid.UUID  `gorm:"type:uuid;not null;index"`
	RecipientLabelId uuid.UUID  `gorm:"type:uuid;not null"`
	ConversationId   *uuid.UUID `gorm:"type:uuid;index"`
	IssuedAt         time.Time  `gorm:"not null"`
	ExpiresAt        time.Time  `gorm:"not null"`
	UsedAt           *time.Time
}

func (ShareToken) TableName() string {
	return "share_tokens"
}
