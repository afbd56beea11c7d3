package model

import (
	"time"

	"github.com/google/uuid"
)

type Conversation struct {
	Id         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	QuestionId uuid.UUID `gorm:"type:uuid;not null;index"`
	Status     string    `gorm:"type:varchar(20);not null;default:'active'"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime"`
}

func (Conversation) TableName() string {
	return "conversations"
}

type Participant struct {
	Id             uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ConversationId uuid.UUID  `gorm:"type:uuid;not null;index:idx_participants_conversation"`
	UserId         *uuid.UUID `gorm:"type:uuid;index"`
	DisplayName    string     `gorm:"type:varchar(100);not null"`
	HasAnswered    bool       `gorm:"default:false"`
	JoinedAt       time.Time  `gorm:"not null"`
}

func (Participant) TableName() string {
	return "participants"
}

type Answer struct {
	Id             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ConversationId uuid.UUID `gorm:"type:uuid;not null;index:idx_answers_conversation_position,priority:1"`
	ParticipantId  uuid.UUID `gorm:"type:uuid;not null"`
	AuthorName     string    `gorm:"type:varchar(100);not null"`
	Content        string    `gorm:"type:text;not null"`
	Position       int       `gorm:"not null;index:idx_answers_conversation_position,priority:2"`
	CreatedAt      time.Time `gorm:"autoCreateTime"`
}

func (Answer) TableName() string {
	return "answers"
}
