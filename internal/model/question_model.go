package model

import (
	"time"

	"github.com/google/uuid"
)

type Question struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Content   string    `gorm:"type:text;not null"`
	Category  string    `gorm:"type:varchar(50);not null;index"`
	UsedAt    *time.Time
	IsActive  bool      `gorm:"default:true"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (Question) TableName() string {
	return "questions"
}
