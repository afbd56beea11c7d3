package model

import (
	"time"

	"github.com/google/uuid"
)

type ManagedLabel struct {
	Id           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OwnerId      uuid.UUID `gorm:"type:uuid;not null;index"`
	Name         string    `gorm:"type:varchar(100);not null"`
	Nickname     *string   `gorm:"type:varchar(100)"`
	Relationship string    `gorm:"type:varchar(20);not null"`
	Color        *string   `gorm:"type:varchar(20)"`
	Emoji        *string   `gorm:"type:varchar(20)"`
	UsageCount   int       `gorm:"default:0"`
	LastUsedAt   *time.Time
	IsActive     bool      `gorm:"default:true;index"`
	IsPinned     bool      `gorm:"default:false"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`
}

func (ManagedLabel) TableName() string {
	return "managed_labels"
}
