package specification

import (
	"time"

	"maum-baedal-be/internal/constant"

	"gorm.io/gorm"
)

// ByStatus filters summaries by conversation status.
type ByStatus struct {
	Status constant.ConversationStatus
}

func (s ByStatus) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", string(s.Status))
}

// ByCategory filters summaries by question category.
type ByCategory struct {
	Category constant.QuestionCategory
}

func (s ByCategory) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("question_category = ?", string(s.Category))
}

// CreatedBetween filters summaries by conversation creation date range.
// Either bound may be zero to leave that side open.
type CreatedBetween struct {
	From time.Time
	To   time.Time
}

func (s CreatedBetween) Apply(db *gorm.DB) *gorm.DB {
	if !s.From.IsZero() {
		db = db.Where("created_at >= ?", s.From)
	}
	if !s.To.IsZero() {
		db = db.Where("created_at <= ?", s.To)
	}
	return db
}

// ArchivedIs filters on the archive flag.
type ArchivedIs struct {
	Archived bool
}

func (s ArchivedIs) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("is_archived = ?", s.Archived)
}

// FavoriteIs filters on the favorite flag.
type FavoriteIs struct {
	Favorite bool
}

func (s FavoriteIs) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("is_favorite = ?", s.Favorite)
}

// QuestionContains does a case-insensitive full-text match over the
// denormalized question content.
type QuestionContains struct {
	Query string
}

func (s QuestionContains) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("question_content ILIKE ?", "%"+s.Query+"%")
}
