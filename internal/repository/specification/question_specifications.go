package specification

import (
	"time"

	"gorm.io/gorm"
)

// ActiveQuestions keeps retired questions out of the rotation pool.
type ActiveQuestions struct{}

func (s ActiveQuestions) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("is_active = ?", true)
}

// ServedOn finds the question already assigned to a service date, so every
// instance resolves the same question of the day.
type ServedOn struct {
	Date time.Time
}

func (s ServedOn) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("used_at = ?", s.Date)
}

// LeastRecentlyServed orders the rotation pool: never-served questions first,
// then the ones whose last serving is oldest.
type LeastRecentlyServed struct {
	Limit int
}

func (s LeastRecentlyServed) Apply(db *gorm.DB) *gorm.DB {
	db = db.Order("used_at ASC NULLS FIRST").Order("created_at ASC")
	if s.Limit > 0 {
		db = db.Limit(s.Limit)
	}
	return db
}
