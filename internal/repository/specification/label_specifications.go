package specification

import (
	"maum-baedal-be/internal/constant"

	"gorm.io/gorm"
)

// ActiveOnly excludes soft-deleted labels. The default for listings;
// history/audit queries omit it.
type ActiveOnly struct{}

func (s ActiveOnly) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("is_active = ?", true)
}

// LabelOrder applies the requested sort order with pinned labels first
// within any order.
type LabelOrder struct {
	Order constant.LabelSortOrder
}

func (s LabelOrder) Apply(db *gorm.DB) *gorm.DB {
	db = db.Order("is_pinned DESC")
	switch s.Order {
	case constant.LabelSortFrequent:
		return db.Order("usage_count DESC")
	case constant.LabelSortName:
		return db.Order("name ASC")
	case constant.LabelSortCreated:
		return db.Order("created_at ASC")
	default: // recent
		return db.Order("last_used_at DESC NULLS LAST")
	}
}
