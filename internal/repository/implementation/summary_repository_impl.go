package implementation

import (
	"context"
	"errors"

	"maum-baedal-be/internal/entity"
	"maum-baedal-be/internal/mapper"
	"maum-baedal-be/internal/model"
	"maum-baedal-be/internal/repository/contract"
	"maum-baedal-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SummaryRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.SummaryMapper
}

func NewSummaryRepository(db *gorm.DB) contract.SummaryRepository {
	return &SummaryRepositoryImpl{
		db:     db,
		mapper: mapper.NewSummaryMapper(),
	}
}

func (r *SummaryRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *SummaryRepositoryImpl) Upsert(ctx context.Context, summary *entity.ConversationSummary) error {
	var existing model.ConversationSummary
	err := r.db.WithContext(ctx).
		Where("conversation_id = ? AND owner_id = ?", summary.ConversationId, summary.OwnerId).
		First(&existing).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		m := r.mapper.ToModel(summary)
		if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
			return err
		}
		*summary = *r.mapper.ToEntity(m)
		return nil
	}

	// Refresh the derived columns; archive/favorite flags belong to the owner.
	m := r.mapper.ToModel(summary)
	m.Id = existing.Id
	m.IsArchived = existing.IsArchived
	m.IsFavorite = existing.IsFavorite
	m.CreatedAt = existing.CreatedAt
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*summary = *r.mapper.ToEntity(m)
	return nil
}

func (r *SummaryRepositoryImpl) SetArchived(ctx context.Context, id uuid.UUID, ownerId uuid.UUID, archived bool) error {
	res := r.db.WithContext(ctx).Model(&model.ConversationSummary{}).
		Where("id = ? AND owner_id = ?", id, ownerId).
		Update("is_archived", archived)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *SummaryRepositoryImpl) SetFavorite(ctx context.Context, id uuid.UUID, ownerId uuid.UUID, favorite bool) error {
	res := r.db.WithContext(ctx).Model(&model.ConversationSummary{}).
		Where("id = ? AND owner_id = ?", id, ownerId).
		Update("is_favorite", favorite)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *SummaryRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ConversationSummary, error) {
	var m model.ConversationSummary
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *SummaryRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ConversationSummary, error) {
	var models []*model.ConversationSummary
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *SummaryRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.ConversationSummary{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
