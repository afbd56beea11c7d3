package implementation

import (
	"context"
	"errors"

	"maum-baedal-be/internal/entity"
	"maum-baedal-be/internal/mapper"
	"maum-baedal-be/internal/model"
	"maum-baedal-be/internal/repository/contract"
	"maum-baedal-be/internal/repository/specification"

	"gorm.io/gorm"
)

type ShareTokenRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ShareTokenMapper
}

func NewShareTokenRepository(db *gorm.DB) contract.ShareTokenRepository {
	return &ShareTokenRepositoryImpl{
		db:     db,
		mapper: mapper.NewShareTokenMapper(),
	}
}

func (r *ShareTokenRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ShareTokenRepositoryImpl) Create(ctx context.Context, token *entity.ShareToken) error {
	m := r.mapper.ToModel(token)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*token = *r.mapper.ToEntity(m)
	return nil
}

func (r *ShareTokenRepositoryImpl) Update(ctx context.Context, token *entity.ShareToken) error {
	m := r.mapper.ToModel(token)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*token = *r.mapper.ToEntity(m)
	return nil
}

func (r *ShareTokenRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ShareToken, error) {
	var m model.ShareToken
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *ShareTokenRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ShareToken, error) {
	var models []*model.ShareToken
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	result := make([]*entity.ShareToken, len(models))
	for i, m := range models {
		result[i] = r.mapper.ToEntity(m)
	}
	return result, nil
}
