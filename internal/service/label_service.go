package service

import (
	"context"
	"time"

	"maum-baedal-be/internal/constant"
	"maum-baedal-be/internal/dto"
	"maum-baedal-be/internal/entity"
	"maum-baedal-be/internal/pkg/apperror"
	"maum-baedal-be/internal/repository/specification"
	"maum-baedal-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type ILabelService interface {
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateLabelRequest) (*dto.CreateLabelResponse, error)
	Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateLabelRequest) (*dto.LabelResponse, error)
	// Archive soft-deletes: the label drops out of default listings but
	// stays behind existing history rows.
	Archive(ctx context.Context, userId, id uuid.UUID) error
	List(ctx context.Context, userId uuid.UUID, query dto.ListLabelsQuery) ([]*dto.LabelResponse, error)
	// Touch bumps the usage counters; the share flow calls it on every send.
	Touch(ctx context.Context, userId, id uuid.UUID) error
}

type labelService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewLabelService(uowFactory unitofwork.RepositoryFactory) ILabelService {
	return &labelService{
		uowFactory: uowFactory,
	}
}

func (s *labelService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateLabelRequest) (*dto.CreateLabelResponse, error) {
	if !constant.IsValidRelationship(req.Relationship) {
		return nil, apperror.Validation("unknown relationship type")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	label := entity.ManagedLabel{
		Id:           uuid.New(),
		OwnerId:      userId,
		Name:         req.Name,
		Nickname:     req.Nickname,
		Relationship: constant.Relationship(req.Relationship),
		Color:        req.Color,
		Emoji:        req.Emoji,
		IsActive:     true,
		CreatedAt:    time.Now(),
	}

	if err := uow.LabelRepository().Create(ctx, &label); err != nil {
		return nil, err
	}

	return &dto.CreateLabelResponse{Id: label.Id}, nil
}

func (s *labelService) Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateLabelRequest) (*dto.LabelResponse, error) {
	if !constant.IsValidRelationship(req.Relationship) {
		return nil, apperror.Validation("unknown relationship type")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	label, err := s.findOwned(ctx, uow, userId, req.Id)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	label.Name = req.Name
	label.Nickname = req.Nickname
	label.Relationship = constant.Relationship(req.Relationship)
	label.Color = req.Color
	label.Emoji = req.Emoji
	label.IsPinned = req.IsPinned
	label.UpdatedAt = &now

	if err := uow.LabelRepository().Update(ctx, label); err != nil {
		return nil, err
	}

	return toLabelResponse(label), nil
}

func (s *labelService) Archive(ctx context.Context, userId, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	label, err := s.findOwned(ctx, uow, userId, id)
	if err != nil {
		return err
	}

	now := time.Now()
	label.IsActive = false
	label.UpdatedAt = &now
	return uow.LabelRepository().Update(ctx, label)
}

func (s *labelService) List(ctx context.Context, userId uuid.UUID, query dto.ListLabelsQuery) ([]*dto.LabelResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{
		specification.OwnedBy{UserID: userId, Column: "owner_id"},
		specification.LabelOrder{Order: query.Sort},
	}
	if !query.IncludeInactive {
		specs = append(specs, specification.ActiveOnly{})
	}

	labels, err := uow.LabelRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.LabelResponse, 0, len(labels))
	for _, label := range labels {
		res = append(res, toLabelResponse(label))
	}
	return res, nil
}

func (s *labelService) Touch(ctx context.Context, userId, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	label, err := s.findOwned(ctx, uow, userId, id)
	if err != nil {
		return err
	}

	now := time.Now()
	label.UsageCount++
	label.LastUsedAt = &now
	return uow.LabelRepository().Update(ctx, label)
}

func (s *labelService) findOwned(ctx context.Context, uow unitofwork.UnitOfWork, userId, id uuid.UUID) (*entity.ManagedLabel, error) {
	label, err := uow.LabelRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.OwnedBy{UserID: userId, Column: "owner_id"},
	)
	if err != nil {
		return nil, err
	}
	if label == nil {
		return nil, apperror.NotFound("label not found")
	}
	return label, nil
}

func toLabelResponse(label *entity.ManagedLabel) *dto.LabelResponse {
	return &dto.LabelResponse{
		Id:           label.Id,
		Name:         label.Name,
		Nickname:     label.Nickname,
		Relationship: label.Relationship,
		Color:        label.Color,
		Emoji:        label.Emoji,
		UsageCount:   label.UsageCount,
		LastUsedAt:   label.LastUsedAt,
		IsActive:     label.IsActive,
		IsPinned:     label.IsPinned,
		CreatedAt:    label.CreatedAt,
	}
}
