package contract

import (
	"context"

	"maum-baedal-be/internal/entity"
	"maum-baedal-be/internal/repository/specification"
)

type LabelRepository interface {
	Create(ctx context.Context, label *entity.ManagedLabel) error
	Update(ctx context.Context, label *entity.ManagedLabel) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ManagedLabel, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ManagedLabel, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
