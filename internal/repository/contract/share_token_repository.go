package contract

import (
	"context"

	"maum-baedal-be/internal/entity"
	"maum-baedal-be/internal/repository/specification"
)

type ShareTokenRepository interface {
	Create(ctx context.Context, token *entity.ShareToken) error
	// Update persists UsedAt/ConversationId. Consumption must happen inside a
	// transaction with the row locked (specification.LockForUpdate on FindOne).
	Update(ctx context.Context, token *entity.ShareToken) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ShareToken, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ShareToken, error)
}
