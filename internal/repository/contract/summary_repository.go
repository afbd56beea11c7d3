package contract

import (
	"context"

	"maum-baedal-be/internal/entity"
	"maum-baedal-be/internal/repository/specification"

	"github.com/google/uuid"
)

type SummaryRepository interface {
	// Upsert replaces the projection row keyed by (conversation, owner),
	// preserving the archive/favorite flags of an existing row.
	Upsert(ctx context.Context, summary *entity.ConversationSummary) error
	SetArchived(ctx context.Context, id uuid.UUID, ownerId uuid.UUID, archived bool) error
	SetFavorite(ctx context.Context, id uuid.UUID, ownerId uuid.UUID, favorite bool) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ConversationSummary, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ConversationSummary, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
