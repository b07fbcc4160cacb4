package ports

import (
	"context"

	"github.com/qvema/qvema-api/internal/core/domain"
)

// InterestChanges carries the fields of a partial update. Nil means unchanged.
type InterestChanges struct {
	Name     *string
	Category *string
}

type InterestRepository interface {
	Create(ctx context.Context, in *domain.Interest) error
	FindByID(ctx context.Context, id uint) (*domain.Interest, error)
	FindAll(ctx context.Context) ([]domain.Interest, error)
	Update(ctx context.Context, id uint, changes InterestChanges) error
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)

	// UserInterests returns the interests attached to a user, in attachment
	// order, duplicates included.
	UserInterests(ctx context.Context, userID string) ([]domain.Interest, error)
	// AppendToUser attaches the interests to the user in a single write. It
	// does not deduplicate.
	AppendToUser(ctx context.Context, userID string, interestIDs []uint) error
}
