package ports

import (
	"context"

	"github.com/qvema/qvema-api/internal/core/domain"
)

// ProjectChanges carries the fields of a partial update. Nil means unchanged.
type ProjectChanges struct {
	Title       *string
	Description *string
	Category    *string
	Budget      *float64
}

type ProjectRepository interface {
	Create(ctx context.Context, p *domain.Project) error
	FindByID(ctx context.Context, id string) (*domain.Project, error)
	FindAll(ctx context.Context) ([]domain.Project, error)
	FindByOwner(ctx context.Context, ownerID string) ([]domain.Project, error)
	Update(ctx context.Context, id string, changes ProjectChanges) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}
