package ports

import (
	"context"

	"github.com/qvema/qvema-api/internal/core/domain"
)

type CreateProjectInput struct {
	Title       string
	Description string
	Category    string
	Budget      float64
}

type UpdateProjectInput = ProjectChanges

// ProjectService is the project store. Mutations take the acting identity
// explicitly and run it through the authorization policy.
type ProjectService interface {
	Create(ctx context.Context, actor domain.Actor, input CreateProjectInput) (*domain.Project, error)
	FindAll(ctx context.Context) ([]domain.Project, error)
	FindByID(ctx context.Context, id string) (*domain.Project, error)
	FindByOwner(ctx context.Context, ownerID string) ([]domain.Project, error)
	Update(ctx context.Context, actor domain.Actor, id string, input UpdateProjectInput) (*domain.Project, error)
	Remove(ctx context.Context, actor domain.Actor, id string) error
}
