package ports

import (
	"context"

	"github.com/qvema/qvema-api/internal/core/domain"
)

// AdminService is read-only; access is enforced before it is reached.
type AdminService interface {
	Dashboard(ctx context.Context) (*domain.Dashboard, error)
	Users(ctx context.Context) ([]domain.User, error)
	Projects(ctx context.Context) ([]domain.Project, error)
	Investments(ctx context.Context) ([]domain.Investment, error)
}
