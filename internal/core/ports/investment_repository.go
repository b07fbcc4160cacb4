package ports

import (
	"context"

	"github.com/qvema/qvema-api/internal/core/domain"
)

// InvestmentChanges carries the fields of a partial update. Nil means unchanged.
type InvestmentChanges struct {
	Amount *float64
	Terms  *string
}

type InvestmentRepository interface {
	Create(ctx context.Context, inv *domain.Investment) error
	FindByID(ctx context.Context, id string) (*domain.Investment, error)
	FindAll(ctx context.Context) ([]domain.Investment, error)
	// FindByInvestor preloads the project of each investment.
	FindByInvestor(ctx context.Context, investorID string) ([]domain.Investment, error)
	// FindByProject preloads both the investor and the project.
	FindByProject(ctx context.Context, projectID string) ([]domain.Investment, error)
	Update(ctx context.Context, id string, changes InvestmentChanges) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
	TotalAmount(ctx context.Context) (float64, error)
}
