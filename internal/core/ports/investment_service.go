package ports

import (
	"context"

	"github.com/qvema/qvema-api/internal/core/domain"
)

type CreateInvestmentInput struct {
	ProjectID string
	Amount    float64
	Terms     string
}

type UpdateInvestmentInput = InvestmentChanges

type InvestmentService interface {
	Create(ctx context.Context, actor domain.Actor, input CreateInvestmentInput) (*domain.Investment, error)
	FindAll(ctx context.Context) ([]domain.Investment, error)
	FindByID(ctx context.Context, id string) (*domain.Investment, error)
	FindByInvestor(ctx context.Context, investorID string) ([]domain.Investment, error)
	FindByProject(ctx context.Context, actor domain.Actor, projectID string) ([]domain.Investment, error)
	Update(ctx context.Context, actor domain.Actor, id string, input UpdateInvestmentInput) (*domain.Investment, error)
	Remove(ctx context.Context, actor domain.Actor, id string) error
}
