package ports

import (
	"context"

	"github.com/qvema/qvema-api/internal/core/domain"
)

type CreateInterestInput struct {
	Name     string
	Category string
}

type UpdateInterestInput = InterestChanges

type InterestService interface {
	Create(ctx context.Context, input CreateInterestInput) (*domain.Interest, error)
	FindAll(ctx context.Context) ([]domain.Interest, error)
	FindByID(ctx context.Context, id uint) (*domain.Interest, error)
	Update(ctx context.Context, actor domain.Actor, id uint, input UpdateInterestInput) (*domain.Interest, error)
	Remove(ctx context.Context, actor domain.Actor, id uint) error
	AttachToUser(ctx context.Context, userID string, interestIDs []uint) (*domain.User, error)
	UserInterests(ctx context.Context, userID string) ([]domain.Interest, error)
}
