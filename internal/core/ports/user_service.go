package ports

import (
	"context"

	"github.com/qvema/qvema-api/internal/core/domain"
)

// CreateUserInput is the signup payload after transport validation.
type CreateUserInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
}

type UserService interface {
	Create(ctx context.Context, input CreateUserInput) (*domain.User, error)
	CreateAdmin(ctx context.Context, input CreateUserInput) (*domain.User, error)
	FindAll(ctx context.Context) ([]domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
}
