package ports

import (
	"context"

	"github.com/qvema/qvema-api/internal/core/domain"
)

// UserRepository persists accounts. Every read returns the sanitized view.
type UserRepository interface {
	// Create stores a new account with the given password hash. It returns
	// domain.ErrUserExists when the email is already taken.
	Create(ctx context.Context, user *domain.User, passwordHash string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindAll(ctx context.Context) ([]domain.User, error)
	Count(ctx context.Context) (int64, error)
}

// CredentialStore is the only accessor that returns password hashes. It is
// handed to the auth service and nothing else.
type CredentialStore interface {
	FindCredentialByEmail(ctx context.Context, email string) (*domain.Credential, error)
}
