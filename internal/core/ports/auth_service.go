package ports

import (
	"context"

	"github.com/qvema/qvema-api/internal/core/domain"
)

// SessionClaims is what a verified bearer token says about its holder.
type SessionClaims struct {
	Email string
	Actor domain.Actor
}

type AuthService interface {
	ValidateCredentials(ctx context.Context, email, password string) (*domain.User, error)
	IssueSession(user *domain.User) (string, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	ParseToken(token string) (*SessionClaims, error)
}
