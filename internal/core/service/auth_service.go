package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/qvema/qvema-api/internal/core/domain"
	"github.com/qvema/qvema-api/internal/core/ports"
)

// dummyHash is compared against when the email is unknown so that a missing
// account and a wrong password take the same time.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// AuthService validates credentials and issues stateless session tokens.
type AuthService struct {
	creds         ports.CredentialStore
	jwtSecret     string
	tokenTTL      time.Duration
	foldEmailCase bool
}

func NewAuthService(creds ports.CredentialStore, jwtSecret string, tokenTTL time.Duration, foldEmailCase bool) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{
		creds:         creds,
		jwtSecret:     jwtSecret,
		tokenTTL:      tokenTTL,
		foldEmailCase: foldEmailCase,
	}
}

// ValidateCredentials returns the sanitized user when the password matches.
func (s *AuthService) ValidateCredentials(ctx context.Context, email, password string) (*domain.User, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	cred, err := s.creds.FindCredentialByEmail(ctx, domain.CanonicalEmail(email, s.foldEmailCase))
	if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return nil, fmt.Errorf("validate credentials: %w", err)
	}

	hash := dummyHash
	if cred != nil {
		hash = cred.PasswordHash
	}
	compareErr := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if cred == nil || compareErr != nil {
		return nil, domain.ErrInvalidCredentials
	}

	user := cred.User
	return &user, nil
}

// IssueSession signs a token carrying email, sub (user id) and role.
func (s *AuthService) IssueSession(user *domain.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"email": user.Email,
		"sub":   user.ID,
		"role":  string(user.Role),
		"iat":   now.Unix(),
		"exp":   now.Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	user, err := s.ValidateCredentials(ctx, email, password)
	if err != nil {
		return "", nil, err
	}

	token, err := s.IssueSession(user)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// ParseToken verifies the signature and expiry and extracts the actor.
func (s *AuthService) ParseToken(token string) (*ports.SessionClaims, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil || !tkn.Valid {
		return nil, domain.ErrInvalidToken
	}

	sub, _ := claims["sub"].(string)
	roleClaim, _ := claims["role"].(string)
	email, _ := claims["email"].(string)
	role, ok := domain.ParseRole(roleClaim)
	if sub == "" || !ok {
		return nil, domain.ErrInvalidToken
	}

	return &ports.SessionClaims{
		Email: email,
		Actor: domain.Actor{ID: sub, Role: role},
	}, nil
}
