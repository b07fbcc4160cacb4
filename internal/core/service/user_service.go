package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/qvema/qvema-api/internal/core/domain"
	"github.com/qvema/qvema-api/internal/core/ports"
	"github.com/qvema/qvema-api/internal/infrastructure/metrics"
)

// PasswordCost is the bcrypt work factor applied to every stored password.
const PasswordCost = 10

// UserService is the user directory.
type UserService struct {
	repo          ports.UserRepository
	foldEmailCase bool
	log           zerolog.Logger
}

func NewUserService(repo ports.UserRepository, foldEmailCase bool, log zerolog.Logger) *UserService {
	return &UserService{repo: repo, foldEmailCase: foldEmailCase, log: log}
}

// Create signs up a regular user.
func (s *UserService) Create(ctx context.Context, input ports.CreateUserInput) (*domain.User, error) {
	return s.create(ctx, input, domain.RoleRegular)
}

// CreateAdmin creates an admin account. An existing admin with the same
// email is returned unchanged; an existing regular account is an error, it
// is never promoted.
func (s *UserService) CreateAdmin(ctx context.Context, input ports.CreateUserInput) (*domain.User, error) {
	user, err := s.create(ctx, input, domain.RoleAdmin)
	if !errors.Is(err, domain.ErrUserExists) {
		return user, err
	}

	existing, err := s.FindByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if existing.Role != domain.RoleAdmin {
		return nil, fmt.Errorf("%w: %s belongs to a non-admin account", domain.ErrUserExists, existing.Email)
	}
	return existing, nil
}

func (s *UserService) create(ctx context.Context, input ports.CreateUserInput, role domain.Role) (*domain.User, error) {
	email := domain.CanonicalEmail(input.Email, s.foldEmailCase)
	if email == "" || input.Password == "" {
		return nil, fmt.Errorf("%w: email and password are required", domain.ErrInvalidInput)
	}

	_, err := s.repo.FindByEmail(ctx, email)
	switch {
	case err == nil:
		return nil, domain.ErrUserExists
	case !errors.Is(err, domain.ErrUserNotFound):
		return nil, fmt.Errorf("create user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), PasswordCost)
	if err != nil {
		return nil, fmt.Errorf("create user: hash password: %w", err)
	}

	created, err := s.repo.Create(ctx, &domain.User{
		Email:     email,
		FirstName: strings.TrimSpace(input.FirstName),
		LastName:  strings.TrimSpace(input.LastName),
		Role:      role,
	}, string(hash))
	if err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			return nil, err
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	metrics.EntitiesCreatedTotal.WithLabelValues("user").Inc()
	s.log.Info().Str("user_id", created.ID).Str("role", string(role)).Msg("user created")
	return created, nil
}

func (s *UserService) FindAll(ctx context.Context) ([]domain.User, error) {
	users, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

func (s *UserService) FindByID(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find user %s: %w", id, err)
	}
	return user, nil
}

func (s *UserService) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, err := s.repo.FindByEmail(ctx, domain.CanonicalEmail(email, s.foldEmailCase))
	if err != nil {
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return user, nil
}
