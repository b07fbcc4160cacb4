package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/qvema/qvema-api/internal/core/domain"
	"github.com/qvema/qvema-api/internal/core/policy"
	"github.com/qvema/qvema-api/internal/core/ports"
	"github.com/qvema/qvema-api/internal/infrastructure/metrics"
)

type InterestService struct {
	repo  ports.InterestRepository
	users ports.UserRepository
	log   zerolog.Logger
}

func NewInterestService(repo ports.InterestRepository, users ports.UserRepository, log zerolog.Logger) *InterestService {
	return &InterestService{repo: repo, users: users, log: log}
}

func (s *InterestService) Create(ctx context.Context, input ports.CreateInterestInput) (*domain.Interest, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrInvalidInput)
	}

	in := &domain.Interest{Name: name, Category: input.Category}
	if err := s.repo.Create(ctx, in); err != nil {
		return nil, fmt.Errorf("create interest: %w", err)
	}

	metrics.EntitiesCreatedTotal.WithLabelValues("interest").Inc()
	s.log.Info().Uint("interest_id", in.ID).Str("name", in.Name).Msg("interest created")
	return in, nil
}

func (s *InterestService) FindAll(ctx context.Context) ([]domain.Interest, error) {
	list, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list interests: %w", err)
	}
	return list, nil
}

func (s *InterestService) FindByID(ctx context.Context, id uint) (*domain.Interest, error) {
	in, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find interest %d: %w", id, err)
	}
	return in, nil
}

func (s *InterestService) Update(ctx context.Context, actor domain.Actor, id uint, input ports.UpdateInterestInput) (*domain.Interest, error) {
	if _, err := s.FindByID(ctx, id); err != nil {
		return nil, err
	}
	if err := authorize(s.log, actor, policy.ActionUpdate, policy.Resource{Kind: policy.KindInterest}); err != nil {
		return nil, err
	}
	if input.Name != nil && strings.TrimSpace(*input.Name) == "" {
		return nil, fmt.Errorf("%w: name must not be empty", domain.ErrInvalidInput)
	}

	if err := s.repo.Update(ctx, id, input); err != nil {
		return nil, fmt.Errorf("update interest %d: %w", id, err)
	}
	return s.FindByID(ctx, id)
}

func (s *InterestService) Remove(ctx context.Context, actor domain.Actor, id uint) error {
	if _, err := s.FindByID(ctx, id); err != nil {
		return err
	}
	if err := authorize(s.log, actor, policy.ActionDelete, policy.Resource{Kind: policy.KindInterest}); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete interest %d: %w", id, err)
	}
	return nil
}

// AttachToUser appends the interests to the user's current set and returns
// the user with every attached interest. Ids already attached are attached
// again; nothing deduplicates them.
func (s *InterestService) AttachToUser(ctx context.Context, userID string, interestIDs []uint) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("find user %s: %w", userID, err)
	}

	for _, id := range interestIDs {
		if _, err := s.FindByID(ctx, id); err != nil {
			return nil, err
		}
	}

	if len(interestIDs) > 0 {
		if err := s.repo.AppendToUser(ctx, userID, interestIDs); err != nil {
			return nil, fmt.Errorf("attach interests to %s: %w", userID, err)
		}
		s.log.Info().Str("user_id", userID).Int("count", len(interestIDs)).Msg("interests attached")
	}

	interests, err := s.repo.UserInterests(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list interests of %s: %w", userID, err)
	}
	user.Interests = interests
	return user, nil
}

func (s *InterestService) UserInterests(ctx context.Context, userID string) ([]domain.Interest, error) {
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		return nil, fmt.Errorf("find user %s: %w", userID, err)
	}
	interests, err := s.repo.UserInterests(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list interests of %s: %w", userID, err)
	}
	return interests, nil
}
