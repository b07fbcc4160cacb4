package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/qvema/qvema-api/internal/core/domain"
	"github.com/qvema/qvema-api/internal/core/policy"
	"github.com/qvema/qvema-api/internal/core/ports"
	"github.com/qvema/qvema-api/internal/infrastructure/metrics"
)

// InvestmentService owns investments. It reads projects but never writes them.
type InvestmentService struct {
	repo     ports.InvestmentRepository
	projects ports.ProjectRepository
	log      zerolog.Logger
}

func NewInvestmentService(repo ports.InvestmentRepository, projects ports.ProjectRepository, log zerolog.Logger) *InvestmentService {
	return &InvestmentService{repo: repo, projects: projects, log: log}
}

// Create records an investment by the actor in an existing project.
func (s *InvestmentService) Create(ctx context.Context, actor domain.Actor, input ports.CreateInvestmentInput) (*domain.Investment, error) {
	if input.Amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be greater than 0", domain.ErrInvalidInput)
	}
	if _, err := s.projects.FindByID(ctx, input.ProjectID); err != nil {
		return nil, fmt.Errorf("create investment: project %s: %w", input.ProjectID, err)
	}

	inv := &domain.Investment{
		InvestorID: actor.ID,
		ProjectID:  input.ProjectID,
		Amount:     input.Amount,
		Terms:      input.Terms,
	}
	if err := s.repo.Create(ctx, inv); err != nil {
		s.log.Error().Err(err).Str("project_id", input.ProjectID).Msg("failed to create investment")
		return nil, fmt.Errorf("create investment: %w", err)
	}

	metrics.EntitiesCreatedTotal.WithLabelValues("investment").Inc()
	metrics.InvestedAmountTotal.Add(inv.Amount)
	s.log.Info().
		Str("investment_id", inv.ID).
		Str("project_id", inv.ProjectID).
		Str("investor_id", actor.ID).
		Msg("investment created")
	return inv, nil
}

func (s *InvestmentService) FindAll(ctx context.Context) ([]domain.Investment, error) {
	invs, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list investments: %w", err)
	}
	return invs, nil
}

func (s *InvestmentService) FindByID(ctx context.Context, id string) (*domain.Investment, error) {
	inv, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find investment %s: %w", id, err)
	}
	return inv, nil
}

func (s *InvestmentService) FindByInvestor(ctx context.Context, investorID string) ([]domain.Investment, error) {
	invs, err := s.repo.FindByInvestor(ctx, investorID)
	if err != nil {
		return nil, fmt.Errorf("list investments of %s: %w", investorID, err)
	}
	return invs, nil
}

// FindByProject lists a project's investments for admins, the project owner
// and the project's investors.
func (s *InvestmentService) FindByProject(ctx context.Context, actor domain.Actor, projectID string) ([]domain.Investment, error) {
	project, err := s.projects.FindByID(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("find project %s: %w", projectID, err)
	}

	invs, err := s.repo.FindByProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("list investments of project %s: %w", projectID, err)
	}

	participants := make([]string, 0, len(invs))
	for _, inv := range invs {
		participants = append(participants, inv.InvestorID)
	}
	res := policy.Resource{Kind: policy.KindProject, OwnerID: project.OwnerID, Participants: participants}
	if err := authorize(s.log, actor, policy.ActionListByProject, res); err != nil {
		return nil, err
	}
	return invs, nil
}

// Update changes amount or terms; only the investor may do it.
func (s *InvestmentService) Update(ctx context.Context, actor domain.Actor, id string, input ports.UpdateInvestmentInput) (*domain.Investment, error) {
	inv, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := authorize(s.log, actor, policy.ActionUpdate, investmentResource(inv)); err != nil {
		return nil, err
	}
	if input.Amount != nil && *input.Amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be greater than 0", domain.ErrInvalidInput)
	}

	if err := s.repo.Update(ctx, id, input); err != nil {
		return nil, fmt.Errorf("update investment %s: %w", id, err)
	}
	return s.FindByID(ctx, id)
}

// Remove cancels an investment. Only the investor may do it, whatever the
// role: there is deliberately no admin override here.
func (s *InvestmentService) Remove(ctx context.Context, actor domain.Actor, id string) error {
	inv, err := s.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := authorize(s.log, actor, policy.ActionDelete, investmentResource(inv)); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete investment %s: %w", id, err)
	}
	s.log.Info().Str("investment_id", id).Str("actor_id", actor.ID).Msg("investment deleted")
	return nil
}

func investmentResource(inv *domain.Investment) policy.Resource {
	return policy.Resource{Kind: policy.KindInvestment, OwnerID: inv.InvestorID}
}
