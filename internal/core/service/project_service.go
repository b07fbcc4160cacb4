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

type ProjectService struct {
	repo ports.ProjectRepository
	log  zerolog.Logger
}

func NewProjectService(repo ports.ProjectRepository, log zerolog.Logger) *ProjectService {
	return &ProjectService{repo: repo, log: log}
}

// Create stores a project owned by the actor.
func (s *ProjectService) Create(ctx context.Context, actor domain.Actor, input ports.CreateProjectInput) (*domain.Project, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrInvalidInput)
	}
	if input.Budget < 0 {
		return nil, fmt.Errorf("%w: budget must not be negative", domain.ErrInvalidInput)
	}

	p := &domain.Project{
		OwnerID:     actor.ID,
		Title:       strings.TrimSpace(input.Title),
		Description: input.Description,
		Category:    input.Category,
		Budget:      input.Budget,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		s.log.Error().Err(err).Str("owner_id", actor.ID).Msg("failed to create project")
		return nil, fmt.Errorf("create project: %w", err)
	}

	metrics.EntitiesCreatedTotal.WithLabelValues("project").Inc()
	s.log.Info().Str("project_id", p.ID).Str("owner_id", actor.ID).Msg("project created")
	return p, nil
}

func (s *ProjectService) FindAll(ctx context.Context) ([]domain.Project, error) {
	projects, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	return projects, nil
}

func (s *ProjectService) FindByID(ctx context.Context, id string) (*domain.Project, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find project %s: %w", id, err)
	}
	return p, nil
}

func (s *ProjectService) FindByOwner(ctx context.Context, ownerID string) ([]domain.Project, error) {
	projects, err := s.repo.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list projects of %s: %w", ownerID, err)
	}
	return projects, nil
}

// Update applies the changes when the actor owns the project and returns
// the refreshed record.
func (s *ProjectService) Update(ctx context.Context, actor domain.Actor, id string, input ports.UpdateProjectInput) (*domain.Project, error) {
	p, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := authorize(s.log, actor, policy.ActionUpdate, projectResource(p)); err != nil {
		return nil, err
	}
	if input.Title != nil && strings.TrimSpace(*input.Title) == "" {
		return nil, fmt.Errorf("%w: title must not be empty", domain.ErrInvalidInput)
	}
	if input.Budget != nil && *input.Budget < 0 {
		return nil, fmt.Errorf("%w: budget must not be negative", domain.ErrInvalidInput)
	}

	if err := s.repo.Update(ctx, id, input); err != nil {
		return nil, fmt.Errorf("update project %s: %w", id, err)
	}
	return s.FindByID(ctx, id)
}

// Remove deletes the project when the actor owns it or is an admin.
func (s *ProjectService) Remove(ctx context.Context, actor domain.Actor, id string) error {
	p, err := s.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := authorize(s.log, actor, policy.ActionDelete, projectResource(p)); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete project %s: %w", id, err)
	}
	s.log.Info().Str("project_id", id).Str("actor_id", actor.ID).Msg("project deleted")
	return nil
}

func projectResource(p *domain.Project) policy.Resource {
	return policy.Resource{Kind: policy.KindProject, OwnerID: p.OwnerID}
}
