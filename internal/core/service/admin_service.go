package service

import (
	"context"
	"fmt"

	"github.com/qvema/qvema-api/internal/core/domain"
	"github.com/qvema/qvema-api/internal/core/ports"
)

// AdminService aggregates read-only views over the other stores.
type AdminService struct {
	users       ports.UserRepository
	projects    ports.ProjectRepository
	investments ports.InvestmentRepository
	interests   ports.InterestRepository
}

func NewAdminService(
	users ports.UserRepository,
	projects ports.ProjectRepository,
	investments ports.InvestmentRepository,
	interests ports.InterestRepository,
) *AdminService {
	return &AdminService{
		users:       users,
		projects:    projects,
		investments: investments,
		interests:   interests,
	}
}

func (s *AdminService) Dashboard(ctx context.Context) (*domain.Dashboard, error) {
	var (
		d   domain.Dashboard
		err error
	)
	if d.Users, err = s.users.Count(ctx); err != nil {
		return nil, fmt.Errorf("dashboard: count users: %w", err)
	}
	if d.Projects, err = s.projects.Count(ctx); err != nil {
		return nil, fmt.Errorf("dashboard: count projects: %w", err)
	}
	if d.Investments, err = s.investments.Count(ctx); err != nil {
		return nil, fmt.Errorf("dashboard: count investments: %w", err)
	}
	if d.Interests, err = s.interests.Count(ctx); err != nil {
		return nil, fmt.Errorf("dashboard: count interests: %w", err)
	}
	if d.TotalInvested, err = s.investments.TotalAmount(ctx); err != nil {
		return nil, fmt.Errorf("dashboard: total invested: %w", err)
	}
	return &d, nil
}

func (s *AdminService) Users(ctx context.Context) ([]domain.User, error) {
	users, err := s.users.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("admin users: %w", err)
	}
	return users, nil
}

func (s *AdminService) Projects(ctx context.Context) ([]domain.Project, error) {
	projects, err := s.projects.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("admin projects: %w", err)
	}
	return projects, nil
}

func (s *AdminService) Investments(ctx context.Context) ([]domain.Investment, error) {
	invs, err := s.investments.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("admin investments: %w", err)
	}
	return invs, nil
}
