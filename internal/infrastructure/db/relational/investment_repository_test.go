package relational

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qvema/qvema-api/internal/core/domain"
	"github.com/qvema/qvema-api/internal/core/ports"
)

type investmentSeed struct {
	repo     *InvestmentRepository
	project  *domain.Project
	owner    *domain.User
	investor *domain.User
}

func seedInvestments(t *testing.T) *investmentSeed {
	t.Helper()
	db := setupTestDB(t)
	users := NewUserRepository(db)
	s := &investmentSeed{
		repo:     NewInvestmentRepository(db),
		owner:    createUser(t, users, "owner@example.com"),
		investor: createUser(t, users, "investor@example.com"),
	}
	s.project = createProject(t, NewProjectRepository(db), s.owner.ID, "Solar")
	return s
}

func (s *investmentSeed) invest(t *testing.T, amount float64) *domain.Investment {
	t.Helper()
	inv := &domain.Investment{InvestorID: s.investor.ID, ProjectID: s.project.ID, Amount: amount, Terms: "5y"}
	require.NoError(t, s.repo.Create(context.Background(), inv))
	return inv
}

func TestInvestmentRepository_CreateAndFind(t *testing.T) {
	ctx := context.Background()
	s := seedInvestments(t)

	inv := s.invest(t, 1500)
	assert.Len(t, inv.ID, 36)

	found, err := s.repo.FindByID(ctx, inv.ID)
	require.NoError(t, err)
	assert.Equal(t, 1500.0, found.Amount)
	require.NotNil(t, found.Project)
	assert.Equal(t, "Solar", found.Project.Title)

	_, err = s.repo.FindByID(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrInvestmentNotFound)
}

func TestInvestmentRepository_FindByProjectPreloads(t *testing.T) {
	s := seedInvestments(t)
	s.invest(t, 100)
	s.invest(t, 200)

	invs, err := s.repo.FindByProject(context.Background(), s.project.ID)
	require.NoError(t, err)
	require.Len(t, invs, 2)
	for _, inv := range invs {
		require.NotNil(t, inv.Investor)
		require.NotNil(t, inv.Project)
		assert.Equal(t, "investor@example.com", inv.Investor.Email)
		assert.Equal(t, s.owner.ID, inv.Project.OwnerID)
	}
}

func TestInvestmentRepository_FindByInvestor(t *testing.T) {
	s := seedInvestments(t)
	s.invest(t, 100)

	invs, err := s.repo.FindByInvestor(context.Background(), s.investor.ID)
	require.NoError(t, err)
	require.Len(t, invs, 1)
	require.NotNil(t, invs[0].Project)

	none, err := s.repo.FindByInvestor(context.Background(), s.owner.ID)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestInvestmentRepository_UpdateDeleteAggregate(t *testing.T) {
	ctx := context.Background()
	s := seedInvestments(t)
	first := s.invest(t, 100)
	s.invest(t, 250.5)

	total, err := s.repo.TotalAmount(ctx)
	require.NoError(t, err)
	assert.InDelta(t, 350.5, total, 0.001)

	amount := 300.0
	require.NoError(t, s.repo.Update(ctx, first.ID, ports.InvestmentChanges{Amount: &amount}))
	updated, err := s.repo.FindByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, 300.0, updated.Amount)
	assert.Equal(t, "5y", updated.Terms)

	require.NoError(t, s.repo.Delete(ctx, first.ID))
	assert.ErrorIs(t, s.repo.Delete(ctx, first.ID), domain.ErrInvestmentNotFound)

	n, err := s.repo.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}

func TestInvestmentRepository_TotalAmountEmpty(t *testing.T) {
	s := seedInvestments(t)

	total, err := s.repo.TotalAmount(context.Background())
	require.NoError(t, err)
	assert.Zero(t, total)
}
