package service

import (
	"context"
	"testing"

	"github.com/qvema/qvema-api/internal/core/ports"
)

func TestAdminService_Dashboard(t *testing.T) {
	ctx := context.Background()
	users := newStubUserRepo()
	projectRepo := newStubProjectRepo()
	investmentRepo := newStubInvestmentRepo()
	interestRepo := newStubInterestRepo()

	_, _ = NewUserService(users, true, nopLog).Create(ctx, ports.CreateUserInput{Email: "a@example.com", Password: "pw"})
	projects := NewProjectService(projectRepo, nopLog)
	p := seedProject(t, projects, alice)
	investments := NewInvestmentService(investmentRepo, projectRepo, nopLog)
	for _, amount := range []float64{100, 250.5} {
		if _, err := investments.Create(ctx, bob, ports.CreateInvestmentInput{ProjectID: p.ID, Amount: amount}); err != nil {
			t.Fatalf("create investment: %v", err)
		}
	}
	_, _ = NewInterestService(interestRepo, users, nopLog).Create(ctx, ports.CreateInterestInput{Name: "fintech"})

	svc := NewAdminService(users, projectRepo, investmentRepo, interestRepo)
	d, err := svc.Dashboard(ctx)
	if err != nil {
		t.Fatalf("Dashboard failed: %v", err)
	}
	if d.Users != 1 || d.Projects != 1 || d.Investments != 2 || d.Interests != 1 {
		t.Fatalf("unexpected counts: %+v", d)
	}
	if d.TotalInvested != 350.5 {
		t.Fatalf("expected total 350.5, got %v", d.TotalInvested)
	}

	list, err := svc.Investments(ctx)
	if err != nil || len(list) != 2 {
		t.Fatalf("expected 2 investments, got %d (%v)", len(list), err)
	}
}
