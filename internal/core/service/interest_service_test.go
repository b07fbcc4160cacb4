package service

import (
	"context"
	"errors"
	"testing"

	"github.com/qvema/qvema-api/internal/core/domain"
	"github.com/qvema/qvema-api/internal/core/ports"
)

type interestFixture struct {
	repo *stubInterestRepo
	svc  *InterestService
	user *domain.User
}

func newInterestFixture(t *testing.T, names ...string) *interestFixture {
	t.Helper()
	users := newStubUserRepo()
	user, err := NewUserService(users, true, nopLog).Create(context.Background(), ports.CreateUserInput{
		Email:    "eve@example.com",
		Password: "pw",
	})
	if err != nil {
		t.Fatalf("create user: %v", err)
	}

	repo := newStubInterestRepo()
	svc := NewInterestService(repo, users, nopLog)
	for _, n := range names {
		if _, err := svc.Create(context.Background(), ports.CreateInterestInput{Name: n}); err != nil {
			t.Fatalf("create interest %s: %v", n, err)
		}
	}
	return &interestFixture{repo: repo, svc: svc, user: user}
}

func interestIDs(list []domain.Interest) []uint {
	ids := make([]uint, 0, len(list))
	for _, in := range list {
		ids = append(ids, in.ID)
	}
	return ids
}

func TestInterestService_AttachToUser_KeepsDuplicates(t *testing.T) {
	f := newInterestFixture(t, "fintech", "energy", "health")
	ctx := context.Background()

	if _, err := f.svc.AttachToUser(ctx, f.user.ID, []uint{1, 2}); err != nil {
		t.Fatalf("first attach failed: %v", err)
	}
	user, err := f.svc.AttachToUser(ctx, f.user.ID, []uint{2, 3})
	if err != nil {
		t.Fatalf("second attach failed: %v", err)
	}

	got := interestIDs(user.Interests)
	want := []uint{1, 2, 2, 3}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestInterestService_AttachToUser_Errors(t *testing.T) {
	f := newInterestFixture(t, "fintech")
	ctx := context.Background()

	if _, err := f.svc.AttachToUser(ctx, "ghost", []uint{1}); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
	if _, err := f.svc.AttachToUser(ctx, f.user.ID, []uint{1, 99}); !errors.Is(err, domain.ErrInterestNotFound) {
		t.Fatalf("expected ErrInterestNotFound, got %v", err)
	}
	if f.repo.appends != 0 {
		t.Fatalf("nothing should be written when an id does not resolve")
	}
}

func TestInterestService_AttachToUser_Empty(t *testing.T) {
	f := newInterestFixture(t, "fintech")

	user, err := f.svc.AttachToUser(context.Background(), f.user.ID, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(user.Interests) != 0 || f.repo.appends != 0 {
		t.Fatalf("expected no-op, got %v (appends=%d)", user.Interests, f.repo.appends)
	}
}

func TestInterestService_UpdateAndRemove_Open(t *testing.T) {
	f := newInterestFixture(t, "fintech")
	ctx := context.Background()

	updated, err := f.svc.Update(ctx, bob, 1, ports.UpdateInterestInput{Category: ptr("finance")})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Category != "finance" || updated.Name != "fintech" {
		t.Fatalf("unexpected interest: %+v", updated)
	}
	if err := f.svc.Remove(ctx, alice, 1); err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	if _, err := f.svc.FindByID(ctx, 1); !errors.Is(err, domain.ErrInterestNotFound) {
		t.Fatalf("expected ErrInterestNotFound, got %v", err)
	}
	if err := f.svc.Remove(ctx, alice, 1); !errors.Is(err, domain.ErrInterestNotFound) {
		t.Fatalf("expected ErrInterestNotFound, got %v", err)
	}
}

func TestInterestService_Create_Validation(t *testing.T) {
	f := newInterestFixture(t)

	if _, err := f.svc.Create(context.Background(), ports.CreateInterestInput{Name: "  "}); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestInterestService_UserInterests(t *testing.T) {
	f := newInterestFixture(t, "fintech", "energy")
	ctx := context.Background()
	_, _ = f.svc.AttachToUser(ctx, f.user.ID, []uint{2})

	list, err := f.svc.UserInterests(ctx, f.user.ID)
	if err != nil {
		t.Fatalf("UserInterests failed: %v", err)
	}
	if len(list) != 1 || list[0].Name != "energy" {
		t.Fatalf("unexpected interests: %+v", list)
	}
	if _, err := f.svc.UserInterests(ctx, "ghost"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
