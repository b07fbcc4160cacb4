package service

import (
	"context"
	"errors"
	"testing"

	"github.com/qvema/qvema-api/internal/core/domain"
	"github.com/qvema/qvema-api/internal/core/ports"
)

var (
	alice = domain.Actor{ID: "alice", Role: domain.RoleRegular}
	bob   = domain.Actor{ID: "bob", Role: domain.RoleRegular}
	root  = domain.Actor{ID: "root", Role: domain.RoleAdmin}
)

func seedProject(t *testing.T, svc *ProjectService, owner domain.Actor) *domain.Project {
	t.Helper()
	p, err := svc.Create(context.Background(), owner, ports.CreateProjectInput{
		Title:    "Solar farm",
		Category: "energy",
		Budget:   50000,
	})
	if err != nil {
		t.Fatalf("create project: %v", err)
	}
	return p
}

func TestProjectService_Create_StampsOwner(t *testing.T) {
	svc := NewProjectService(newStubProjectRepo(), nopLog)

	p := seedProject(t, svc, alice)
	if p.ID == "" {
		t.Fatalf("expected id")
	}
	if p.OwnerID != alice.ID {
		t.Fatalf("expected owner %s, got %s", alice.ID, p.OwnerID)
	}
}

func TestProjectService_Create_Validation(t *testing.T) {
	svc := NewProjectService(newStubProjectRepo(), nopLog)

	if _, err := svc.Create(context.Background(), alice, ports.CreateProjectInput{Title: " "}); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for blank title, got %v", err)
	}
	if _, err := svc.Create(context.Background(), alice, ports.CreateProjectInput{Title: "x", Budget: -1}); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for negative budget, got %v", err)
	}
}

func TestProjectService_Update(t *testing.T) {
	ctx := context.Background()
	svc := NewProjectService(newStubProjectRepo(), nopLog)
	p := seedProject(t, svc, alice)

	updated, err := svc.Update(ctx, alice, p.ID, ports.UpdateProjectInput{Title: ptr("Wind farm")})
	if err != nil {
		t.Fatalf("owner update failed: %v", err)
	}
	if updated.Title != "Wind farm" || updated.Category != "energy" {
		t.Fatalf("unexpected project after update: %+v", updated)
	}

	for _, actor := range []domain.Actor{bob, root} {
		_, err := svc.Update(ctx, actor, p.ID, ports.UpdateProjectInput{Title: ptr("Hijacked")})
		if !errors.Is(err, domain.ErrForbidden) {
			t.Fatalf("expected ErrForbidden for %s, got %v", actor.ID, err)
		}
	}
	current, _ := svc.FindByID(ctx, p.ID)
	if current.Title != "Wind farm" {
		t.Fatalf("denied update must not persist, got %q", current.Title)
	}
}

func TestProjectService_Update_NotFoundBeforeForbidden(t *testing.T) {
	svc := NewProjectService(newStubProjectRepo(), nopLog)

	_, err := svc.Update(context.Background(), bob, "missing", ports.UpdateProjectInput{})
	if !errors.Is(err, domain.ErrProjectNotFound) {
		t.Fatalf("expected ErrProjectNotFound, got %v", err)
	}
}

func TestProjectService_Remove(t *testing.T) {
	ctx := context.Background()
	svc := NewProjectService(newStubProjectRepo(), nopLog)

	p := seedProject(t, svc, alice)
	if err := svc.Remove(ctx, bob, p.ID); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for stranger, got %v", err)
	}
	if err := svc.Remove(ctx, root, p.ID); err != nil {
		t.Fatalf("admin delete failed: %v", err)
	}
	if _, err := svc.FindByID(ctx, p.ID); !errors.Is(err, domain.ErrProjectNotFound) {
		t.Fatalf("expected project to be gone, got %v", err)
	}

	own := seedProject(t, svc, alice)
	if err := svc.Remove(ctx, alice, own.ID); err != nil {
		t.Fatalf("owner delete failed: %v", err)
	}
	if err := svc.Remove(ctx, alice, own.ID); !errors.Is(err, domain.ErrProjectNotFound) {
		t.Fatalf("expected ErrProjectNotFound on second delete, got %v", err)
	}
}

func TestProjectService_FindByOwner(t *testing.T) {
	svc := NewProjectService(newStubProjectRepo(), nopLog)
	seedProject(t, svc, alice)
	seedProject(t, svc, bob)
	seedProject(t, svc, alice)

	mine, err := svc.FindByOwner(context.Background(), alice.ID)
	if err != nil {
		t.Fatalf("FindByOwner failed: %v", err)
	}
	if len(mine) != 2 {
		t.Fatalf("expected 2 projects, got %d", len(mine))
	}
	for _, p := range mine {
		if p.OwnerID != alice.ID {
			t.Fatalf("unexpected owner %s", p.OwnerID)
		}
	}
}
