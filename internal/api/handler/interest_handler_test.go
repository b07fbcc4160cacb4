package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/qvema/qvema-api/internal/core/domain"
)

func TestInterestHandler_Get_BadID(t *testing.T) {
	handler := NewInterestHandler(&stubInterestService{})

	for _, raw := range []string{"abc", "-1", ""} {
		c, _ := newContext(http.MethodGet, "/interests/x", "", owner)
		c.SetParamNames("id")
		c.SetParamValues(raw)
		if err := handler.Get(c); httpStatus(err) != http.StatusBadRequest {
			t.Fatalf("id %q: expected 400, got %v", raw, err)
		}
	}
}

func TestInterestHandler_Get_NotFound(t *testing.T) {
	handler := NewInterestHandler(&stubInterestService{
		findByIDFn: func(ctx context.Context, id uint) (*domain.Interest, error) {
			if id != 42 {
				t.Fatalf("unexpected id %d", id)
			}
			return nil, domain.ErrInterestNotFound
		},
	})

	c, _ := newContext(http.MethodGet, "/interests/42", "", owner)
	c.SetParamNames("id")
	c.SetParamValues("42")
	if err := handler.Get(c); !errors.Is(err, domain.ErrInterestNotFound) {
		t.Fatalf("expected ErrInterestNotFound, got %v", err)
	}
}

func TestInterestHandler_Attach(t *testing.T) {
	handler := NewInterestHandler(&stubInterestService{
		attachFn: func(ctx context.Context, userID string, ids []uint) (*domain.User, error) {
			if userID != "u-1" || len(ids) != 3 || ids[1] != 2 || ids[2] != 2 {
				t.Fatalf("unexpected call: %s %v", userID, ids)
			}
			return &domain.User{ID: userID, Interests: []domain.Interest{{ID: 1}, {ID: 2}, {ID: 2}}}, nil
		},
	})

	c, rec := newContext(http.MethodPost, "/interests/user/u-1", `{"interestIds":[1,2,2]}`, owner)
	c.SetParamNames("userId")
	c.SetParamValues("u-1")
	if err := handler.Attach(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	var user domain.User
	if err := json.Unmarshal(rec.Body.Bytes(), &user); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(user.Interests) != 3 {
		t.Fatalf("expected 3 interests, got %d", len(user.Interests))
	}
}
