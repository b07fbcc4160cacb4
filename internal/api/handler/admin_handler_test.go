package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/qvema/qvema-api/internal/core/domain"
)

var admin = &domain.Actor{ID: "u-admin", Role: domain.RoleAdmin}

func TestAdminHandler_Dashboard(t *testing.T) {
	handler := NewAdminHandler(&stubAdminService{
		dashboard: &domain.Dashboard{Users: 3, Projects: 2, Investments: 4, Interests: 1, TotalInvested: 350.5},
	})

	c, rec := newContext(http.MethodGet, "/admin/dashboard", "", admin)
	if err := handler.Dashboard(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	var body map[string]float64
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if body["users"] != 3 || body["investments"] != 4 || body["totalInvested"] != 350.5 {
		t.Fatalf("unexpected dashboard: %v", body)
	}
}

func TestAdminHandler_Lists(t *testing.T) {
	handler := NewAdminHandler(&stubAdminService{
		users:       []domain.User{{ID: "u-1"}, {ID: "u-2"}},
		projects:    []domain.Project{{ID: "p-1"}},
		investments: []domain.Investment{{ID: "i-1"}, {ID: "i-2"}, {ID: "i-3"}},
	})

	tests := []struct {
		name string
		fn   echo.HandlerFunc
		want int
	}{
		{"users", handler.Users, 2},
		{"projects", handler.Projects, 1},
		{"investments", handler.Investments, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newContext(http.MethodGet, "/admin/"+tt.name, "", admin)
			if err := tt.fn(c); err != nil {
				t.Fatalf("handler error: %v", err)
			}
			var list []map[string]any
			if err := json.Unmarshal(rec.Body.Bytes(), &list); err != nil {
				t.Fatalf("invalid json: %v", err)
			}
			if len(list) != tt.want {
				t.Fatalf("expected %d rows, got %d", tt.want, len(list))
			}
		})
	}
}

func TestAdminHandler_ServiceError(t *testing.T) {
	storeErr := errors.New("count users: connection refused")
	handler := NewAdminHandler(&stubAdminService{err: storeErr})

	c, _ := newContext(http.MethodGet, "/admin/dashboard", "", admin)
	if err := handler.Dashboard(c); !errors.Is(err, storeErr) {
		t.Fatalf("expected the store error to propagate, got %v", err)
	}
}
