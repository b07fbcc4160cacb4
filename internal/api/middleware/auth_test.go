package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/qvema/qvema-api/internal/core/domain"
	"github.com/qvema/qvema-api/internal/core/ports"
)

type stubTokenParser struct {
	valid map[string]*ports.SessionClaims
}

func (s stubTokenParser) ParseToken(token string) (*ports.SessionClaims, error) {
	if claims, ok := s.valid[token]; ok {
		return claims, nil
	}
	return nil, domain.ErrInvalidToken
}

var testParser = stubTokenParser{valid: map[string]*ports.SessionClaims{
	"good": {Email: "alice@example.com", Actor: domain.Actor{ID: "u-1", Role: domain.RoleAdmin}},
}}

func runAuth(t *testing.T, header string, next echo.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := Auth(testParser)(next)(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	called := false
	rec := runAuth(t, "Bearer good", func(c echo.Context) error {
		called = true
		actor, ok := ActorFrom(c)
		if !ok {
			t.Fatalf("actor not set")
		}
		if actor.ID != "u-1" || actor.Role != domain.RoleAdmin {
			t.Fatalf("unexpected actor: %+v", actor)
		}
		if EmailFrom(c) != "alice@example.com" {
			t.Fatalf("email not set")
		}
		return c.NoContent(http.StatusOK)
	})

	if !called {
		t.Fatalf("next not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthMiddleware_Rejects(t *testing.T) {
	cases := map[string]string{
		"missing header": "",
		"wrong scheme":   "Token good",
		"empty token":    "Bearer ",
		"invalid token":  "Bearer not-a-token",
	}
	for name, header := range cases {
		t.Run(name, func(t *testing.T) {
			rec := runAuth(t, header, func(c echo.Context) error {
				t.Fatalf("should not reach next")
				return nil
			})
			if rec.Code != http.StatusUnauthorized {
				t.Fatalf("expected 401, got %d", rec.Code)
			}
		})
	}
}

func TestActorFrom_Missing(t *testing.T) {
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	if _, ok := ActorFrom(c); ok {
		t.Fatalf("expected no actor")
	}
}
