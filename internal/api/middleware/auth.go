package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/qvema/qvema-api/internal/core/domain"
	"github.com/qvema/qvema-api/internal/core/ports"
)

const (
	actorKey = "actor"
	emailKey = "email"
)

// TokenParser verifies a bearer token. ports.AuthService satisfies it.
type TokenParser interface {
	ParseToken(token string) (*ports.SessionClaims, error)
}

// Auth validates the bearer token and injects the actor into the context.
func Auth(tokens TokenParser) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || strings.TrimSpace(parts[1]) == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims, err := tokens.ParseToken(strings.TrimSpace(parts[1]))
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set(actorKey, claims.Actor)
			c.Set(emailKey, claims.Email)

			return next(c)
		}
	}
}

// ActorFrom returns the actor set by Auth.
func ActorFrom(c echo.Context) (domain.Actor, bool) {
	actor, ok := c.Get(actorKey).(domain.Actor)
	if !ok || actor.ID == "" {
		return domain.Actor{}, false
	}
	return actor, true
}

// EmailFrom returns the email claim set by Auth.
func EmailFrom(c echo.Context) string {
	email, _ := c.Get(emailKey).(string)
	return email
}
