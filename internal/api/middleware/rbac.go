package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/qvema/qvema-api/internal/core/policy"
	"github.com/qvema/qvema-api/internal/infrastructure/metrics"
)

// RBAC admits the request when the policy grants the actor access to area.
// It must run after Auth.
func RBAC(area policy.Kind, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			actor, _ := ActorFrom(c)
			d := policy.Evaluate(actor, policy.ActionAccess, policy.Resource{Kind: area})

			outcome := "allow"
			if !d.Allowed {
				outcome = "deny"
			}
			metrics.AuthorizationDecisionsTotal.
				WithLabelValues(string(area), string(policy.ActionAccess), string(d.Reason), outcome).
				Inc()

			if !d.Allowed {
				log.Warn().
					Str("actor_id", actor.ID).
					Str("area", string(area)).
					Str("reason", string(d.Reason)).
					Str("path", c.Path()).
					Msg("area access denied")
				return echo.NewHTTPError(http.StatusForbidden, "access forbidden")
			}
			return next(c)
		}
	}
}
