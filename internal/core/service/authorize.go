package service

import (
	"github.com/rs/zerolog"

	"github.com/qvema/qvema-api/internal/core/domain"
	"github.com/qvema/qvema-api/internal/core/policy"
	"github.com/qvema/qvema-api/internal/infrastructure/metrics"
)

// authorize runs the policy, records the decision and returns
// domain.ErrForbidden (wrapped with the reason) on denial.
func authorize(log zerolog.Logger, actor domain.Actor, action policy.Action, res policy.Resource) error {
	d := policy.Evaluate(actor, action, res)

	outcome := "allow"
	if !d.Allowed {
		outcome = "deny"
	}
	metrics.AuthorizationDecisionsTotal.
		WithLabelValues(string(res.Kind), string(action), string(d.Reason), outcome).
		Inc()

	if !d.Allowed {
		log.Warn().
			Str("actor_id", actor.ID).
			Str("role", string(actor.Role)).
			Str("resource", string(res.Kind)).
			Str("action", string(action)).
			Str("reason", string(d.Reason)).
			Msg("authorization denied")
	}
	return d.Err()
}
