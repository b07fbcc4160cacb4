// Package policy holds the authorization decision table. Evaluate is pure:
// callers load the resource first (a missing resource is a not-found error,
// never a policy denial) and pass a Resource descriptor built from it.
package policy

import (
	"fmt"
	"slices"

	"github.com/qvema/qvema-api/internal/core/domain"
)

// Kind identifies the resource type a decision is about.
type Kind string

const (
	KindProject    Kind = "project"
	KindInvestment Kind = "investment"
	KindInterest   Kind = "interest"
	KindAdminArea  Kind = "admin_area"
)

// Action is the operation the actor wants to perform.
type Action string

const (
	ActionUpdate        Action = "update"
	ActionDelete        Action = "delete"
	ActionListByProject Action = "list_by_project"
	ActionAccess        Action = "access"
)

// Reason is a stable code explaining a decision. It ends up in logs and
// metric labels.
type Reason string

const (
	ReasonOwner           Reason = "owner"
	ReasonAdminOverride   Reason = "admin_override"
	ReasonInvestor        Reason = "investor"
	ReasonProjectOwner    Reason = "project_owner"
	ReasonParticipant     Reason = "participant"
	ReasonOpenResource    Reason = "open_resource"
	ReasonAdminRole       Reason = "admin_role"
	ReasonNotOwner        Reason = "not_owner"
	ReasonNotInvestor     Reason = "not_investor"
	ReasonNotParticipant  Reason = "not_participant"
	ReasonNotAdmin        Reason = "not_admin"
	ReasonUnauthenticated Reason = "unauthenticated"
	ReasonUnknownAction   Reason = "unknown_action"
)

// Resource describes ownership of the target.
//
// OwnerID is the project owner for projects (and for list_by_project), the
// investor for investments. Participants lists the investor ids of a
// project's investments and is only consulted for list_by_project.
type Resource struct {
	Kind         Kind
	OwnerID      string
	Participants []string
}

// Decision is the outcome of Evaluate.
type Decision struct {
	Allowed bool
	Reason  Reason
}

// Err returns nil when allowed, otherwise domain.ErrForbidden annotated with
// the reason.
func (d Decision) Err() error {
	if d.Allowed {
		return nil
	}
	return fmt.Errorf("%w: %s", domain.ErrForbidden, d.Reason)
}

func allow(r Reason) Decision { return Decision{Allowed: true, Reason: r} }
func deny(r Reason) Decision  { return Decision{Allowed: false, Reason: r} }

// Evaluate decides whether actor may perform action on res.
func Evaluate(actor domain.Actor, action Action, res Resource) Decision {
	if actor.ID == "" {
		return deny(ReasonUnauthenticated)
	}

	switch res.Kind {
	case KindProject:
		return evaluateProject(actor, action, res)
	case KindInvestment:
		return evaluateInvestment(actor, action, res)
	case KindInterest:
		if action == ActionUpdate || action == ActionDelete {
			return allow(ReasonOpenResource)
		}
	case KindAdminArea:
		if action == ActionAccess {
			if actor.IsAdmin() {
				return allow(ReasonAdminRole)
			}
			return deny(ReasonNotAdmin)
		}
	}
	return deny(ReasonUnknownAction)
}

func evaluateProject(actor domain.Actor, action Action, res Resource) Decision {
	switch action {
	case ActionUpdate:
		if actor.ID == res.OwnerID {
			return allow(ReasonOwner)
		}
		return deny(ReasonNotOwner)
	case ActionDelete:
		if actor.ID == res.OwnerID {
			return allow(ReasonOwner)
		}
		if actor.IsAdmin() {
			return allow(ReasonAdminOverride)
		}
		return deny(ReasonNotOwner)
	case ActionListByProject:
		// Investments of a project: readable by admins, the project owner and
		// anyone who invested in it.
		if actor.IsAdmin() {
			return allow(ReasonAdminRole)
		}
		if actor.ID == res.OwnerID {
			return allow(ReasonProjectOwner)
		}
		if slices.Contains(res.Participants, actor.ID) {
			return allow(ReasonParticipant)
		}
		return deny(ReasonNotParticipant)
	}
	return deny(ReasonUnknownAction)
}

// Investments have no admin override, unlike projects.
func evaluateInvestment(actor domain.Actor, action Action, res Resource) Decision {
	switch action {
	case ActionUpdate, ActionDelete:
		if actor.ID == res.OwnerID {
			return allow(ReasonInvestor)
		}
		return deny(ReasonNotInvestor)
	}
	return deny(ReasonUnknownAction)
}
