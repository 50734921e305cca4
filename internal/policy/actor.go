// Package policy decides which user may do what to tasks, teams and users.
// Predicates are pure: they read the actor and the target and return a
// Decision without touching storage.
package policy

import (
	"task-manager-backend/internal/database/models"
	apperrors "task-manager-backend/internal/errors"

	"github.com/google/uuid"
)

// Kind is the capability class a role falls into
type Kind int

const (
	// Unassigned users have not chosen a role yet
	Unassigned Kind = iota
	// Manager roles create, assign and delete tasks
	Manager
	// Member roles work on tasks assigned to them
	Member
)

func (k Kind) String() string {
	switch k {
	case Manager:
		return "manager"
	case Member:
		return "member"
	}
	return "unassigned"
}

// KindOf classifies a concrete role. A nil or empty role is Unassigned.
func KindOf(role *models.Role) Kind {
	if role == nil || *role == "" {
		return Unassigned
	}
	switch *role {
	case models.RoleSuperadmin, models.RoleProjectManager:
		return Manager
	}
	return Member
}

// Actor is the authenticated user a request runs as
type Actor struct {
	ID         uuid.UUID
	TeamID     *uuid.UUID
	Role       models.Role
	Kind       Kind
	Membership *models.MembershipStatus
}

// ActorFromUser builds the actor for a loaded user
func ActorFromUser(u *models.User) Actor {
	a := Actor{
		ID:         u.ID,
		TeamID:     u.TeamID,
		Kind:       KindOf(u.Role),
		Membership: u.MembershipStatus,
	}
	if u.Role != nil {
		a.Role = *u.Role
	}
	return a
}

// IsManager is the single capability query used by every predicate
func (a Actor) IsManager() bool {
	return a.Kind == Manager
}

// IsSuperadmin reports the unrestricted manager role
func (a Actor) IsSuperadmin() bool {
	return a.Role == models.RoleSuperadmin
}

// InTeam reports whether the actor belongs to the given team
func (a Actor) InTeam(teamID uuid.UUID) bool {
	return a.TeamID != nil && *a.TeamID == teamID
}

// SameTeam reports whether the actor and the user share a non-nil team
func (a Actor) SameTeam(u *models.User) bool {
	return u.TeamID != nil && a.InTeam(*u.TeamID)
}

// IsApprovedMember reports whether the actor's team membership is approved
func (a Actor) IsApprovedMember() bool {
	return a.TeamID != nil && a.Membership != nil && *a.Membership == models.MembershipApproved
}

// Decision is the outcome of a policy check
type Decision struct {
	Allowed bool
	Reason  string
}

// Allow grants the action
func Allow() Decision {
	return Decision{Allowed: true}
}

// Deny refuses the action with a client-safe reason
func Deny(reason string) Decision {
	return Decision{Reason: reason}
}

func allowIf(ok bool, reason string) Decision {
	if ok {
		return Allow()
	}
	return Deny(reason)
}

// Err converts a denial into an AuthorizationError; nil when allowed
func (d Decision) Err() error {
	if d.Allowed {
		return nil
	}
	reason := d.Reason
	if reason == "" {
		reason = "forbidden"
	}
	return apperrors.NewAuthorizationError(reason)
}
