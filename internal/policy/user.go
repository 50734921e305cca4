package policy

import (
	"task-manager-backend/internal/database/models"
)

// CanListUsers allows managers only
func CanListUsers(actor Actor) Decision {
	return allowIf(actor.IsManager(), "only managers can list users")
}

// CanUpdateUserRole decides whether actor may give target the new role.
// Superadmins are unrestricted; project managers may only change non-manager
// users of their own team and may not hand out manager roles.
func CanUpdateUserRole(actor Actor, target *models.User, newRole models.Role) Decision {
	if !actor.IsManager() {
		return Deny("only managers can change roles")
	}
	if actor.IsSuperadmin() {
		return Allow()
	}
	if KindOf(target.Role) == Manager {
		return Deny("you cannot change the role of another manager")
	}
	if !actor.SameTeam(target) {
		return Deny("you can only change roles within your team")
	}
	if KindOf(&newRole) == Manager {
		return Deny("you cannot grant manager roles")
	}
	return Allow()
}
