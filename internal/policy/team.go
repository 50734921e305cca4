package policy

import (
	"task-manager-backend/internal/database/models"
)

// CanViewTeam allows members of the team
func CanViewTeam(actor Actor, team *models.Team) Decision {
	return allowIf(actor.InTeam(team.ID), "you are not a member of this team")
}

// CanUpdateTeam allows approved managers of the team
func CanUpdateTeam(actor Actor, team *models.Team) Decision {
	return allowIf(actor.IsManager() && actor.IsApprovedMember() && actor.InTeam(team.ID), "only the team's manager can update it")
}

// CanReviewMembership allows an approved manager to approve or reject other
// users of their own team
func CanReviewMembership(actor Actor, target *models.User) Decision {
	return allowIf(actor.IsManager() && actor.IsApprovedMember() && actor.ID != target.ID && actor.SameTeam(target), "only the team's manager can review memberships")
}
