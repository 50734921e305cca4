package service_test

import (
	"task-manager-backend/internal/database/models"
	"task-manager-backend/internal/policy"

	"github.com/google/uuid"
)

func rolePtr(r models.Role) *models.Role { return &r }

func statusPtr(s models.MembershipStatus) *models.MembershipStatus { return &s }

func strPtr(s string) *string { return &s }

func intPtr(n int) *int { return &n }

func newUser(role *models.Role, teamID *uuid.UUID, status *models.MembershipStatus) *models.User {
	u := &models.User{
		Name:             "Test User",
		Email:            uuid.NewString() + "@example.com",
		Role:             role,
		TeamID:           teamID,
		MembershipStatus: status,
	}
	u.ID = uuid.New()
	return u
}

// managerActor is an approved project manager of teamID
func managerActor(teamID uuid.UUID) policy.Actor {
	return policy.ActorFromUser(newUser(rolePtr(models.RoleProjectManager), &teamID, statusPtr(models.MembershipApproved)))
}

// memberActor is an approved developer of teamID
func memberActor(teamID uuid.UUID) policy.Actor {
	return policy.ActorFromUser(newUser(rolePtr(models.RoleBackendDeveloper), &teamID, statusPtr(models.MembershipApproved)))
}

func newTask(creator uuid.UUID, assignee *uuid.UUID) *models.Task {
	t := &models.Task{
		Title:            "Write report",
		Priority:         models.PriorityMedium,
		Status:           models.TaskStatusPending,
		AssignedToUserID: assignee,
		CreatedByUserID:  creator,
	}
	t.ID = uuid.New()
	return t
}
