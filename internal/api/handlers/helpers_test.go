package handlers_test

import (
	"task-manager-backend/internal/auth"
	"task-manager-backend/internal/database/models"
	"task-manager-backend/internal/policy"
	"task-manager-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// routerAs returns a test router whose requests all run as a
func routerAs(a *policy.Actor) *testutils.HTTPTestSuite {
	httpSuite := testutils.SetupHTTPTest()
	httpSuite.Router.Use(func(c *gin.Context) {
		if a != nil {
			auth.SetActor(c, *a)
		}
		c.Next()
	})
	return httpSuite
}

func managerActor() policy.Actor {
	teamID := uuid.New()
	approved := models.MembershipApproved
	return policy.Actor{
		ID:         uuid.New(),
		TeamID:     &teamID,
		Role:       models.RoleProjectManager,
		Kind:       policy.Manager,
		Membership: &approved,
	}
}

func memberActor() policy.Actor {
	teamID := uuid.New()
	approved := models.MembershipApproved
	return policy.Actor{
		ID:         uuid.New(),
		TeamID:     &teamID,
		Role:       models.RoleBackendDeveloper,
		Kind:       policy.Member,
		Membership: &approved,
	}
}
