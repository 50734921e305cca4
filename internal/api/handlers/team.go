package handlers

import (
	"context"
	"net/http"

	"task-manager-backend/internal/policy"
	"task-manager-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TeamHandler handles HTTP requests for team operations
type TeamHandler struct {
	teamService service.TeamServiceInterface
}

// NewTeamHandler creates a new team handler
func NewTeamHandler(teamService service.TeamServiceInterface) *TeamHandler {
	return &TeamHandler{
		teamService: teamService,
	}
}

// CreateTeam handles POST /teams
// @Summary Create a new team
// @Description Managers without a team create one and join it as approved members. The join code is sent as a notification.
// @Tags teams
// @Accept json
// @Produce json
// @Param team body service.CreateTeamRequest true "Team data"
// @Success 201 {object} service.TeamResponse "Successfully created team"
// @Failure 400 {object} ValidationErrorResponse "Invalid request body"
// @Failure 403 {object} ErrorResponse "Not a manager or already in a team"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /teams [post]
func (h *TeamHandler) CreateTeam(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	var req service.CreateTeamRequest
	if !bindJSON(c, &req) {
		return
	}
	team, err := h.teamService.Create(c.Request.Context(), a, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, team)
}

// ListTeams handles GET /teams
// @Summary List teams
// @Description Id, name and photo of every team for the join screen
// @Tags teams
// @Produce json
// @Success 200 {array} service.TeamSummary
// @Security BearerAuth
// @Router /teams [get]
func (h *TeamHandler) ListTeams(c *gin.Context) {
	teams, err := h.teamService.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, teams)
}

// GetTeam handles GET /teams/:id
// @Summary Get team by ID
// @Tags teams
// @Produce json
// @Param id path string true "Team ID (UUID)"
// @Success 200 {object} service.TeamResponse "Successfully retrieved team"
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Team not found"
// @Security BearerAuth
// @Router /teams/{id} [get]
func (h *TeamHandler) GetTeam(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id", "team")
	if !ok {
		return
	}
	team, err := h.teamService.Get(c.Request.Context(), a, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, team)
}

// UpdateTeam handles PUT /teams/:id
// @Summary Update a team
// @Description The team code cannot be changed
// @Tags teams
// @Accept json
// @Produce json
// @Param id path string true "Team ID (UUID)"
// @Param team body service.UpdateTeamRequest true "Fields to change"
// @Success 200 {object} service.TeamResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /teams/{id} [put]
func (h *TeamHandler) UpdateTeam(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id", "team")
	if !ok {
		return
	}
	var req service.UpdateTeamRequest
	if !bindJSON(c, &req) {
		return
	}
	team, err := h.teamService.Update(c.Request.Context(), a, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, team)
}

// JoinTeam handles POST /teams/join
// @Summary Ask to join a team
// @Description Requires the team's code. Membership stays pending until a manager approves it.
// @Tags teams
// @Accept json
// @Produce json
// @Param join body service.JoinTeamRequest true "Team id and code"
// @Success 200 {object} service.UserResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Unknown team or wrong code"
// @Security BearerAuth
// @Router /teams/join [post]
func (h *TeamHandler) JoinTeam(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	var req service.JoinTeamRequest
	if !bindJSON(c, &req) {
		return
	}
	user, err := h.teamService.Join(c.Request.Context(), a, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// PendingMembers handles GET /teams/pending-members
// @Summary List membership requests for the caller's team
// @Tags teams
// @Produce json
// @Success 200 {array} service.UserResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /teams/pending-members [get]
func (h *TeamHandler) PendingMembers(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	users, err := h.teamService.PendingMembers(c.Request.Context(), a)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// ApproveMember handles POST /teams/members/:userId/approve
// @Summary Approve a membership request
// @Tags teams
// @Produce json
// @Param userId path string true "User ID (UUID)"
// @Success 200 {object} service.UserResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /teams/members/{userId}/approve [post]
func (h *TeamHandler) ApproveMember(c *gin.Context) {
	h.review(c, h.teamService.Approve)
}

// RejectMember handles POST /teams/members/:userId/reject
// @Summary Reject a membership request
// @Tags teams
// @Produce json
// @Param userId path string true "User ID (UUID)"
// @Success 200 {object} service.UserResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /teams/members/{userId}/reject [post]
func (h *TeamHandler) RejectMember(c *gin.Context) {
	h.review(c, h.teamService.Reject)
}

func (h *TeamHandler) review(c *gin.Context, decide func(ctx context.Context, a policy.Actor, userID uuid.UUID) (*service.UserResponse, error)) {
	a, ok := actor(c)
	if !ok {
		return
	}
	userID, ok := parseUUIDParam(c, "userId", "user")
	if !ok {
		return
	}
	user, err := decide(c.Request.Context(), a, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}
