package handlers

import (
	"net/http"

	"task-manager-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// UserHandler handles HTTP requests for user operations
type UserHandler struct {
	userService service.UserServiceInterface
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService service.UserServiceInterface) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// ListUsers handles GET /users
// @Summary List users for assignment
// @Description Managers only. Users ordered by name.
// @Tags users
// @Produce json
// @Success 200 {array} service.UserSummary
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	users, err := h.userService.ListUsers(c.Request.Context(), a)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// ListTeamMembers handles GET /users/team
// @Summary List approved members of the caller's team
// @Tags users
// @Produce json
// @Success 200 {array} service.UserResponse
// @Security BearerAuth
// @Router /users/team [get]
func (h *UserHandler) ListTeamMembers(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	users, err := h.userService.ListTeamMembers(c.Request.Context(), a)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// UpdateRole handles PATCH /users/:id/role
// @Summary Change a user's role
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "User ID (UUID)"
// @Param role body service.UpdateRoleRequest true "New role"
// @Success 200 {object} service.UserResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /users/{id}/role [patch]
func (h *UserHandler) UpdateRole(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id", "user")
	if !ok {
		return
	}
	var req service.UpdateRoleRequest
	if !bindJSON(c, &req) {
		return
	}
	user, err := h.userService.UpdateRole(c.Request.Context(), a, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}
