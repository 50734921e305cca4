package handlers

import (
	"context"
	"net/http"

	"task-manager-backend/internal/changes"
	"task-manager-backend/internal/policy"
	"task-manager-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// UpdateCheckHandler answers the client's polling requests
type UpdateCheckHandler struct {
	checks service.UpdateCheckServiceInterface
}

// NewUpdateCheckHandler creates a new update check handler
func NewUpdateCheckHandler(checks service.UpdateCheckServiceInterface) *UpdateCheckHandler {
	return &UpdateCheckHandler{checks: checks}
}

type timestampCheck func(ctx context.Context, actor policy.Actor, lastKnown string) (*changes.TimestampResult, error)

func (h *UpdateCheckHandler) timestamp(c *gin.Context, check timestampCheck) {
	a, ok := actor(c)
	if !ok {
		return
	}
	result, err := check(c.Request.Context(), a, c.Query("last_known"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// Tasks handles GET /check-updates/tasks
// @Summary Have visible tasks changed
// @Tags check-updates
// @Produce json
// @Param last_known query string false "Last seen last_update value"
// @Success 200 {object} changes.TimestampResult
// @Failure 400 {object} ValidationErrorResponse
// @Security BearerAuth
// @Router /check-updates/tasks [get]
func (h *UpdateCheckHandler) Tasks(c *gin.Context) {
	h.timestamp(c, h.checks.CheckTasks)
}

// Dashboard handles GET /check-updates/dashboard
// @Summary Has the dashboard changed
// @Tags check-updates
// @Produce json
// @Param last_known query string false "Last seen last_update value"
// @Success 200 {object} changes.TimestampResult
// @Failure 400 {object} ValidationErrorResponse
// @Security BearerAuth
// @Router /check-updates/dashboard [get]
func (h *UpdateCheckHandler) Dashboard(c *gin.Context) {
	h.timestamp(c, h.checks.CheckDashboard)
}

// Users handles GET /check-updates/users
// @Summary Have the team's approved members changed
// @Tags check-updates
// @Produce json
// @Param last_known query string false "Last seen last_update value"
// @Success 200 {object} changes.TimestampResult
// @Failure 400 {object} ValidationErrorResponse
// @Security BearerAuth
// @Router /check-updates/users [get]
func (h *UpdateCheckHandler) Users(c *gin.Context) {
	h.timestamp(c, h.checks.CheckUsers)
}

// PendingMembers handles GET /check-updates/pending-members
// @Summary Have membership requests changed
// @Tags check-updates
// @Produce json
// @Param last_known query string false "Last seen last_update value"
// @Success 200 {object} changes.TimestampResult
// @Failure 400 {object} ValidationErrorResponse
// @Security BearerAuth
// @Router /check-updates/pending-members [get]
func (h *UpdateCheckHandler) PendingMembers(c *gin.Context) {
	h.timestamp(c, h.checks.CheckPendingMembers)
}

// Unread handles GET /check-updates/unread
// @Summary Has the unread count changed
// @Tags check-updates
// @Produce json
// @Param last_count query int false "Last seen count"
// @Success 200 {object} changes.CountResult
// @Failure 400 {object} ValidationErrorResponse
// @Security BearerAuth
// @Router /check-updates/unread [get]
func (h *UpdateCheckHandler) Unread(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	result, err := h.checks.CheckUnread(c.Request.Context(), a, c.Query("last_count"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
