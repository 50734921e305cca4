package handlers

import (
	"net/http"

	"task-manager-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// SubtaskHandler handles HTTP requests for subtasks of a task
type SubtaskHandler struct {
	subtaskService service.SubtaskServiceInterface
}

// NewSubtaskHandler creates a new subtask handler
func NewSubtaskHandler(subtaskService service.SubtaskServiceInterface) *SubtaskHandler {
	return &SubtaskHandler{
		subtaskService: subtaskService,
	}
}

// ListSubtasks handles GET /tasks/:id/subtasks
// @Summary List a task's subtasks
// @Tags subtasks
// @Produce json
// @Param id path string true "Task ID (UUID)"
// @Success 200 {array} service.SubtaskResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /tasks/{id}/subtasks [get]
func (h *SubtaskHandler) ListSubtasks(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	taskID, ok := parseUUIDParam(c, "id", "task")
	if !ok {
		return
	}
	subtasks, err := h.subtaskService.List(c.Request.Context(), a, taskID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, subtasks)
}

// CreateSubtask handles POST /tasks/:id/subtasks
// @Summary Add a subtask
// @Tags subtasks
// @Accept json
// @Produce json
// @Param id path string true "Task ID (UUID)"
// @Param subtask body service.CreateSubtaskRequest true "Subtask data"
// @Success 201 {object} service.SubtaskResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /tasks/{id}/subtasks [post]
func (h *SubtaskHandler) CreateSubtask(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	taskID, ok := parseUUIDParam(c, "id", "task")
	if !ok {
		return
	}
	var req service.CreateSubtaskRequest
	if !bindJSON(c, &req) {
		return
	}
	subtask, err := h.subtaskService.Create(c.Request.Context(), a, taskID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, subtask)
}

// UpdateSubtask handles PUT /tasks/:id/subtasks/:subtaskId
// @Summary Update a subtask
// @Tags subtasks
// @Accept json
// @Produce json
// @Param id path string true "Task ID (UUID)"
// @Param subtaskId path string true "Subtask ID (UUID)"
// @Param subtask body service.UpdateSubtaskRequest true "Fields to change"
// @Success 200 {object} service.SubtaskResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /tasks/{id}/subtasks/{subtaskId} [put]
func (h *SubtaskHandler) UpdateSubtask(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	taskID, ok := parseUUIDParam(c, "id", "task")
	if !ok {
		return
	}
	subtaskID, ok := parseUUIDParam(c, "subtaskId", "subtask")
	if !ok {
		return
	}
	var req service.UpdateSubtaskRequest
	if !bindJSON(c, &req) {
		return
	}
	subtask, err := h.subtaskService.Update(c.Request.Context(), a, taskID, subtaskID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, subtask)
}

// DeleteSubtask handles DELETE /tasks/:id/subtasks/:subtaskId
// @Summary Delete a subtask
// @Tags subtasks
// @Param id path string true "Task ID (UUID)"
// @Param subtaskId path string true "Subtask ID (UUID)"
// @Success 204 "Subtask deleted"
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /tasks/{id}/subtasks/{subtaskId} [delete]
func (h *SubtaskHandler) DeleteSubtask(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	taskID, ok := parseUUIDParam(c, "id", "task")
	if !ok {
		return
	}
	subtaskID, ok := parseUUIDParam(c, "subtaskId", "subtask")
	if !ok {
		return
	}
	if err := h.subtaskService.Delete(c.Request.Context(), a, taskID, subtaskID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ReorderSubtasks handles POST /tasks/:id/subtasks/reorder
// @Summary Reorder subtasks
// @Tags subtasks
// @Accept json
// @Param id path string true "Task ID (UUID)"
// @Param order body service.ReorderSubtasksRequest true "New positions"
// @Success 204 "Subtasks reordered"
// @Failure 400 {object} ValidationErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /tasks/{id}/subtasks/reorder [post]
func (h *SubtaskHandler) ReorderSubtasks(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	taskID, ok := parseUUIDParam(c, "id", "task")
	if !ok {
		return
	}
	var req service.ReorderSubtasksRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.subtaskService.Reorder(c.Request.Context(), a, taskID, &req); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
