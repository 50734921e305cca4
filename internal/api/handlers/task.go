package handlers

import (
	"net/http"

	apperrors "task-manager-backend/internal/errors"
	"task-manager-backend/internal/service"
	"task-manager-backend/internal/visibility"

	"github.com/gin-gonic/gin"
)

// TaskHandler handles HTTP requests for task operations
type TaskHandler struct {
	taskService service.TaskServiceInterface
}

// NewTaskHandler creates a new task handler
func NewTaskHandler(taskService service.TaskServiceInterface) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

// UnreadCountResponse is the member's unread task count
type UnreadCountResponse struct {
	Count int64 `json:"count"`
}

// ListTasks handles GET /tasks
// @Summary List visible tasks
// @Description Managers get {kind:"partitioned", myTasks, teamTasks}; members get {kind:"flat", data}. Listing marks the member's unread tasks as viewed.
// @Tags tasks
// @Produce json
// @Param status query string false "pending, in_progress, completed or cancelled"
// @Param priority query string false "low, medium, high or urgent"
// @Param assigned_to query string false "Assignee user id (managers only)"
// @Param search query string false "Matches title or description"
// @Param sort_by query string false "Column to sort by, e.g. created_at, due_date, priority"
// @Param sort_order query string false "asc or desc"
// @Success 200 {object} service.TaskListResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /tasks [get]
func (h *TaskHandler) ListTasks(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	var filters visibility.Filters
	if err := c.ShouldBindQuery(&filters); err != nil {
		respondError(c, apperrors.NewValidationError("query", "invalid query parameters"))
		return
	}

	resp, err := h.taskService.ListAndAcknowledge(c.Request.Context(), a, filters)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UnreadCount handles GET /tasks/unread-count
// @Summary Count unread assigned tasks
// @Tags tasks
// @Produce json
// @Success 200 {object} UnreadCountResponse
// @Security BearerAuth
// @Router /tasks/unread-count [get]
func (h *TaskHandler) UnreadCount(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	count, err := h.taskService.UnreadCount(c.Request.Context(), a)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, UnreadCountResponse{Count: count})
}

// GetTask handles GET /tasks/:id
// @Summary Get a task
// @Tags tasks
// @Produce json
// @Param id path string true "Task ID (UUID)"
// @Success 200 {object} service.TaskResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /tasks/{id} [get]
func (h *TaskHandler) GetTask(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id", "task")
	if !ok {
		return
	}
	task, err := h.taskService.GetTask(c.Request.Context(), a, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

// CreateTask handles POST /tasks
// @Summary Create a task
// @Tags tasks
// @Accept json
// @Produce json
// @Param task body service.CreateTaskRequest true "Task data"
// @Success 201 {object} service.TaskResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /tasks [post]
func (h *TaskHandler) CreateTask(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	var req service.CreateTaskRequest
	if !bindJSON(c, &req) {
		return
	}
	task, err := h.taskService.CreateTask(c.Request.Context(), a, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, task)
}

// UpdateTask handles PUT /tasks/:id
// @Summary Update a task
// @Description Managers may change every field; members only status and actual_time.
// @Tags tasks
// @Accept json
// @Produce json
// @Param id path string true "Task ID (UUID)"
// @Param task body service.UpdateTaskRequest true "Fields to change"
// @Success 200 {object} service.TaskResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /tasks/{id} [put]
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id", "task")
	if !ok {
		return
	}
	var req service.UpdateTaskRequest
	if !bindJSON(c, &req) {
		return
	}
	task, err := h.taskService.UpdateTask(c.Request.Context(), a, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

// DeleteTask handles DELETE /tasks/:id
// @Summary Soft-delete a task
// @Tags tasks
// @Param id path string true "Task ID (UUID)"
// @Success 204 "Task deleted"
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /tasks/{id} [delete]
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id", "task")
	if !ok {
		return
	}
	if err := h.taskService.DeleteTask(c.Request.Context(), a, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// RestoreTask handles POST /tasks/:id/restore
// @Summary Restore a soft-deleted task
// @Tags tasks
// @Produce json
// @Param id path string true "Task ID (UUID)"
// @Success 200 {object} service.TaskResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /tasks/{id}/restore [post]
func (h *TaskHandler) RestoreTask(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id", "task")
	if !ok {
		return
	}
	task, err := h.taskService.RestoreTask(c.Request.Context(), a, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}
