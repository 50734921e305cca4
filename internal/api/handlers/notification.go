package handlers

import (
	"net/http"

	"task-manager-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// NotificationHandler hands out queued notifications
type NotificationHandler struct {
	notificationService service.NotificationServiceInterface
}

// NewNotificationHandler creates a new notification handler
func NewNotificationHandler(notificationService service.NotificationServiceInterface) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

// Drain handles GET /notifications
// @Summary Fetch and clear pending notifications
// @Description Every notification is returned once
// @Tags notifications
// @Produce json
// @Success 200 {array} notify.Notification
// @Security BearerAuth
// @Router /notifications [get]
func (h *NotificationHandler) Drain(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	items, err := h.notificationService.Drain(c.Request.Context(), a)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}
