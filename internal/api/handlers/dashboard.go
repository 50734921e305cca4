package handlers

import (
	"net/http"

	"task-manager-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// DashboardHandler serves the dashboard
type DashboardHandler struct {
	dashboardService service.DashboardServiceInterface
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService service.DashboardServiceInterface) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// Get handles GET /dashboard
// @Summary Dashboard statistics
// @Description Counters over the caller's visible tasks plus recent and upcoming lists
// @Tags dashboard
// @Produce json
// @Success 200 {object} service.DashboardResponse
// @Security BearerAuth
// @Router /dashboard [get]
func (h *DashboardHandler) Get(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	resp, err := h.dashboardService.Get(c.Request.Context(), a)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
