package handlers

import (
	"net/http"

	"task-manager-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// OnboardingHandler serves the profile and the role selection steps
type OnboardingHandler struct {
	onboardingService service.OnboardingServiceInterface
}

// NewOnboardingHandler creates a new onboarding handler
func NewOnboardingHandler(onboardingService service.OnboardingServiceInterface) *OnboardingHandler {
	return &OnboardingHandler{
		onboardingService: onboardingService,
	}
}

// Me handles GET /me
// @Summary Current user's profile
// @Description Profile, team and the onboarding stage the client should show
// @Tags onboarding
// @Produce json
// @Success 200 {object} service.ProfileResponse
// @Security BearerAuth
// @Router /me [get]
func (h *OnboardingHandler) Me(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	profile, err := h.onboardingService.Profile(c.Request.Context(), a)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// SelectRole handles POST /onboarding/role
// @Summary Choose manager or member
// @Tags onboarding
// @Accept json
// @Produce json
// @Param role body service.SelectRoleRequest true "pm or member"
// @Success 200 {object} service.ProfileResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 403 {object} ErrorResponse "Already in a team"
// @Security BearerAuth
// @Router /onboarding/role [post]
func (h *OnboardingHandler) SelectRole(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	var req service.SelectRoleRequest
	if !bindJSON(c, &req) {
		return
	}
	profile, err := h.onboardingService.SelectRole(c.Request.Context(), a, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// Cancel handles POST /onboarding/cancel
// @Summary Undo the role choice
// @Tags onboarding
// @Produce json
// @Success 200 {object} service.ProfileResponse
// @Failure 403 {object} ErrorResponse "Already in a team"
// @Security BearerAuth
// @Router /onboarding/cancel [post]
func (h *OnboardingHandler) Cancel(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	profile, err := h.onboardingService.Cancel(c.Request.Context(), a)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}
