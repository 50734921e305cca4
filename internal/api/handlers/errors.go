package handlers

import (
	"net/http"

	"task-manager-backend/internal/auth"
	apperrors "task-manager-backend/internal/errors"
	"task-manager-backend/internal/logger"
	"task-manager-backend/internal/policy"

	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ValidationErrorResponse is returned for rejected request bodies and queries
type ValidationErrorResponse struct {
	Error  string                 `json:"error" example:"validation failed"`
	Fields []apperrors.FieldError `json:"fields"`
}

// respondError maps an application error to its HTTP status. Anything
// unrecognised is logged, reported and hidden behind a generic 500.
func respondError(c *gin.Context, err error) {
	switch {
	case apperrors.IsValidation(err):
		fields := apperrors.FieldsOf(err)
		if fields == nil {
			fields = []apperrors.FieldError{}
		}
		c.JSON(http.StatusBadRequest, ValidationErrorResponse{Error: "validation failed", Fields: fields})
	case apperrors.IsAuthentication(err):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: err.Error()})
	case apperrors.IsAuthorization(err):
		c.JSON(http.StatusForbidden, ErrorResponse{Error: err.Error()})
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case apperrors.IsIntegrity(err), apperrors.IsAlreadyExists(err):
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	default:
		logger.WithContext(c.Request.Context()).WithError(err).
			WithField("path", c.FullPath()).
			Error("Request failed")
		if hub := sentry.CurrentHub(); hub.Client() != nil {
			hub.CaptureException(err)
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
	}
}

// bindJSON decodes the body; a malformed body is a validation failure on "body"
func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		respondError(c, apperrors.NewValidationError("body", "invalid JSON request body"))
		return false
	}
	return true
}

func parseUUIDParam(c *gin.Context, name, entity string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		// an id that cannot exist is reported the same as a missing one
		respondError(c, apperrors.NewNotFoundError(entity))
		return uuid.Nil, false
	}
	return id, true
}

// actor returns the authenticated actor; routes are always behind RequireAuth
func actor(c *gin.Context) (policy.Actor, bool) {
	a, ok := auth.GetActor(c)
	if !ok {
		respondError(c, apperrors.ErrMissingAuthentication)
	}
	return a, ok
}
