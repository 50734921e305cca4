package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	apperrors "task-manager-backend/internal/errors"
	"task-manager-backend/internal/logger"
	"task-manager-backend/internal/policy"
	"task-manager-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const actorKey = "actor"

// ActorLoader resolves a token subject into the user the request acts as
type ActorLoader interface {
	LoadActor(ctx context.Context, userID uuid.UUID) (policy.Actor, error)
}

// AuthMiddleware provides JWT authentication middleware
type AuthMiddleware struct {
	service *AuthService
	actors  ActorLoader
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(service *AuthService, actors ActorLoader) *AuthMiddleware {
	return &AuthMiddleware{service: service, actors: actors}
}

func abort(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, gin.H{"error": message})
}

// RequireAuth validates the bearer token, loads the current user and stores
// the actor in the context. The user is reloaded on every request so role and
// team changes apply immediately.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abort(c, http.StatusUnauthorized, apperrors.ErrMissingAuthentication.Error())
			return
		}

		// Extract token from Bearer header
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			abort(c, http.StatusUnauthorized, "Invalid authorization header format")
			return
		}

		claims, err := m.service.ValidateJWT(tokenString)
		if err != nil {
			abort(c, http.StatusUnauthorized, apperrors.ErrInvalidToken.Error())
			return
		}
		userID, err := claims.UserID()
		if err != nil {
			abort(c, http.StatusUnauthorized, err.Error())
			return
		}

		ctx := logger.ContextWithUser(c.Request.Context(), userID.String())
		actor, err := m.actors.LoadActor(ctx, userID)
		if err != nil {
			if errors.Is(err, apperrors.ErrUserNotFound) {
				abort(c, http.StatusUnauthorized, apperrors.ErrInvalidToken.Error())
				return
			}
			logger.WithContext(ctx).WithError(err).Error("Failed to load current user")
			abort(c, http.StatusInternalServerError, "internal server error")
			return
		}

		c.Request = c.Request.WithContext(ctx)
		c.Set(actorKey, actor)
		c.Next()
	}
}

// RequireOnboarded blocks users who have not chosen a role, joined a team, or
// been approved yet. Must run after RequireAuth.
func (m *AuthMiddleware) RequireOnboarded() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := GetActor(c)
		if !ok {
			abort(c, http.StatusUnauthorized, apperrors.ErrMissingAuthentication.Error())
			return
		}
		if err := service.GateError(actor); err != nil {
			abort(c, http.StatusForbidden, err.Error())
			return
		}
		c.Next()
	}
}

// GetActor returns the actor stored by RequireAuth
func GetActor(c *gin.Context) (policy.Actor, bool) {
	v, exists := c.Get(actorKey)
	if !exists {
		return policy.Actor{}, false
	}
	actor, ok := v.(policy.Actor)
	return actor, ok
}

// SetActor stores the actor for the rest of the chain
func SetActor(c *gin.Context, actor policy.Actor) {
	c.Set(actorKey, actor)
}
