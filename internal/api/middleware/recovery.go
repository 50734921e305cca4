package middleware

import (
	"fmt"
	"net/http"
	"time"

	"task-manager-backend/internal/logger"

	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"
)

// Recovery turns a panic into a 500, logs it and reports it to Sentry when a
// client is configured
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				hub := sentry.CurrentHub().Clone()
				hub.Scope().SetRequest(c.Request)
				hub.RecoverWithContext(c.Request.Context(), r)
				hub.Flush(2 * time.Second)

				logger.WithContext(c.Request.Context()).
					WithField("panic", fmt.Sprint(r)).
					Error("Recovered from panic")
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			}
		}()
		c.Next()
	}
}
