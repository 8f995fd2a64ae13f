// Package middleware provides HTTP middleware for the Gin framework.
package middleware

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/recipe-service/internal/platform/logging"
)

// Logger puts logger into every request context, so the ID middleware
// and the handlers below it enrich the service logger rather than the
// process default.
func Logger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request = c.Request.WithContext(logging.WithContext(c.Request.Context(), logger))
		c.Next()
	}
}
