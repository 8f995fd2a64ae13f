package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/recipe-service/internal/platform/logging"
)

// HeaderRequestID is the header name for request ID.
const HeaderRequestID = "X-Request-ID"

// RequestID returns middleware that propagates or generates X-Request-ID
// and adds it to the request logger.
func RequestID() gin.HandlerFunc {
	return idMiddleware(HeaderRequestID, logging.WithRequestID)
}
