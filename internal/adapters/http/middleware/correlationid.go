package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/recipe-service/internal/platform/logging"
)

// HeaderCorrelationID follows a business transaction across services; the
// request ID identifies a single hop.
const HeaderCorrelationID = "X-Correlation-ID"

// CorrelationID returns middleware that propagates or originates
// X-Correlation-ID and adds it to the request logger.
func CorrelationID() gin.HandlerFunc {
	return idMiddleware(HeaderCorrelationID, logging.WithCorrelationID)
}
