// Package dto provides Data Transfer Objects for HTTP request/response handling.
package dto

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/recipe-service/internal/domain"
	"github.com/jsamuelsen/recipe-service/internal/platform/logging"
	"github.com/jsamuelsen/recipe-service/internal/platform/telemetry"
)

// ErrorResponse is the envelope for every error body the service writes.
type ErrorResponse struct {
	// Error is the human-readable message clients have always received.
	Error string `json:"error"`

	// Code is a machine-readable error code (e.g., "NOT_FOUND").
	Code string `json:"code"`

	// Details carries field-level messages for validation failures.
	Details map[string]string `json:"details,omitempty"`

	TraceID string `json:"traceId,omitempty"`
}

// Error codes for machine-readable error identification.
const (
	ErrorCodeNotFound    = "NOT_FOUND"
	ErrorCodeValidation  = "VALIDATION_ERROR"
	ErrorCodeInternal    = "INTERNAL_ERROR"
	ErrorCodeTimeout     = "TIMEOUT"
	ErrorCodeUnavailable = "SERVICE_UNAVAILABLE"
)

// traceIDKey is the gin context key a caller may use to pin a trace ID.
const traceIDKey = "trace_id"

// NewErrorResponse creates a new error response with the given code and message.
func NewErrorResponse(code, message string) *ErrorResponse {
	return &ErrorResponse{Error: message, Code: code}
}

// NewErrorResponseWithDetails creates an error response with field details.
func NewErrorResponseWithDetails(code, message string, details map[string]string) *ErrorResponse {
	return &ErrorResponse{Error: message, Code: code, Details: details}
}

// WithTraceID adds a trace ID to the error response.
func (e *ErrorResponse) WithTraceID(traceID string) *ErrorResponse {
	e.TraceID = traceID
	return e
}

// HTTPStatusFromCode maps error codes to HTTP status codes.
func HTTPStatusFromCode(code string) int {
	switch code {
	case ErrorCodeNotFound:
		return http.StatusNotFound
	case ErrorCodeValidation:
		return http.StatusBadRequest
	case ErrorCodeUnavailable, ErrorCodeTimeout:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// Messages are the client-facing texts of one recipe operation.
type Messages struct {
	// NotFound is returned when the operation matched nothing.
	NotFound string

	// Failure is returned for any store error. It never carries the cause.
	Failure string
}

// Per-operation messages.
var (
	CreateMessages = Messages{Failure: "Failed to add the recipe."}
	ListMessages   = Messages{NotFound: "No recipes found.", Failure: "Failed to fetch recipes."}
	GetMessages    = Messages{NotFound: "Recipe not found.", Failure: "Failed to fetch recipe."}
	UpdateMessages = Messages{NotFound: "Recipe does not exist.", Failure: "Failed to update the recipe."}
	DeleteMessages = Messages{NotFound: "Recipe does not exist.", Failure: "Failed to delete the recipe."}
)

// GetTraceID returns the trace ID of the request span, falling back to a
// value pinned in the gin context.
func GetTraceID(c *gin.Context) string {
	if id := telemetry.TraceID(c.Request.Context()); id != "" {
		return id
	}

	if id, ok := c.Get(traceIDKey); ok {
		if s, ok := id.(string); ok {
			return s
		}
	}

	return ""
}

// HandleError writes the error envelope for err using the operation's
// messages. Validation problems are echoed back; every other failure is
// logged and answered with msgs.Failure.
func HandleError(c *gin.Context, err error, msgs Messages) {
	c.JSON(errorResponse(c, err, msgs))
}

func errorResponse(c *gin.Context, err error, msgs Messages) (int, *ErrorResponse) {
	traceID := GetTraceID(c)

	var verr *domain.ValidationError

	switch {
	case errors.As(err, &verr):
		return http.StatusBadRequest, NewErrorResponseWithDetails(
			ErrorCodeValidation, "request validation failed", verr.Fields,
		).WithTraceID(traceID)

	case domain.IsNotFound(err) && msgs.NotFound != "":
		return http.StatusNotFound, NewErrorResponse(ErrorCodeNotFound, msgs.NotFound).WithTraceID(traceID)
	}

	logging.FromContext(c.Request.Context()).Error("recipe operation failed",
		slog.String("error", err.Error()),
		slog.String("path", c.FullPath()),
		slog.String("trace_id", traceID),
	)

	failure := msgs.Failure
	if failure == "" {
		failure = "an internal error occurred"
	}

	return http.StatusInternalServerError, NewErrorResponse(ErrorCodeInternal, failure).WithTraceID(traceID)
}
