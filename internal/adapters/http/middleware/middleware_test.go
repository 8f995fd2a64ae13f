package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/recipe-service/internal/adapters/http/dto"
	"github.com/jsamuelsen/recipe-service/internal/platform/logging"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// bufferLogger returns a JSON logger writing to a buffer, one record per line.
func bufferLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})), &buf
}

func logRecords(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()

	var records []map[string]any

	for line := range strings.Lines(buf.String()) {
		var rec map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &rec))
		records = append(records, rec)
	}

	return records
}

func TestIDMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		middleware gin.HandlerFunc
		header     string
		logKey     string
	}{
		{name: "request ID", middleware: RequestID(), header: HeaderRequestID, logKey: "request_id"},
		{name: "correlation ID", middleware: CorrelationID(), header: HeaderCorrelationID, logKey: "correlation_id"},
	}

	for _, tt := range tests {
		for _, incoming := range []string{"", "upstream-123"} {
			t.Run(tt.name+"/"+incoming, func(t *testing.T) {
				logger, buf := bufferLogger()

				router := gin.New()
				router.Use(Logger(logger), tt.middleware)
				router.GET("/recipes", func(c *gin.Context) {
					logging.FromContext(c.Request.Context()).Info("handled")
					c.Status(http.StatusOK)
				})

				req := httptest.NewRequest(http.MethodGet, "/recipes", nil)
				if incoming != "" {
					req.Header.Set(tt.header, incoming)
				}

				w := httptest.NewRecorder()
				router.ServeHTTP(w, req)

				got := w.Header().Get(tt.header)
				if incoming != "" {
					assert.Equal(t, incoming, got)
				} else {
					_, err := uuid.Parse(got)
					assert.NoError(t, err)
				}

				records := logRecords(t, buf)
				require.Len(t, records, 1)
				assert.Equal(t, got, records[0][tt.logKey])
			})
		}
	}
}

func TestLogging(t *testing.T) {
	tests := []struct {
		name      string
		path      string
		status    int
		wantLevel string
	}{
		{"success", "/recipes?author=Ana", http.StatusOK, "INFO"},
		{"not found", "/recipes", http.StatusNotFound, "WARN"},
		{"store failure", "/recipes", http.StatusInternalServerError, "ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, buf := bufferLogger()

			router := gin.New()
			router.Use(Logging(logger))
			router.GET("/recipes", func(c *gin.Context) { c.Status(tt.status) })

			router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, tt.path, nil))

			records := logRecords(t, buf)
			require.Len(t, records, 2)

			assert.Equal(t, "request started", records[0]["msg"])
			assert.Equal(t, tt.path, records[0]["path"])

			assert.Equal(t, "request completed", records[1]["msg"])
			assert.Equal(t, tt.wantLevel, records[1]["level"])
			assert.Equal(t, "/recipes", records[1]["route"])
			assert.InDelta(t, tt.status, records[1]["status"], 0)
		})
	}
}

func TestLogging_SkipsPaths(t *testing.T) {
	logger, buf := bufferLogger()

	router := gin.New()
	router.Use(Logging(logger, "/favicon.ico"))
	router.GET("/-/ready", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.GET("/favicon.ico", func(c *gin.Context) { c.Status(http.StatusOK) })

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/-/ready", nil))
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/favicon.ico", nil))

	assert.Empty(t, buf.String())
}

func TestRecovery(t *testing.T) {
	t.Run("normal request passes through", func(t *testing.T) {
		router := gin.New()
		router.Use(Recovery(slog.New(slog.NewTextHandler(io.Discard, nil))))
		router.GET("/recipes", func(c *gin.Context) { c.Status(http.StatusOK) })

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/recipes", nil))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("panicking handler returns the error envelope", func(t *testing.T) {
		logger, buf := bufferLogger()

		router := gin.New()
		router.Use(Recovery(logger))
		router.GET("/recipes", func(*gin.Context) { panic("nil store") })

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/recipes", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)

		var resp dto.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, dto.ErrorCodeInternal, resp.Code)
		assert.Equal(t, "an internal error occurred", resp.Error)

		records := logRecords(t, buf)
		require.Len(t, records, 1)
		assert.Equal(t, "panic recovered", records[0]["msg"])
		assert.Equal(t, "nil store", records[0]["error"])
		assert.Contains(t, records[0]["stack"], "runtime/debug.Stack")
	})
}

func TestTimeout(t *testing.T) {
	t.Run("sets context deadline", func(t *testing.T) {
		var hasDeadline bool

		router := gin.New()
		router.Use(Timeout(5 * time.Second))
		router.GET("/recipes", func(c *gin.Context) {
			_, hasDeadline = c.Request.Context().Deadline()
			c.Status(http.StatusOK)
		})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/recipes", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, hasDeadline)
	})

	t.Run("expired request without a response", func(t *testing.T) {
		router := gin.New()
		router.Use(Timeout(10 * time.Millisecond))
		router.GET("/recipes", func(c *gin.Context) {
			<-c.Request.Context().Done()
		})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/recipes", nil))

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Contains(t, w.Body.String(), dto.ErrorCodeTimeout)
	})

	t.Run("handler response wins", func(t *testing.T) {
		router := gin.New()
		router.Use(Timeout(10 * time.Millisecond))
		router.GET("/recipes", func(c *gin.Context) {
			<-c.Request.Context().Done()
			c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(dto.ErrorCodeInternal, "Failed to fetch recipes."))
		})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/recipes", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "Failed to fetch recipes.")
	})
}
