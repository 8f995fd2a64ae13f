package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"runtime"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/recipe-service/internal/mocks"
	"github.com/jsamuelsen/recipe-service/internal/ports"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// healthRouter mounts h under /- on a fresh engine.
func healthRouter(h *HealthHandler) *gin.Engine {
	router := gin.New()
	h.RegisterHealthRoutesOnEngine(router)

	return router
}

func get(router http.Handler, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, http.NoBody))

	return w
}

func TestHealthHandler_Liveness(t *testing.T) {
	// The mock has no expectations: liveness must not run any checks.
	h := NewHealthHandler(mocks.NewMockHealthRegistry(t), BuildInfo{}, nil)

	w := get(healthRouter(h), "/-/live")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestHealthHandler_Readiness(t *testing.T) {
	tests := []struct {
		name     string
		result   *ports.HealthResult
		wantCode int
	}{
		{
			name: "store reachable",
			result: &ports.HealthResult{
				Status: ports.HealthStatusHealthy,
				Checks: map[string]*ports.CheckResult{"mongodb": {Status: ports.HealthStatusHealthy}},
			},
			wantCode: http.StatusOK,
		},
		{
			name: "store unreachable",
			result: &ports.HealthResult{
				Status: ports.HealthStatusUnhealthy,
				Checks: map[string]*ports.CheckResult{
					"mongodb": {Status: ports.HealthStatusUnhealthy, Message: "server selection timeout"},
				},
			},
			wantCode: http.StatusServiceUnavailable,
		},
		{
			name:     "nothing registered",
			result:   &ports.HealthResult{Status: ports.HealthStatusHealthy},
			wantCode: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			registry := mocks.NewMockHealthRegistry(t)
			registry.EXPECT().CheckAll(mock.Anything).Return(tt.result).Once()

			w := get(healthRouter(NewHealthHandler(registry, NewBuildInfo("1.4.0", "", ""), nil)), "/-/ready")

			assert.Equal(t, tt.wantCode, w.Code)

			var resp readinessResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, string(tt.result.Status), resp.Status)
			assert.Equal(t, "1.4.0", resp.Version)
			assert.Len(t, resp.Checks, len(tt.result.Checks))

			for name, check := range tt.result.Checks {
				require.Contains(t, resp.Checks, name)
				assert.Equal(t, check.Message, resp.Checks[name].Message)
			}
		})
	}
}

type pingFailure struct{}

func (pingFailure) Name() string { return "mongodb" }

func (pingFailure) Check(context.Context) error {
	return errors.New("connection refused")
}

func TestHealthHandler_ReadinessWithRegistry(t *testing.T) {
	registry := ports.NewHealthRegistry()
	require.NoError(t, registry.Register(pingFailure{}))

	w := get(healthRouter(NewHealthHandler(registry, BuildInfo{}, nil)), "/-/ready")

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "connection refused")
}

func TestHealthHandler_BuildInfo(t *testing.T) {
	info := NewBuildInfo("1.2.3", "def456", "2025-03-01T12:00:00Z")
	assert.Equal(t, runtime.Version(), info.GoVersion)

	w := get(healthRouter(NewHealthHandler(mocks.NewMockHealthRegistry(t), info, nil)), "/-/build")

	assert.Equal(t, http.StatusOK, w.Code)

	var resp BuildInfo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, info, resp)
}

func TestHealthHandler_Metrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	promauto.With(reg).NewCounter(prometheus.CounterOpts{
		Name: "recipe_store_operations_sample_total",
		Help: "Sample counter.",
	}).Inc()

	w := get(healthRouter(NewHealthHandler(mocks.NewMockHealthRegistry(t), BuildInfo{}, reg)), "/-/metrics")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/plain")
	assert.Contains(t, w.Body.String(), "recipe_store_operations_sample_total 1")
}

func TestHealthHandler_Routes(t *testing.T) {
	router := healthRouter(NewHealthHandler(mocks.NewMockHealthRegistry(t), BuildInfo{}, nil))

	var got []string
	for _, r := range router.Routes() {
		got = append(got, r.Method+" "+r.Path)
	}

	assert.ElementsMatch(t, []string{"GET /-/live", "GET /-/ready", "GET /-/build", "GET /-/metrics"}, got)
}
