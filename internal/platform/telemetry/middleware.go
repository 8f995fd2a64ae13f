package telemetry

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/jsamuelsen/recipe-service/internal/platform/telemetry"

// TraceIDHeader echoes the active trace ID back to the caller.
const TraceIDHeader = "X-Trace-ID"

// Metric names recorded per request.
const (
	MetricRequestDuration = "http.server.request.duration"
	MetricRequestTotal    = "http.server.request.total"
	MetricActiveRequests  = "http.server.active_requests"
)

// Metrics holds the HTTP server instruments.
type Metrics struct {
	duration metric.Float64Histogram
	total    metric.Int64Counter
	active   metric.Int64UpDownCounter
}

// NewMetrics creates the instruments on the global meter provider.
func NewMetrics() (*Metrics, error) {
	meter := otel.Meter(instrumentationName)

	var (
		m   Metrics
		err error
	)

	if m.duration, err = meter.Float64Histogram(MetricRequestDuration,
		metric.WithDescription("HTTP request duration in seconds"),
		metric.WithUnit("s"),
	); err != nil {
		return nil, err
	}

	if m.total, err = meter.Int64Counter(MetricRequestTotal,
		metric.WithDescription("Total number of HTTP requests"),
	); err != nil {
		return nil, err
	}

	if m.active, err = meter.Int64UpDownCounter(MetricActiveRequests,
		metric.WithDescription("Number of in-flight HTTP requests"),
	); err != nil {
		return nil, err
	}

	return &m, nil
}

// Middleware returns the tracing and request metrics handlers, tracing
// first so the metrics handler sees the request span.
func Middleware(serviceName string) []gin.HandlerFunc {
	return []gin.HandlerFunc{
		otelgin.Middleware(serviceName),
		MetricsMiddleware(),
	}
}

// MetricsMiddleware records request metrics by route and sets the
// X-Trace-ID header.
func MetricsMiddleware() gin.HandlerFunc {
	metrics, err := NewMetrics()
	if err != nil {
		otel.Handle(err)
	}

	return func(c *gin.Context) {
		ctx := c.Request.Context()

		// Set before the handler writes the body.
		if traceID := TraceID(ctx); traceID != "" {
			c.Header(TraceIDHeader, traceID)
		}

		if metrics == nil {
			c.Next()
			return
		}

		metrics.observe(ctx, c)
	}
}

func (m *Metrics) observe(ctx context.Context, c *gin.Context) {
	start := time.Now()
	inFlight := metric.WithAttributes(
		attribute.String("http.method", c.Request.Method),
		attribute.String("http.route", c.FullPath()),
	)

	m.active.Add(ctx, 1, inFlight)
	defer m.active.Add(ctx, -1, inFlight)

	c.Next()

	done := metric.WithAttributes(
		attribute.String("http.method", c.Request.Method),
		attribute.String("http.route", c.FullPath()),
		attribute.Int("http.status_code", c.Writer.Status()),
	)
	m.duration.Record(ctx, time.Since(start).Seconds(), done)
	m.total.Add(ctx, 1, done)
}

// TraceID returns the trace ID of the span in ctx, or "".
func TraceID(ctx context.Context) string {
	sc := trace.SpanFromContext(ctx).SpanContext()
	if !sc.HasTraceID() {
		return ""
	}

	return sc.TraceID().String()
}

// Tracer returns a named tracer from the global provider.
func Tracer(name string) trace.Tracer {
	return otel.Tracer(name)
}
