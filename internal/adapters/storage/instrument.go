// Package storage holds the RecipeStore backends and the decorators shared
// by all of them.
package storage

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen/recipe-service/internal/domain"
	"github.com/jsamuelsen/recipe-service/internal/platform/telemetry"
	"github.com/jsamuelsen/recipe-service/internal/ports"
)

const tracerName = "github.com/jsamuelsen/recipe-service/internal/adapters/storage"

// Operation outcome labels.
const (
	OutcomeOK       = "ok"
	OutcomeNotFound = "not_found"
	OutcomeError    = "error"
)

// Metrics are the store operation collectors.
type Metrics struct {
	operations *prometheus.CounterVec
	duration   *prometheus.HistogramVec
}

// NewMetrics registers the store collectors with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		operations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "recipe_store_operations_total",
				Help: "Total number of recipe store operations by outcome",
			},
			[]string{"operation", "outcome"},
		),
		duration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "recipe_store_operation_duration_seconds",
				Help:    "Recipe store operation latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
	}
}

// InstrumentedStore wraps every store call in a span and records its
// outcome and latency.
type InstrumentedStore struct {
	next    ports.RecipeStore
	metrics *Metrics
	tracer  trace.Tracer
	backend string
}

var _ ports.RecipeStore = (*InstrumentedStore)(nil)

// Instrument wraps next with metrics and tracing.
func Instrument(next ports.RecipeStore, metrics *Metrics) *InstrumentedStore {
	backend := "unknown"
	if named, ok := next.(interface{ Name() string }); ok {
		backend = named.Name()
	}

	return &InstrumentedStore{
		next:    next,
		metrics: metrics,
		tracer:  telemetry.Tracer(tracerName),
		backend: backend,
	}
}

// Insert implements ports.RecipeStore.
func (s *InstrumentedStore) Insert(ctx context.Context, recipe *domain.Recipe) (*domain.Recipe, error) {
	ctx, span, start := s.begin(ctx, "insert")

	r, err := s.next.Insert(ctx, recipe)
	s.end(span, "insert", start, err)

	return r, err
}

// Find implements ports.RecipeStore.
func (s *InstrumentedStore) Find(ctx context.Context, filter domain.RecipeFilter) ([]*domain.Recipe, error) {
	ctx, span, start := s.begin(ctx, "find")

	rs, err := s.next.Find(ctx, filter)
	s.end(span, "find", start, err)

	return rs, err
}

// FindOne implements ports.RecipeStore.
func (s *InstrumentedStore) FindOne(ctx context.Context, filter domain.RecipeFilter) (*domain.Recipe, error) {
	ctx, span, start := s.begin(ctx, "find_one")

	r, err := s.next.FindOne(ctx, filter)
	s.end(span, "find_one", start, err)

	return r, err
}

// FindOneAndUpdate implements ports.RecipeStore.
func (s *InstrumentedStore) FindOneAndUpdate(
	ctx context.Context,
	filter domain.RecipeFilter,
	changes domain.RecipeChanges,
) (*domain.Recipe, error) {
	ctx, span, start := s.begin(ctx, "find_one_and_update")

	r, err := s.next.FindOneAndUpdate(ctx, filter, changes)
	s.end(span, "find_one_and_update", start, err)

	return r, err
}

// FindOneAndDelete implements ports.RecipeStore.
func (s *InstrumentedStore) FindOneAndDelete(ctx context.Context, filter domain.RecipeFilter) (*domain.Recipe, error) {
	ctx, span, start := s.begin(ctx, "find_one_and_delete")

	r, err := s.next.FindOneAndDelete(ctx, filter)
	s.end(span, "find_one_and_delete", start, err)

	return r, err
}

func (s *InstrumentedStore) begin(ctx context.Context, op string) (context.Context, trace.Span, time.Time) {
	ctx, span := s.tracer.Start(ctx, "recipe_store."+op,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.String("db.system", s.backend)),
	)

	return ctx, span, time.Now()
}

func (s *InstrumentedStore) end(span trace.Span, op string, start time.Time, err error) {
	result := outcome(err)

	s.metrics.duration.WithLabelValues(op).Observe(time.Since(start).Seconds())
	s.metrics.operations.WithLabelValues(op, result).Inc()

	span.SetAttributes(attribute.String("recipe_store.outcome", result))
	if result == OutcomeError {
		span.RecordError(err)
		span.SetStatus(codes.Error, "store operation failed")
	}

	span.End()
}

func outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case domain.IsNotFound(err):
		return OutcomeNotFound
	default:
		return OutcomeError
	}
}
