package ports

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubChecker fails with err, or blocks until ctx ends when block is set.
type stubChecker struct {
	name  string
	err   error
	block bool
	calls atomic.Int32
}

func (s *stubChecker) Name() string { return s.name }

func (s *stubChecker) Check(ctx context.Context) error {
	s.calls.Add(1)

	if s.block {
		<-ctx.Done()
		return ctx.Err()
	}

	return s.err
}

func TestRegister(t *testing.T) {
	registry := NewHealthRegistry()

	require.NoError(t, registry.Register(&stubChecker{name: "mongodb"}))
	require.NoError(t, registry.Register(&stubChecker{name: "memory"}))

	err := registry.Register(&stubChecker{name: "mongodb"})
	require.ErrorIs(t, err, ErrDuplicateChecker)
	assert.Contains(t, err.Error(), "mongodb")

	assert.Len(t, registry.CheckAll(context.Background()).Checks, 2)
}

func TestCheckAll(t *testing.T) {
	tests := []struct {
		name     string
		checkers []*stubChecker
		want     HealthStatus
		messages map[string]string
	}{
		{
			name: "no checkers",
			want: HealthStatusHealthy,
		},
		{
			name:     "store reachable",
			checkers: []*stubChecker{{name: "mongodb"}},
			want:     HealthStatusHealthy,
			messages: map[string]string{"mongodb": ""},
		},
		{
			name: "store unreachable",
			checkers: []*stubChecker{
				{name: "mongodb", err: errors.New("server selection error")},
				{name: "cache"},
			},
			want:     HealthStatusUnhealthy,
			messages: map[string]string{"mongodb": "server selection error", "cache": ""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			registry := NewHealthRegistry()
			for _, c := range tt.checkers {
				require.NoError(t, registry.Register(c))
			}

			result := registry.CheckAll(context.Background())

			assert.Equal(t, tt.want, result.Status)
			assert.False(t, result.Timestamp.IsZero())
			require.Len(t, result.Checks, len(tt.checkers))

			for name, msg := range tt.messages {
				check := result.Checks[name]
				require.NotNil(t, check, name)
				assert.Equal(t, msg, check.Message)

				wantStatus := HealthStatusHealthy
				if msg != "" {
					wantStatus = HealthStatusUnhealthy
				}

				assert.Equal(t, wantStatus, check.Status, name)
			}

			for _, c := range tt.checkers {
				assert.Equal(t, int32(1), c.calls.Load(), c.name)
			}
		})
	}
}

func TestCheckAll_Deadlines(t *testing.T) {
	t.Run("per-check timeout", func(t *testing.T) {
		registry := NewHealthRegistry(WithCheckTimeout(10 * time.Millisecond))
		require.NoError(t, registry.Register(&stubChecker{name: "mongodb", block: true}))

		result := registry.CheckAll(context.Background())

		assert.Equal(t, HealthStatusUnhealthy, result.Status)
		assert.Contains(t, result.Checks["mongodb"].Message, "deadline exceeded")
	})

	t.Run("caller cancellation", func(t *testing.T) {
		registry := NewHealthRegistry(WithCheckTimeout(0))
		require.NoError(t, registry.Register(&stubChecker{name: "mongodb", block: true}))

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		result := registry.CheckAll(ctx)

		assert.Equal(t, HealthStatusUnhealthy, result.Status)
		assert.Contains(t, result.Checks["mongodb"].Message, "context canceled")
	})

	t.Run("a slow check does not cancel the others", func(t *testing.T) {
		registry := NewHealthRegistry(WithCheckTimeout(20 * time.Millisecond))
		fast := &stubChecker{name: "memory"}
		require.NoError(t, registry.Register(&stubChecker{name: "mongodb", block: true}))
		require.NoError(t, registry.Register(fast))

		result := registry.CheckAll(context.Background())

		assert.Equal(t, HealthStatusHealthy, result.Checks["memory"].Status)
		assert.Equal(t, HealthStatusUnhealthy, result.Checks["mongodb"].Status)
	})
}

// gaugeChecker records how many checks sharing inFlight ran at once.
type gaugeChecker struct {
	name     string
	inFlight *atomic.Int32
	peak     *atomic.Int32
}

func (g gaugeChecker) Name() string { return g.name }

func (g gaugeChecker) Check(context.Context) error {
	n := g.inFlight.Add(1)
	defer g.inFlight.Add(-1)

	for {
		peak := g.peak.Load()
		if n <= peak || g.peak.CompareAndSwap(peak, n) {
			break
		}
	}

	time.Sleep(10 * time.Millisecond)

	return nil
}

func TestCheckAll_Limit(t *testing.T) {
	tests := []struct {
		name    string
		opts    []RegistryOption
		maxPeak int32
	}{
		{name: "capped", opts: []RegistryOption{WithCheckLimit(2)}, maxPeak: 2},
		{name: "serial", opts: []RegistryOption{WithCheckLimit(1)}, maxPeak: 1},
		{name: "default", maxPeak: DefaultCheckLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var inFlight, peak atomic.Int32

			registry := NewHealthRegistry(tt.opts...)
			for _, name := range []string{"mongodb", "memory", "a", "b", "c", "d"} {
				require.NoError(t, registry.Register(gaugeChecker{name: name, inFlight: &inFlight, peak: &peak}))
			}

			result := registry.CheckAll(context.Background())

			assert.Equal(t, HealthStatusHealthy, result.Status)
			assert.Len(t, result.Checks, 6)
			assert.LessOrEqual(t, peak.Load(), tt.maxPeak)
			assert.Positive(t, peak.Load())
		})
	}
}
