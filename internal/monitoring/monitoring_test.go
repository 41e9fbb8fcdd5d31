package monitoring_test

import (
	"context"
	"testing"
	"time"

	"github.com/bywbilly/DS2014/internal/monitoring"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogger(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := monitoring.NewLogger("stress", zap.New(core))

	l.Log(context.Background(), monitoring.WARN, "check_failed", "front mismatch", map[string]interface{}{
		"want": 3,
		"got":  4,
	})

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
	assert.Equal(t, "front mismatch", entries[0].Message)

	fields := entries[0].ContextMap()
	assert.Equal(t, "stress", fields["component"])
	assert.Equal(t, "check_failed", fields["event_type"])
	assert.EqualValues(t, 3, fields["want"])
	assert.EqualValues(t, 4, fields["got"])
}

func TestStats(t *testing.T) {
	ctx := context.Background()
	s := monitoring.NewStats(prometheus.NewRegistry())

	s.RecordOperations(ctx, "priority", "push", 10)
	s.RecordOperations(ctx, "priority", "push", 5)
	s.RecordOperations(ctx, "deque", "add_first", 1)
	s.RecordCheckFailure(ctx, "priority")
	s.SetElements(ctx, "priority", 7)
	s.RecordRound(ctx, "priority", time.Millisecond)

	snap, err := s.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, 15.0, snap[`container_operations_total{container="priority",op="push"}`])
	assert.Equal(t, 1.0, snap[`container_operations_total{container="deque",op="add_first"}`])
	assert.Equal(t, 1.0, snap[`stress_check_failures_total{scenario="priority"}`])
	assert.Equal(t, 7.0, snap[`container_elements{container="priority"}`])
	assert.Equal(t, 1.0, snap[`stress_round_duration_seconds{scenario="priority"}`])
}
