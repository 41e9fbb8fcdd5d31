package monitoring

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

// Stats collects container operation statistics
type Stats interface {
	RecordOperations(ctx context.Context, container, op string, n int)
	RecordRound(ctx context.Context, scenario string, duration time.Duration)
	RecordCheckFailure(ctx context.Context, scenario string)
	SetElements(ctx context.Context, container string, n int)
}

// PromStats implements Stats on a prometheus registry.
type PromStats struct {
	registry *prometheus.Registry
	ops      *prometheus.CounterVec
	rounds   *prometheus.HistogramVec
	failures *prometheus.CounterVec
	elements *prometheus.GaugeVec
}

func NewStats(registry *prometheus.Registry) *PromStats {
	s := &PromStats{
		registry: registry,
		ops: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "container_operations_total",
			Help: "Total number of container operations performed",
		}, []string{"container", "op"}),
		rounds: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "stress_round_duration_seconds",
			Help:    "Duration of a stress scenario round",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
		}, []string{"scenario"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "stress_check_failures_total",
			Help: "Total number of failed consistency checks",
		}, []string{"scenario"}),
		elements: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "container_elements",
			Help: "Number of elements held at the end of the last round",
		}, []string{"container"}),
	}
	registry.MustRegister(s.ops, s.rounds, s.failures, s.elements)
	return s
}

func (s *PromStats) RecordOperations(_ context.Context, container, op string, n int) {
	s.ops.WithLabelValues(container, op).Add(float64(n))
}

func (s *PromStats) RecordRound(_ context.Context, scenario string, duration time.Duration) {
	s.rounds.WithLabelValues(scenario).Observe(duration.Seconds())
}

func (s *PromStats) RecordCheckFailure(_ context.Context, scenario string) {
	s.failures.WithLabelValues(scenario).Inc()
}

func (s *PromStats) SetElements(_ context.Context, container string, n int) {
	s.elements.WithLabelValues(container).Set(float64(n))
}

// Snapshot flattens the counters and gauges of the registry into
// `name{label="value",...}` keys. Histograms report their sample count.
func (s *PromStats) Snapshot() (map[string]float64, error) {
	families, err := s.registry.Gather()
	if err != nil {
		return nil, err
	}

	out := make(map[string]float64)
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			key := seriesKey(mf.GetName(), m.GetLabel())
			switch mf.GetType() {
			case dto.MetricType_COUNTER:
				out[key] = m.GetCounter().GetValue()
			case dto.MetricType_GAUGE:
				out[key] = m.GetGauge().GetValue()
			case dto.MetricType_HISTOGRAM:
				out[key] = float64(m.GetHistogram().GetSampleCount())
			}
		}
	}
	return out, nil
}

func seriesKey(name string, labels []*dto.LabelPair) string {
	if len(labels) == 0 {
		return name
	}
	pairs := make([]string, 0, len(labels))
	for _, l := range labels {
		pairs = append(pairs, l.GetName()+`="`+l.GetValue()+`"`)
	}
	sort.Strings(pairs)
	return name + "{" + strings.Join(pairs, ",") + "}"
}
