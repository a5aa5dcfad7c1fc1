package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/propledger/go-fp-rollup/internal/models"
)

type RollupPrometheusMetrics struct {
	rollups          *prometheus.CounterVec
	computeDuration  *prometheus.HistogramVec
	warnings         *prometheus.CounterVec
	divergence       prometheus.Histogram
	providerFailures prometheus.Counter
}

func newRollupPrometheusMetrics(reg prometheus.Registerer) *RollupPrometheusMetrics {
	mtc := &RollupPrometheusMetrics{
		rollups: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "finance_rollup_total",
				Help: "Number of finance rollups served by source",
			},
			[]string{"source"},
		),
		computeDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "finance_rollup_duration_seconds",
				Help:    "Duration of finance rollup computation in seconds.",
				Buckets: []float64{0.001, 0.010, 0.050, 0.100, 0.250, 0.500, 1, 2, 5},
			},
			[]string{"source"},
		),
		warnings: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "finance_rollup_data_quality_warnings_total",
				Help: "Number of data quality warnings raised while deriving rollups",
			},
			[]string{"kind"},
		),
		divergence: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "finance_rollup_divergence_amount",
				Help:    "Largest absolute difference between authoritative and derived rollups.",
				Buckets: []float64{0.01, 0.1, 1, 10, 100, 1000, 10000},
			},
		),
		providerFailures: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "finance_rollup_provider_failures_total",
				Help: "Number of authoritative balance lookups that failed or were malformed",
			},
		),
	}

	reg.MustRegister(mtc.rollups, mtc.computeDuration, mtc.warnings, mtc.divergence, mtc.providerFailures)

	return mtc
}

func (m *RollupPrometheusMetrics) Record(startTime time.Time, result models.RollupResult) {
	if m == nil {
		return
	}

	source := string(result.Source)
	m.rollups.WithLabelValues(source).Inc()
	m.computeDuration.WithLabelValues(source).Observe(time.Since(startTime).Seconds())
	for _, w := range result.Warnings {
		m.warnings.WithLabelValues(string(w.Kind)).Inc()
	}
}

func (m *RollupPrometheusMetrics) RecordDivergence(c models.RollupComparison) {
	if m == nil || c.Authoritative == nil {
		return
	}
	amount, _ := c.Divergence.Float64()
	m.divergence.Observe(amount)
}

func (m *RollupPrometheusMetrics) RecordProviderFailure() {
	if m == nil {
		return
	}
	m.providerFailures.Inc()
}
