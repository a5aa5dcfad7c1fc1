package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/propledger/go-fp-rollup/internal/models"
)

type ReconPrometheusMetrics struct {
	statements    *prometheus.CounterVec
	skipped       prometheus.Counter
	absoluteDrift prometheus.Gauge
	runDuration   prometheus.Histogram
}

func newReconPrometheusMetrics(reg prometheus.Registerer) *ReconPrometheusMetrics {
	mtc := &ReconPrometheusMetrics{
		statements: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "recon_drift_statements_total",
				Help: "Number of reconciliation statements checked by status",
			},
			[]string{"status"},
		),
		skipped: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "recon_drift_skipped_total",
				Help: "Number of reconciliation records skipped for missing statement data",
			},
		),
		absoluteDrift: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "recon_drift_total_absolute_amount",
				Help: "Total absolute drift of the last drift check run.",
			},
		),
		runDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "recon_drift_run_duration_seconds",
				Help:    "Duration of a drift check run in seconds.",
				Buckets: []float64{0.1, 0.5, 1, 5, 10, 30, 60, 300},
			},
		),
	}

	reg.MustRegister(mtc.statements, mtc.skipped, mtc.absoluteDrift, mtc.runDuration)

	return mtc
}

func (m *ReconPrometheusMetrics) Record(startTime time.Time, report models.DriftReport) {
	if m == nil {
		return
	}

	for _, r := range report.Results {
		m.statements.WithLabelValues(string(r.Status)).Inc()
	}
	m.skipped.Add(float64(report.Skipped))
	total, _ := report.TotalAbsoluteDrift.Float64()
	m.absoluteDrift.Set(total)
	m.runDuration.Observe(time.Since(startTime).Seconds())
}
