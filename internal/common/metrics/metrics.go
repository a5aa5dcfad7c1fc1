package metrics

import (
	"database/sql"
	"fmt"
	"time"

	prometheusmetrics "github.com/deathowl/go-metrics-prometheus"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	saramaMetrics "github.com/rcrowley/go-metrics"
	"github.com/redis/go-redis/extra/redisprometheus/v9"
	"github.com/redis/go-redis/v9"
)

type Metrics interface {
	RegisterDB(db *sql.DB, role string, dbName string) error
	RegisterRedis(client *redis.Client, serviceName, namespace string) error
	EchoMiddleware(serviceName, namespace string) echo.MiddlewareFunc
	SaramaRegistry(name string, flushInterval time.Duration) saramaMetrics.Registry
	PrometheusRegisterer() prometheus.Registerer
	GetPublisherPrometheus() *PublisherPrometheusMetrics
	GetRollupPrometheus() *RollupPrometheusMetrics
	GetReconPrometheus() *ReconPrometheusMetrics
}

type metrics struct {
	reg              prometheus.Registerer
	publisherMetrics *PublisherPrometheusMetrics
	rollupMetrics    *RollupPrometheusMetrics
	reconMetrics     *ReconPrometheusMetrics
}

func New() Metrics {
	return NewWithRegisterer(prometheus.DefaultRegisterer)
}

func NewWithRegisterer(reg prometheus.Registerer) Metrics {
	return &metrics{
		reg:              reg,
		publisherMetrics: newPublisherPrometheusMetrics(reg),
		rollupMetrics:    newRollupPrometheusMetrics(reg),
		reconMetrics:     newReconPrometheusMetrics(reg),
	}
}

func (m *metrics) RegisterDB(db *sql.DB, role string, dbName string) error {
	return m.reg.Register(collectors.NewDBStatsCollector(db, fmt.Sprintf("%s_%s", dbName, role)))
}

func (m *metrics) RegisterRedis(client *redis.Client, serviceName, namespace string) error {
	return m.reg.Register(redisprometheus.NewCollector(BuildFQName(serviceName, namespace), "redis", client))
}

func (m *metrics) EchoMiddleware(serviceName, namespace string) echo.MiddlewareFunc {
	return echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace:  BuildFQName(serviceName, namespace),
		Subsystem:  "http",
		Registerer: m.reg,
	})
}

// SaramaRegistry mirrors the sarama client metrics into prometheus every flushInterval.
func (m *metrics) SaramaRegistry(name string, flushInterval time.Duration) saramaMetrics.Registry {
	appMetrics := saramaMetrics.NewPrefixedRegistry(FlattenName(name) + "_")
	prometheusClient := prometheusmetrics.NewPrometheusProvider(
		appMetrics, "", "", m.reg, flushInterval,
	)
	go prometheusClient.UpdatePrometheusMetrics()

	return appMetrics
}

func (m *metrics) PrometheusRegisterer() prometheus.Registerer {
	return m.reg
}

func (m *metrics) GetPublisherPrometheus() *PublisherPrometheusMetrics {
	return m.publisherMetrics
}

func (m *metrics) GetRollupPrometheus() *RollupPrometheusMetrics {
	return m.rollupMetrics
}

func (m *metrics) GetReconPrometheus() *ReconPrometheusMetrics {
	return m.reconMetrics
}
