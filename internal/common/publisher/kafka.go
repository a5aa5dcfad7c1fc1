package publisher

import (
	"time"

	"github.com/Shopify/sarama"
	saramaMetrics "github.com/rcrowley/go-metrics"
)

type Option func(*sarama.Config)

func NewKafkaSyncProducer(brokers []string, opts ...Option) (sarama.SyncProducer, error) {
	saramaCfg := sarama.NewConfig()
	saramaCfg.Producer.Return.Successes = true
	saramaCfg.Producer.Return.Errors = true
	saramaCfg.Producer.RequiredAcks = sarama.WaitForAll
	saramaCfg.Producer.Timeout = 2 * time.Second
	saramaCfg.Net.DialTimeout = 2 * time.Second
	saramaCfg.Net.ReadTimeout = 2 * time.Second
	saramaCfg.Net.WriteTimeout = 2 * time.Second

	for _, opt := range opts {
		opt(saramaCfg)
	}

	producer, err := sarama.NewSyncProducer(brokers, saramaCfg)
	if err != nil {
		return nil, err
	}

	return producer, nil
}

func WithClientID(clientID string) Option {
	return func(cfg *sarama.Config) {
		if clientID != "" {
			cfg.ClientID = clientID
		}
	}
}

// WithMetricRegistry routes the sarama client metrics into reg.
func WithMetricRegistry(reg saramaMetrics.Registry) Option {
	return func(cfg *sarama.Config) {
		if reg != nil {
			cfg.MetricRegistry = reg
		}
	}
}

// WithKeyHashPartitioner keeps alerts of the same bank account on one partition.
func WithKeyHashPartitioner() Option {
	return func(cfg *sarama.Config) {
		cfg.Producer.Partitioner = sarama.NewHashPartitioner
	}
}
