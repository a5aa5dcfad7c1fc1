package publisher

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/propledger/go-fp-rollup/internal/common/metrics"
	"github.com/propledger/go-fp-rollup/internal/common/xlog"

	"github.com/Shopify/sarama"
)

const logIdentifier = "[DRIFT-ALERT-PUBLISHER]"

//go:generate mockgen -source=publisher.go -destination=mock/mock_publisher.go -package=mock
type Publisher interface {
	Publish(ctx context.Context, message any, opts ...PublishOption) error
}

type publishOptions struct {
	key     string
	headers map[string]string
}

type PublishOption func(*publishOptions)

func WithKey(key string) PublishOption {
	return func(opts *publishOptions) {
		opts.key = key
	}
}

func WithHeaders(headers map[string]string) PublishOption {
	return func(opts *publishOptions) {
		opts.headers = headers
	}
}

type publisher struct {
	producer sarama.SyncProducer
	topic    string
	metrics  *metrics.PublisherPrometheusMetrics
}

func NewPublisher(p sarama.SyncProducer, topic string, mtc *metrics.PublisherPrometheusMetrics) Publisher {
	return publisher{
		producer: p,
		topic:    topic,
		metrics:  mtc,
	}
}

func (d publisher) Publish(ctx context.Context, message any, opts ...PublishOption) (err error) {
	start := time.Now()
	defer func() {
		d.metrics.Record(start, d.topic, err)
	}()

	options := &publishOptions{}
	for _, opt := range opts {
		opt(options)
	}

	msg, err := d.prepareMessage(ctx, message, options)
	if err != nil {
		xlog.Error(ctx, logIdentifier,
			xlog.String("status", "failed prepare message"),
			xlog.Err(err))
		return err
	}

	partition, offset, err := d.producer.SendMessage(msg)
	if err != nil {
		xlog.Error(ctx, logIdentifier,
			xlog.String("status", "failed send message"),
			xlog.String("topic", d.topic),
			xlog.Err(err))
		return err
	}

	xlog.Info(ctx, logIdentifier,
		xlog.String("status", "success publish message"),
		xlog.String("topic", d.topic),
		xlog.Int("partition", int(partition)),
		xlog.Int64("offset", offset),
	)

	return nil
}

func (d publisher) prepareMessage(ctx context.Context, message any, opts *publishOptions) (*sarama.ProducerMessage, error) {
	msgByte, err := json.Marshal(message)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload: %w", err)
	}

	producerMsg := &sarama.ProducerMessage{
		Topic: d.topic,
		Value: sarama.ByteEncoder(msgByte),
	}

	if opts.key != "" {
		producerMsg.Key = sarama.StringEncoder(opts.key)
	}

	headers := make([]sarama.RecordHeader, 0, len(opts.headers)+1)
	if id := xlog.CorrelationID(ctx); id != "" {
		headers = append(headers, sarama.RecordHeader{Key: []byte(xlog.CorrelationIDHeader), Value: []byte(id)})
	}
	for key, value := range opts.headers {
		headers = append(headers, sarama.RecordHeader{
			Key:   []byte(key),
			Value: []byte(value),
		})
	}
	if len(headers) > 0 {
		producerMsg.Headers = headers
	}

	return producerMsg, nil
}
