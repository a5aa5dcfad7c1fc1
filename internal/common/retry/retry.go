package retry

import (
	"context"

	"github.com/propledger/go-fp-rollup/internal/common/xlog"
	"github.com/propledger/go-fp-rollup/internal/config"

	"github.com/cenkalti/backoff/v4"
)

const DefaultMaxRetries uint64 = 3

type Retryer interface {
	Retry(ctx context.Context, operation, fallback func() error) error
	StopRetryWithErr(err error) error
}

type exponentialBackoff struct {
	ebCfg config.ExponentialBackOffConfig
}

/*
NewExponentialBackOff builds a Retryer backed by an exponential backoff.

Example:

	Retry(ctx, func() error { return provider.BookBalance(ctx, id, asOf) }, func() error { return errFallback })
*/
func NewExponentialBackOff(ebCfg config.ExponentialBackOffConfig) Retryer {
	if ebCfg.MaxBackoffTime <= 0 {
		ebCfg.MaxBackoffTime = backoff.DefaultMaxElapsedTime
	}

	if ebCfg.BackoffMultiplier <= 0 {
		ebCfg.BackoffMultiplier = backoff.DefaultMultiplier
	}

	if ebCfg.MaxRetries == 0 {
		ebCfg.MaxRetries = DefaultMaxRetries
	}

	return &exponentialBackoff{ebCfg: ebCfg}
}

/*
Retry creates a fresh ExponentialBackOff for every call.

operation is retried until it succeeds, returns a permanent error, the retries run out
or ctx is done. fallback runs once when operation keeps failing and its error is returned.
*/
func (r *exponentialBackoff) Retry(ctx context.Context, operation, fallback func() error) error {
	eb := backoff.NewExponentialBackOff()
	eb.MaxElapsedTime = r.ebCfg.MaxBackoffTime
	eb.Multiplier = r.ebCfg.BackoffMultiplier

	err := backoff.Retry(operation, backoff.WithContext(backoff.WithMaxRetries(eb, r.ebCfg.MaxRetries), ctx))
	if err != nil {
		xlog.Debugf(ctx, "retry exhausted with err: %v", err)
		if fallback == nil {
			return err
		}
		return fallback()
	}

	return nil
}

// StopRetryWithErr stops retrying and surfaces err. Call it inside operation.
func (r *exponentialBackoff) StopRetryWithErr(err error) error {
	return backoff.Permanent(err)
}
