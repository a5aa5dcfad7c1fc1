package cache

import (
	"context"
	"errors"
	"time"
)

//go:generate mockgen -source=contract.go -destination=mock/mock_cache.go -package=mock
type Client[T any] interface {
	Get(ctx context.Context, key string) (T, error)
	Set(ctx context.Context, key string, object T, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	GetOrSet(ctx context.Context, opts GetOrSetOpts[T]) (T, error)
}

var (
	ErrNotExists           = errors.New("key not exists on cache storage")
	ErrCallbackNotProvided = errors.New("callback not provided")
	ErrInvalidType         = errors.New("invalid type result")
)

type GetOrSetOpts[T any] struct {
	Key      string
	TTL      time.Duration
	Callback func() (T, error)
}

// getOrSet runs the read-through flow shared by every Client implementation.
// Storage errors on read are returned, the callback only runs on a miss.
func getOrSet[T any](ctx context.Context, c Client[T], opts GetOrSetOpts[T]) (result T, err error) {
	if opts.Callback == nil {
		return result, ErrCallbackNotProvided
	}

	obj, err := c.Get(ctx, opts.Key)
	if err == nil {
		return obj, nil
	}
	if !errors.Is(err, ErrNotExists) {
		return result, err
	}

	obj, err = opts.Callback()
	if err != nil {
		return result, err
	}

	if err = c.Set(ctx, opts.Key, obj, opts.TTL); err != nil {
		return result, err
	}

	return obj, nil
}
