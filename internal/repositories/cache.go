package repositories

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/propledger/go-fp-rollup/internal/common"

	"github.com/redis/go-redis/v9"
)

//go:generate mockgen -source=cache.go -destination=mock/mock_cache.go -package=mock
type CacheRepository interface {
	SetIfNotExists(ctx context.Context, key string, value any, ttl time.Duration) (bool, error)
	Get(ctx context.Context, key string) (string, error)
	// DelIfValue removes key only while it still holds value and reports
	// whether it did.
	DelIfValue(ctx context.Context, key string, value string) (bool, error)
}

var delIfValueScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

type cacheClient struct {
	redis *redis.Client
}

func NewCacheRepository(redis *redis.Client) CacheRepository {
	return &cacheClient{redis: redis}
}

func (cc *cacheClient) SetIfNotExists(ctx context.Context, key string, value any, ttl time.Duration) (bool, error) {
	return cc.redis.SetNX(ctx, key, value, ttl).Result()
}

func (cc *cacheClient) Get(ctx context.Context, key string) (string, error) {
	val, err := cc.redis.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return val, common.ErrDataNotFound
		}
		return val, err
	}

	return strings.TrimSpace(val), nil
}

func (cc *cacheClient) DelIfValue(ctx context.Context, key string, value string) (bool, error) {
	n, err := delIfValueScript.Run(ctx, cc.redis, []string{key}, value).Int64()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
