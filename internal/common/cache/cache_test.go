package cache

import (
	"context"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

func TestInMemoryClient_GetOrSet(t *testing.T) {
	ctx := context.Background()
	c := NewInMemoryClient[sample]()
	defer c.Close()

	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	calls := 0
	opts := GetOrSetOpts[sample]{
		Key: "k",
		TTL: time.Minute,
		Callback: func() (sample, error) {
			calls++
			return sample{Name: "a", Value: calls}, nil
		},
	}

	got, err := c.GetOrSet(ctx, opts)
	require.NoError(t, err)
	assert.Equal(t, sample{Name: "a", Value: 1}, got)

	got, err = c.GetOrSet(ctx, opts)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Value, "served from cache")

	now = now.Add(time.Minute)
	got, err = c.GetOrSet(ctx, opts)
	require.NoError(t, err)
	assert.Equal(t, 2, got.Value, "expired entry is refreshed")

	_, err = c.GetOrSet(ctx, GetOrSetOpts[sample]{Key: "k"})
	assert.ErrorIs(t, err, ErrCallbackNotProvided)
}

func TestInMemoryClient_NoTTLAndDelete(t *testing.T) {
	ctx := context.Background()
	c := NewInMemoryClient[int]()
	defer c.Close()

	require.NoError(t, c.Set(ctx, "k", 7, 0))
	c.now = func() time.Time { return time.Now().Add(24 * time.Hour) }
	got, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, 7, got)

	require.NoError(t, c.Delete(ctx, "k"))
	_, err = c.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrNotExists)
}

func TestInMemoryClient_PurgeExpired(t *testing.T) {
	ctx := context.Background()
	c := NewInMemoryClient[int]()
	defer c.Close()

	require.NoError(t, c.Set(ctx, "short", 1, time.Second))
	require.NoError(t, c.Set(ctx, "forever", 2, 0))
	c.now = func() time.Time { return time.Now().Add(time.Hour) }
	c.purgeExpired()

	assert.Len(t, c.entries, 1)
	c.Close()
	c.Close()
}

func TestRedisClient(t *testing.T) {
	ctx := context.Background()
	db, mock := redismock.NewClientMock()
	c := NewRedisClient[sample](db, "fp:")

	t.Run("miss", func(t *testing.T) {
		mock.ExpectGet("fp:k").RedisNil()
		_, err := c.Get(ctx, "k")
		assert.ErrorIs(t, err, ErrNotExists)
	})

	t.Run("hit", func(t *testing.T) {
		mock.ExpectGet("fp:k").SetVal(`{"name":"a","value":3}`)
		got, err := c.Get(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, sample{Name: "a", Value: 3}, got)
	})

	t.Run("storage error is not a miss", func(t *testing.T) {
		mock.ExpectGet("fp:k").SetErr(assert.AnError)
		_, err := c.GetOrSet(ctx, GetOrSetOpts[sample]{
			Key: "k",
			Callback: func() (sample, error) {
				t.Fatal("callback must not run")
				return sample{}, nil
			},
		})
		assert.ErrorIs(t, err, assert.AnError)
	})

	t.Run("read through", func(t *testing.T) {
		mock.ExpectGet("fp:k").RedisNil()
		mock.ExpectSet("fp:k", []byte(`{"name":"b","value":4}`), time.Minute).SetVal("OK")
		got, err := c.GetOrSet(ctx, GetOrSetOpts[sample]{
			Key:      "k",
			TTL:      time.Minute,
			Callback: func() (sample, error) { return sample{Name: "b", Value: 4}, nil },
		})
		require.NoError(t, err)
		assert.Equal(t, 4, got.Value)
	})

	t.Run("delete", func(t *testing.T) {
		mock.ExpectDel("fp:k").SetVal(1)
		assert.NoError(t, c.Delete(ctx, "k"))
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
