package cache

import (
	"context"
	"sync"
	"time"
)

// InMemoryClient keeps values in process. Values are copied by assignment, so
// callers must not mutate slices or maps they got from it.
type InMemoryClient[T any] struct {
	mu      sync.RWMutex
	entries map[string]entry[T]
	now     func() time.Time
	done    chan struct{}
	once    sync.Once
}

type entry[T any] struct {
	value T
	expAt time.Time
}

func (e entry[T]) expired(now time.Time) bool {
	return !e.expAt.IsZero() && !now.Before(e.expAt)
}

func NewInMemoryClient[T any]() *InMemoryClient[T] {
	m := &InMemoryClient[T]{
		entries: make(map[string]entry[T]),
		now:     time.Now,
		done:    make(chan struct{}),
	}

	go m.backgroundCleaner(time.Minute)
	return m
}

var _ Client[int] = (*InMemoryClient[int])(nil)

func (m *InMemoryClient[T]) Get(_ context.Context, key string) (result T, err error) {
	m.mu.RLock()
	e, found := m.entries[key]
	m.mu.RUnlock()

	if !found || e.expired(m.now()) {
		return result, ErrNotExists
	}

	return e.value, nil
}

// Set stores object for ttl, a ttl <= 0 keeps it until deleted.
func (m *InMemoryClient[T]) Set(_ context.Context, key string, object T, ttl time.Duration) error {
	e := entry[T]{value: object}
	if ttl > 0 {
		e.expAt = m.now().Add(ttl)
	}

	m.mu.Lock()
	m.entries[key] = e
	m.mu.Unlock()
	return nil
}

func (m *InMemoryClient[T]) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	delete(m.entries, key)
	m.mu.Unlock()
	return nil
}

func (m *InMemoryClient[T]) GetOrSet(ctx context.Context, opts GetOrSetOpts[T]) (T, error) {
	return getOrSet[T](ctx, m, opts)
}

func (m *InMemoryClient[T]) purgeExpired() {
	now := m.now()
	m.mu.Lock()
	defer m.mu.Unlock()
	for k, e := range m.entries {
		if e.expired(now) {
			delete(m.entries, k)
		}
	}
}

func (m *InMemoryClient[T]) backgroundCleaner(every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			m.purgeExpired()
		case <-m.done:
			return
		}
	}
}

// Close stops the background cleaner.
func (m *InMemoryClient[T]) Close() {
	m.once.Do(func() { close(m.done) })
}
