package expiringz

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/Yiling-J/theine-go"
	"github.com/rs/zerolog"

	"github.com/authzed/collectionz/internal/logging"
)

// NewTheineMap creates a new expiring map backed by a theine cache, which
// evicts under capacity pressure in addition to honoring TTLs.
func NewTheineMap[K comparable, V any](config *Config) (Map[K, V], error) {
	tm := &theineMap[K, V]{
		defaultTTL: config.DefaultTTL,
	}

	builder := theine.NewBuilder[K, V](config.MaxEntries)
	builder.RemovalListener(func(key K, value V, reason theine.RemoveReason) {
		switch reason {
		case theine.EXPIRED:
			tm.expired.Add(1)
			logging.Trace().Any("key", key).Msg("expired entry in expiring map")
		case theine.EVICTED:
			logging.Trace().Any("key", key).Msg("evicted entry from expiring map")
		case theine.REMOVED:
			// Explicit Delete, nothing to track.
		}
	})

	cache, err := builder.Build()
	if err != nil {
		return nil, err
	}

	tm.cache = cache
	return tm, nil
}

type theineMap[K comparable, V any] struct {
	cache      *theine.Cache[K, V]
	defaultTTL time.Duration
	expired    atomic.Uint64
	closeOnce  sync.Once
}

var _ Map[string, any] = (*theineMap[string, any])(nil)

func (tm *theineMap[K, V]) Get(key K) (V, bool) {
	return tm.cache.Get(key)
}

func (tm *theineMap[K, V]) Set(key K, value V) bool {
	return tm.SetWithTTL(key, value, tm.defaultTTL)
}

func (tm *theineMap[K, V]) SetWithTTL(key K, value V, ttl time.Duration) bool {
	if ttl <= 0 {
		return tm.cache.Set(key, value, 1)
	}
	return tm.cache.SetWithTTL(key, value, 1, ttl)
}

func (tm *theineMap[K, V]) Delete(key K) {
	tm.cache.Delete(key)
}

func (tm *theineMap[K, V]) Len() int {
	return tm.cache.Len()
}

func (tm *theineMap[K, V]) Close() {
	tm.closeOnce.Do(func() {
		tm.cache.Close()
	})
}

func (tm *theineMap[K, V]) Metrics() Metrics {
	return &theineMetrics{tm.cache.Stats(), tm.expired.Load()}
}

func (tm *theineMap[K, V]) MarshalZerologObject(e *zerolog.Event) {
	e.
		Str("backend", "theine").
		Int("entries", tm.cache.Len())
}

type theineMetrics struct {
	stats   theine.Stats
	expired uint64
}

var _ Metrics = (*theineMetrics)(nil)

func (tms *theineMetrics) Hits() uint64        { return tms.stats.Hits() }
func (tms *theineMetrics) Misses() uint64      { return tms.stats.Misses() }
func (tms *theineMetrics) Expirations() uint64 { return tms.expired }
