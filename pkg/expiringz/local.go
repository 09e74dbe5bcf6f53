package expiringz

import (
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/rs/zerolog"
)

// NewLocalMap creates an expiring map backed by a plain mutex-guarded map.
// Entries past their deadline are dropped lazily, on the read or write that
// observes them. Pass a nil clock to use the wall clock; tests inject a mock
// clock to drive expiry deterministically.
func NewLocalMap[K comparable, V any](config *Config, clk clock.Clock) *LocalMap[K, V] {
	if clk == nil {
		clk = clock.New()
	}
	return &LocalMap[K, V]{
		clk:        clk,
		entries:    make(map[K]localEntry[V]),
		maxEntries: config.MaxEntries,
		defaultTTL: config.DefaultTTL,
	}
}

type localEntry[V any] struct {
	value V

	// expiresAt is the entry's deadline. The zero time means the entry never
	// expires.
	expiresAt time.Time
}

// LocalMap is a Map implementation holding entries in process memory, with
// no capacity eviction beyond rejecting writes once full.
type LocalMap[K comparable, V any] struct {
	lock       sync.Mutex
	clk        clock.Clock
	entries    map[K]localEntry[V]
	maxEntries int64
	defaultTTL time.Duration

	hits    uint64
	misses  uint64
	expired uint64
}

var _ Map[string, any] = (*LocalMap[string, any])(nil)

func (lm *LocalMap[K, V]) Get(key K) (V, bool) {
	lm.lock.Lock()
	defer lm.lock.Unlock()

	entry, ok := lm.entries[key]
	if !ok {
		lm.misses++
		return *new(V), false
	}

	if lm.isExpired(entry) {
		delete(lm.entries, key)
		lm.expired++
		lm.misses++
		return *new(V), false
	}

	lm.hits++
	return entry.value, true
}

func (lm *LocalMap[K, V]) Set(key K, value V) bool {
	return lm.SetWithTTL(key, value, lm.defaultTTL)
}

func (lm *LocalMap[K, V]) SetWithTTL(key K, value V, ttl time.Duration) bool {
	lm.lock.Lock()
	defer lm.lock.Unlock()

	if _, ok := lm.entries[key]; !ok && lm.maxEntries > 0 && int64(len(lm.entries)) >= lm.maxEntries {
		lm.purgeLocked()
		if int64(len(lm.entries)) >= lm.maxEntries {
			return false
		}
	}

	entry := localEntry[V]{value: value}
	if ttl > 0 {
		entry.expiresAt = lm.clk.Now().Add(ttl)
	}
	lm.entries[key] = entry
	return true
}

func (lm *LocalMap[K, V]) Delete(key K) {
	lm.lock.Lock()
	defer lm.lock.Unlock()
	delete(lm.entries, key)
}

func (lm *LocalMap[K, V]) Len() int {
	lm.lock.Lock()
	defer lm.lock.Unlock()
	lm.purgeLocked()
	return len(lm.entries)
}

// Purge drops all expired entries immediately and returns how many were
// removed.
func (lm *LocalMap[K, V]) Purge() int {
	lm.lock.Lock()
	defer lm.lock.Unlock()
	return lm.purgeLocked()
}

func (lm *LocalMap[K, V]) purgeLocked() int {
	removed := 0
	for key, entry := range lm.entries {
		if lm.isExpired(entry) {
			delete(lm.entries, key)
			lm.expired++
			removed++
		}
	}
	return removed
}

func (lm *LocalMap[K, V]) isExpired(entry localEntry[V]) bool {
	return !entry.expiresAt.IsZero() && !lm.clk.Now().Before(entry.expiresAt)
}

func (lm *LocalMap[K, V]) Close() {
	lm.lock.Lock()
	defer lm.lock.Unlock()
	lm.entries = make(map[K]localEntry[V])
}

func (lm *LocalMap[K, V]) Metrics() Metrics {
	lm.lock.Lock()
	defer lm.lock.Unlock()
	return &localMetrics{lm.hits, lm.misses, lm.expired}
}

func (lm *LocalMap[K, V]) MarshalZerologObject(e *zerolog.Event) {
	lm.lock.Lock()
	defer lm.lock.Unlock()
	e.
		Str("backend", "local").
		Int("entries", len(lm.entries))
}

type localMetrics struct {
	hits    uint64
	misses  uint64
	expired uint64
}

var _ Metrics = (*localMetrics)(nil)

func (lms *localMetrics) Hits() uint64        { return lms.hits }
func (lms *localMetrics) Misses() uint64      { return lms.misses }
func (lms *localMetrics) Expirations() uint64 { return lms.expired }
