// Package expiringz provides maps whose entries expire after a configured
// time-to-live.
//
// This is the explicit-expiration substitute for maps whose entries vanish
// under garbage-collector reference semantics: instead of depending on
// runtime reclamation timing, entry lifetime is a stated policy (a TTL plus
// capacity-driven eviction), which makes expiry observable and testable.
// Reads do not extend an entry's lifetime.
package expiringz

import (
	"time"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog"
)

// Config for expiring maps.
type Config struct {
	// MaxEntries is the maximum number of live entries held before the map
	// begins rejecting or evicting writes, depending on the backend.
	MaxEntries int64

	// DefaultTTL is the deadline applied to entries set without an explicit
	// TTL. A non-positive value means entries only leave via Delete or
	// capacity eviction.
	DefaultTTL time.Duration
}

func (c *Config) MarshalZerologObject(e *zerolog.Event) {
	e.
		Str("maxEntries", humanize.Comma(c.MaxEntries)).
		Dur("defaultTTL", c.DefaultTTL)
}

// Map defines an interface for a generic expiring map.
type Map[K comparable, V any] interface {
	// Get returns the live value for the given key, if present and not yet
	// expired. Reads do not extend the entry's lifetime.
	Get(key K) (V, bool)

	// Set stores the value under the key with the configured default TTL,
	// returning whether the write was accepted.
	Set(key K, value V) bool

	// SetWithTTL stores the value under the key with an explicit TTL,
	// returning whether the write was accepted.
	SetWithTTL(key K, value V, ttl time.Duration) bool

	// Delete removes the key from the map.
	Delete(key K)

	// Len returns the number of live entries.
	Len() int

	// Close releases the map's background resources (if any).
	Close()

	// Metrics returns the metrics block for the map.
	Metrics() Metrics

	zerolog.LogObjectMarshaler
}

// Metrics defines metrics exported by an expiring map.
type Metrics interface {
	// Hits is the number of reads that found a live entry.
	Hits() uint64

	// Misses is the number of reads that found no live entry.
	Misses() uint64

	// Expirations is the number of entries observed to leave the map by
	// expiry.
	Expirations() uint64
}

// NoopMap returns a map that stores nothing.
func NoopMap[K comparable, V any]() Map[K, V] { return &noopMap[K, V]{} }

type noopMap[K comparable, V any] struct{}

var _ Map[string, any] = (*noopMap[string, any])(nil)

func (no *noopMap[K, V]) Get(_ K) (V, bool)                        { return *new(V), false }
func (no *noopMap[K, V]) Set(_ K, _ V) bool                        { return false }
func (no *noopMap[K, V]) SetWithTTL(_ K, _ V, _ time.Duration) bool { return false }
func (no *noopMap[K, V]) Delete(_ K)                               {}
func (no *noopMap[K, V]) Len() int                                 { return 0 }
func (no *noopMap[K, V]) Close()                                   {}
func (no *noopMap[K, V]) Metrics() Metrics                         { return &noopMetrics{} }
func (no *noopMap[K, V]) MarshalZerologObject(e *zerolog.Event) {
	e.Bool("enabled", false)
}

type noopMetrics struct{}

var _ Metrics = (*noopMetrics)(nil)

func (no *noopMetrics) Hits() uint64        { return 0 }
func (no *noopMetrics) Misses() uint64      { return 0 }
func (no *noopMetrics) Expirations() uint64 { return 0 }
