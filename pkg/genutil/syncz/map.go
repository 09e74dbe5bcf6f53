package syncz

import (
	"sync"

	"golang.org/x/exp/maps"

	"github.com/authzed/collectionz/pkg/genutil/mapz"
)

// Map is a mutex-guarded map.
type Map[K comparable, V any] struct {
	lock  sync.RWMutex
	items map[K]V
}

// NewMap constructs a new synchronized map.
func NewMap[K comparable, V any]() *Map[K, V] {
	return &Map[K, V]{items: map[K]V{}}
}

// Get returns the value for the given key and whether the key existed.
func (sm *Map[K, V]) Get(key K) (V, bool) {
	sm.lock.RLock()
	defer sm.lock.RUnlock()

	found, ok := sm.items[key]
	return found, ok
}

// Has returns true if the key is found in the map.
func (sm *Map[K, V]) Has(key K) bool {
	sm.lock.RLock()
	defer sm.lock.RUnlock()

	_, ok := sm.items[key]
	return ok
}

// Set sets the value for the given key.
func (sm *Map[K, V]) Set(key K, value V) {
	sm.lock.Lock()
	defer sm.lock.Unlock()

	sm.items[key] = value
}

// Delete removes the key from the map, returning whether it was present.
func (sm *Map[K, V]) Delete(key K) bool {
	sm.lock.Lock()
	defer sm.lock.Unlock()

	_, ok := sm.items[key]
	delete(sm.items, key)
	return ok
}

// Len returns the number of keys in the map.
func (sm *Map[K, V]) Len() int {
	sm.lock.RLock()
	defer sm.lock.RUnlock()

	return len(sm.items)
}

// IsEmpty returns true if the map is currently empty.
func (sm *Map[K, V]) IsEmpty() bool {
	return sm.Len() == 0
}

// Keys returns a snapshot of the keys of the map.
func (sm *Map[K, V]) Keys() []K {
	sm.lock.RLock()
	defer sm.lock.RUnlock()

	return maps.Keys(sm.items)
}

// Snapshot returns a copy of the map's contents, taken under the lock.
func (sm *Map[K, V]) Snapshot() map[K]V {
	sm.lock.RLock()
	defer sm.lock.RUnlock()

	return maps.Clone(sm.items)
}

// Clear removes all entries from the map.
func (sm *Map[K, V]) Clear() {
	sm.lock.Lock()
	defer sm.lock.Unlock()

	sm.items = map[K]V{}
}

// Set is a mutex-guarded set.
type Set[T comparable] struct {
	lock sync.Mutex
	set  *mapz.Set[T]
}

// NewSet constructs a new synchronized set, containing the given items (if
// any).
func NewSet[T comparable](items ...T) *Set[T] {
	return &Set[T]{set: mapz.NewSet(items...)}
}

// Has returns true if the set contains the given value.
func (ss *Set[T]) Has(value T) bool {
	ss.lock.Lock()
	defer ss.lock.Unlock()

	return ss.set.Has(value)
}

// Add adds the given value to the set and returns true. If the value is
// already present, returns false.
func (ss *Set[T]) Add(value T) bool {
	ss.lock.Lock()
	defer ss.lock.Unlock()

	return ss.set.Add(value)
}

// Delete removes the value from the set, returning whether the value was
// present when the call was made.
func (ss *Set[T]) Delete(value T) bool {
	ss.lock.Lock()
	defer ss.lock.Unlock()

	return ss.set.Delete(value)
}

// Len returns the number of values in the set.
func (ss *Set[T]) Len() int {
	ss.lock.Lock()
	defer ss.lock.Unlock()

	return ss.set.Len()
}

// IsEmpty returns true if the set is empty.
func (ss *Set[T]) IsEmpty() bool {
	ss.lock.Lock()
	defer ss.lock.Unlock()

	return ss.set.IsEmpty()
}

// Snapshot returns a copy of the wrapped set, taken under the lock.
func (ss *Set[T]) Snapshot() *mapz.Set[T] {
	ss.lock.Lock()
	defer ss.lock.Unlock()

	return ss.set.Copy()
}
