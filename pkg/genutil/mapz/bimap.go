package mapz

import (
	"golang.org/x/exp/maps"

	"github.com/authzed/collectionz/pkg/collerrors"
)

// BiMap is a bidirectional map guaranteeing both keys and values are unique,
// supporting lookup in either direction.
//
// Not safe for concurrent use.
type BiMap[K comparable, V comparable] struct {
	forward  map[K]V
	backward map[V]K
}

// NewBiMap initializes a new BiMap.
func NewBiMap[K comparable, V comparable]() *BiMap[K, V] {
	return &BiMap[K, V]{
		forward:  map[K]V{},
		backward: map[V]K{},
	}
}

// Put associates the key with the value. Any existing association involving
// either the key or the value is removed first, so the bidirectional
// uniqueness invariant always holds.
func (bm *BiMap[K, V]) Put(key K, value V) {
	if existingValue, ok := bm.forward[key]; ok {
		delete(bm.backward, existingValue)
	}
	if existingKey, ok := bm.backward[value]; ok {
		delete(bm.forward, existingKey)
	}

	bm.forward[key] = value
	bm.backward[value] = key
}

// PutIfAbsent associates the key with the value, returning an
// InvalidArgumentError if either the key or the value already participates
// in an association. The map is left unchanged on error.
func (bm *BiMap[K, V]) PutIfAbsent(key K, value V) error {
	if existingValue, ok := bm.forward[key]; ok {
		return collerrors.NewInvalidArgumentf("key %v is already mapped to %v", key, existingValue)
	}
	if existingKey, ok := bm.backward[value]; ok {
		return collerrors.NewInvalidArgumentf("value %v is already mapped from %v", value, existingKey)
	}

	bm.forward[key] = value
	bm.backward[value] = key
	return nil
}

// GetByKey returns the value for the given key and whether the key existed.
func (bm *BiMap[K, V]) GetByKey(key K) (V, bool) {
	value, ok := bm.forward[key]
	return value, ok
}

// GetByValue returns the key for the given value and whether the value existed.
func (bm *BiMap[K, V]) GetByValue(value V) (K, bool) {
	key, ok := bm.backward[value]
	return key, ok
}

// HasKey returns true if the key is found in the map.
func (bm *BiMap[K, V]) HasKey(key K) bool {
	_, ok := bm.forward[key]
	return ok
}

// HasValue returns true if the value is found in the map.
func (bm *BiMap[K, V]) HasValue(value V) bool {
	_, ok := bm.backward[value]
	return ok
}

// DeleteKey removes the association for the given key, returning whether it
// was present.
func (bm *BiMap[K, V]) DeleteKey(key K) bool {
	value, ok := bm.forward[key]
	if !ok {
		return false
	}

	delete(bm.forward, key)
	delete(bm.backward, value)
	return true
}

// DeleteValue removes the association for the given value, returning whether
// it was present.
func (bm *BiMap[K, V]) DeleteValue(value V) bool {
	key, ok := bm.backward[value]
	if !ok {
		return false
	}

	delete(bm.forward, key)
	delete(bm.backward, value)
	return true
}

// Inverse returns the value-to-key view of this map. The view shares storage
// with this map: mutations through either are visible in both.
func (bm *BiMap[K, V]) Inverse() *BiMap[V, K] {
	return &BiMap[V, K]{
		forward:  bm.backward,
		backward: bm.forward,
	}
}

// Clear clears all entries in the map. Clearing is performed in place so
// that inverse views observe it.
func (bm *BiMap[K, V]) Clear() {
	clear(bm.forward)
	clear(bm.backward)
}

// IsEmpty returns true if the map is currently empty.
func (bm *BiMap[K, V]) IsEmpty() bool { return len(bm.forward) == 0 }

// Len returns the number of associations in the map.
func (bm *BiMap[K, V]) Len() int { return len(bm.forward) }

// Keys returns the keys of the map.
func (bm *BiMap[K, V]) Keys() []K { return maps.Keys(bm.forward) }

// Values returns the values of the map.
func (bm *BiMap[K, V]) Values() []V { return maps.Keys(bm.backward) }

// ForEach executes the callback for each association until the callback
// returns false.
func (bm *BiMap[K, V]) ForEach(callback func(key K, value V) bool) {
	for key, value := range bm.forward {
		if !callback(key, value) {
			return
		}
	}
}

// Clone returns a clone of the map. The clone does not share storage with
// this map.
func (bm *BiMap[K, V]) Clone() *BiMap[K, V] {
	return &BiMap[K, V]{
		forward:  maps.Clone(bm.forward),
		backward: maps.Clone(bm.backward),
	}
}

// AsMap returns a copy of the key-to-value mapping.
func (bm *BiMap[K, V]) AsMap() map[K]V {
	return maps.Clone(bm.forward)
}
