// Package syncz provides mutex-guarded and concurrent views over the
// non-thread-safe collections in this module.
package syncz

import (
	"sync"

	"github.com/authzed/collectionz/pkg/genutil/multisetz"
)

// Multiset wraps a multiset so that every operation runs under a single
// mutex.
//
// Iteration is deliberately not guarded: callers must hold Lock around any
// use of Unguarded. This is a documented convention, not an enforced
// invariant; iterating without the lock while another goroutine mutates is
// undefined behavior.
type Multiset[T comparable] struct {
	lock sync.Mutex
	ms   *multisetz.Multiset[T]
}

// NewMultiset constructs a new synchronized multiset.
func NewMultiset[T comparable]() *Multiset[T] {
	return &Multiset[T]{ms: multisetz.New[T]()}
}

// WrapMultiset wraps an existing multiset. The wrapped multiset must no
// longer be used directly, except through Unguarded under the lock.
func WrapMultiset[T comparable](ms *multisetz.Multiset[T]) *Multiset[T] {
	return &Multiset[T]{ms: ms}
}

// Count returns the occurrence count for the element, or 0 if it is absent.
func (sm *Multiset[T]) Count(element T) int {
	sm.lock.Lock()
	defer sm.lock.Unlock()

	return sm.ms.Count(element)
}

// Contains returns true if the element has at least one occurrence.
func (sm *Multiset[T]) Contains(element T) bool {
	sm.lock.Lock()
	defer sm.lock.Unlock()

	return sm.ms.Contains(element)
}

// Add adds a single occurrence of the element.
func (sm *Multiset[T]) Add(element T) error {
	sm.lock.Lock()
	defer sm.lock.Unlock()

	return sm.ms.Add(element)
}

// AddCount adds the given number of occurrences of the element.
func (sm *Multiset[T]) AddCount(element T, occurrences int) (bool, error) {
	sm.lock.Lock()
	defer sm.lock.Unlock()

	return sm.ms.AddCount(element, occurrences)
}

// Remove removes a single occurrence of the element.
func (sm *Multiset[T]) Remove(element T) bool {
	sm.lock.Lock()
	defer sm.lock.Unlock()

	return sm.ms.Remove(element)
}

// RemoveCount removes up to the given number of occurrences of the element.
func (sm *Multiset[T]) RemoveCount(element T, occurrences int) (int, error) {
	sm.lock.Lock()
	defer sm.lock.Unlock()

	return sm.ms.RemoveCount(element, occurrences)
}

// RemoveAllOf removes every occurrence of the element.
func (sm *Multiset[T]) RemoveAllOf(element T) int {
	sm.lock.Lock()
	defer sm.lock.Unlock()

	return sm.ms.RemoveAllOf(element)
}

// SetCount forces the element's count to the given value.
func (sm *Multiset[T]) SetCount(element T, count int) (int, error) {
	sm.lock.Lock()
	defer sm.lock.Unlock()

	return sm.ms.SetCount(element, count)
}

// Len returns the total number of occurrences across all elements.
func (sm *Multiset[T]) Len() int {
	sm.lock.Lock()
	defer sm.lock.Unlock()

	return sm.ms.Len()
}

// Distinct returns the number of distinct elements.
func (sm *Multiset[T]) Distinct() int {
	sm.lock.Lock()
	defer sm.lock.Unlock()

	return sm.ms.Distinct()
}

// IsEmpty returns true if the multiset holds no occurrences.
func (sm *Multiset[T]) IsEmpty() bool {
	sm.lock.Lock()
	defer sm.lock.Unlock()

	return sm.ms.IsEmpty()
}

// Clear removes all elements.
func (sm *Multiset[T]) Clear() {
	sm.lock.Lock()
	defer sm.lock.Unlock()

	sm.ms.Clear()
}

// AsSlice returns the flattened form of the multiset as a slice.
func (sm *Multiset[T]) AsSlice() []T {
	sm.lock.Lock()
	defer sm.lock.Unlock()

	return sm.ms.AsSlice()
}

// Snapshot returns a clone of the wrapped multiset, taken under the lock.
func (sm *Multiset[T]) Snapshot() *multisetz.Multiset[T] {
	sm.lock.Lock()
	defer sm.lock.Unlock()

	return sm.ms.Clone()
}

// Lock acquires the wrapper's mutex for an unguarded section.
func (sm *Multiset[T]) Lock() {
	sm.lock.Lock()
}

// Unlock releases the wrapper's mutex.
func (sm *Multiset[T]) Unlock() {
	sm.lock.Unlock()
}

// Unguarded returns the wrapped multiset for iteration. Callers must hold
// Lock for the duration of any use of the returned value.
func (sm *Multiset[T]) Unguarded() *multisetz.Multiset[T] {
	return sm.ms
}
