package mapz

import (
	"iter"

	"golang.org/x/exp/maps"
)

// Set implements a generic set over comparable values.
//
// Not safe for concurrent use.
type Set[T comparable] struct {
	values map[T]struct{}
}

// NewSet returns a new set, containing the given items (if any).
func NewSet[T comparable](items ...T) *Set[T] {
	s := &Set[T]{
		values: make(map[T]struct{}, len(items)),
	}
	for _, item := range items {
		s.values[item] = struct{}{}
	}
	return s
}

// Has returns true if the set contains the given value.
func (s *Set[T]) Has(value T) bool {
	_, exists := s.values[value]
	return exists
}

// Add adds the given value to the set and returns true. If
// the value is already present, returns false.
func (s *Set[T]) Add(value T) bool {
	if s.Has(value) {
		return false
	}

	s.values[value] = struct{}{}
	return true
}

// Delete removes the value from the set, returning whether
// the element was present when the call was made.
func (s *Set[T]) Delete(value T) bool {
	if !s.Has(value) {
		return false
	}

	delete(s.values, value)
	return true
}

// Extend adds all the values to the set.
func (s *Set[T]) Extend(values []T) {
	for _, value := range values {
		s.values[value] = struct{}{}
	}
}

// Union adds all values found in the other set to this set. Returns the same
// set.
func (s *Set[T]) Union(other *Set[T]) *Set[T] {
	for value := range other.values {
		s.values[value] = struct{}{}
	}
	return s
}

// IntersectionDifference removes any values from this set that
// are not shared with the other set. Returns the same set.
func (s *Set[T]) IntersectionDifference(other *Set[T]) *Set[T] {
	for value := range s.values {
		if !other.Has(value) {
			s.Delete(value)
		}
	}
	return s
}

// RemoveAll removes all values from this set found in the other set.
func (s *Set[T]) RemoveAll(other *Set[T]) {
	for value := range other.values {
		s.Delete(value)
	}
}

// Subtract subtracts the other set from this set, returning a new set.
func (s *Set[T]) Subtract(other *Set[T]) *Set[T] {
	newSet := NewSet[T]()
	newSet.Extend(s.AsSlice())
	newSet.RemoveAll(other)
	return newSet
}

// Copy returns a copy of this set.
func (s *Set[T]) Copy() *Set[T] {
	return &Set[T]{values: maps.Clone(s.values)}
}

// Equal returns true if both sets contain exactly the same values.
func (s *Set[T]) Equal(other *Set[T]) bool {
	if len(s.values) != len(other.values) {
		return false
	}

	for value := range s.values {
		if !other.Has(value) {
			return false
		}
	}
	return true
}

// IsEmpty returns true if the set is empty.
func (s *Set[T]) IsEmpty() bool {
	return len(s.values) == 0
}

// Len returns the number of values in the set.
func (s *Set[T]) Len() int {
	return len(s.values)
}

// All returns an iterator over the values in the set, in no particular order.
func (s *Set[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for value := range s.values {
			if !yield(value) {
				return
			}
		}
	}
}

// ForEach executes the callback for each value in the set until the callback
// returns false.
func (s *Set[T]) ForEach(callback func(value T) bool) {
	for value := range s.values {
		if !callback(value) {
			return
		}
	}
}

// AsSlice returns the set as a slice of values.
func (s *Set[T]) AsSlice() []T {
	if len(s.values) == 0 {
		return nil
	}

	slice := make([]T, 0, len(s.values))
	for value := range s.values {
		slice = append(slice, value)
	}
	return slice
}
