package multisetz

import (
	"iter"

	"github.com/authzed/collectionz/pkg/genutil/mapz"
)

// ElementSetView is a live distinct-element view of a multiset. Removals
// through the view drop every occurrence of the element from the underlying
// multiset.
type ElementSetView[T comparable] struct {
	ms *Multiset[T]
}

// ElementSet returns the live distinct-element view of the multiset.
func (ms *Multiset[T]) ElementSet() *ElementSetView[T] {
	return &ElementSetView[T]{ms: ms}
}

// Has returns true if the element has at least one occurrence.
func (v *ElementSetView[T]) Has(element T) bool {
	return v.ms.Contains(element)
}

// Len returns the number of distinct elements.
func (v *ElementSetView[T]) Len() int {
	return v.ms.Distinct()
}

// IsEmpty returns true if the underlying multiset is empty.
func (v *ElementSetView[T]) IsEmpty() bool {
	return v.ms.IsEmpty()
}

// Remove drops every occurrence of the element from the underlying multiset,
// returning whether the element was present.
func (v *ElementSetView[T]) Remove(element T) bool {
	return v.ms.RemoveAllOf(element) > 0
}

// All returns an iterator over the distinct elements, in no particular order.
func (v *ElementSetView[T]) All() iter.Seq[T] {
	return v.ms.Elements()
}

// AsSet returns a snapshot of the distinct elements as a set. The snapshot
// does not track later mutations of the multiset.
func (v *ElementSetView[T]) AsSet() *mapz.Set[T] {
	s := mapz.NewSet[T]()
	for element := range v.ms.counts {
		s.Add(element)
	}
	return s
}
