package multisetz

import (
	"cmp"
	"iter"

	"github.com/emirpasic/gods/maps/treemap"

	"github.com/authzed/collectionz/pkg/collerrors"
	"github.com/authzed/collectionz/pkg/genutil"
)

// SortedMultiset is a counted-element collection whose entries iterate in
// element order, backed by a red-black tree.
//
// Not safe for concurrent use.
type SortedMultiset[T cmp.Ordered] struct {
	counts *treemap.Map
	total  int64
}

// NewSorted initializes a new SortedMultiset.
func NewSorted[T cmp.Ordered]() *SortedMultiset[T] {
	return &SortedMultiset[T]{
		counts: treemap.NewWith(func(a, b any) int {
			return cmp.Compare(a.(T), b.(T))
		}),
	}
}

// SortedFromMultiset builds a SortedMultiset holding the same entries as the
// given multiset.
func SortedFromMultiset[T cmp.Ordered](ms *Multiset[T]) *SortedMultiset[T] {
	sorted := NewSorted[T]()
	for element, count := range ms.counts {
		sorted.counts.Put(element, count)
	}
	sorted.total = ms.total
	return sorted
}

// Count returns the occurrence count for the element, or 0 if it is absent.
func (sm *SortedMultiset[T]) Count(element T) int {
	found, ok := sm.counts.Get(element)
	if !ok {
		return 0
	}
	return found.(int)
}

// Contains returns true if the element has at least one occurrence.
func (sm *SortedMultiset[T]) Contains(element T) bool {
	return sm.Count(element) > 0
}

// Add adds a single occurrence of the element.
func (sm *SortedMultiset[T]) Add(element T) error {
	_, err := sm.AddCount(element, 1)
	return err
}

// AddCount adds the given number of occurrences of the element, returning
// whether the multiset changed. The error contract matches
// Multiset.AddCount.
func (sm *SortedMultiset[T]) AddCount(element T, occurrences int) (bool, error) {
	if occurrences < 0 {
		return false, collerrors.NewInvalidArgumentf("occurrences must be non-negative, got %d", occurrences)
	}
	if occurrences == 0 {
		return false, nil
	}

	existing := sm.Count(element)
	if occurrences > MaxCount-existing {
		return false, collerrors.NewInvalidArgumentf(
			"cannot add %d occurrences to an element with %d: count would exceed %d",
			occurrences, existing, MaxCount)
	}

	sm.counts.Put(element, existing+occurrences)
	sm.total += int64(occurrences)
	return true, nil
}

// Remove removes a single occurrence of the element, returning whether an
// occurrence was present to remove.
func (sm *SortedMultiset[T]) Remove(element T) bool {
	removed, _ := sm.RemoveCount(element, 1)
	return removed == 1
}

// RemoveCount removes up to the given number of occurrences of the element,
// returning the number actually removed. The error contract matches
// Multiset.RemoveCount.
func (sm *SortedMultiset[T]) RemoveCount(element T, occurrences int) (int, error) {
	if occurrences < 0 {
		return 0, collerrors.NewInvalidArgumentf("occurrences must be non-negative, got %d", occurrences)
	}
	if occurrences == 0 {
		return 0, nil
	}

	existing := sm.Count(element)
	if existing == 0 {
		return 0, nil
	}

	removed := occurrences
	if removed >= existing {
		removed = existing
		sm.counts.Remove(element)
	} else {
		sm.counts.Put(element, existing-removed)
	}

	sm.total -= int64(removed)
	return removed, nil
}

// RemoveAllOf removes every occurrence of the element, returning its prior
// count.
func (sm *SortedMultiset[T]) RemoveAllOf(element T) int {
	removed, _ := sm.RemoveCount(element, MaxCount)
	return removed
}

// Len returns the total number of occurrences across all elements, capped at
// the maximum int value.
func (sm *SortedMultiset[T]) Len() int {
	return genutil.CapToInt(sm.total)
}

// Distinct returns the number of distinct elements.
func (sm *SortedMultiset[T]) Distinct() int {
	return sm.counts.Size()
}

// IsEmpty returns true if the multiset holds no occurrences.
func (sm *SortedMultiset[T]) IsEmpty() bool {
	return sm.counts.Empty()
}

// Clear removes all elements.
func (sm *SortedMultiset[T]) Clear() {
	sm.counts.Clear()
	sm.total = 0
}

// Min returns the smallest element and whether the multiset is non-empty.
func (sm *SortedMultiset[T]) Min() (T, bool) {
	key, _ := sm.counts.Min()
	if key == nil {
		var zero T
		return zero, false
	}
	return key.(T), true
}

// Max returns the largest element and whether the multiset is non-empty.
func (sm *SortedMultiset[T]) Max() (T, bool) {
	key, _ := sm.counts.Max()
	if key == nil {
		var zero T
		return zero, false
	}
	return key.(T), true
}

// Entries returns an iterator over (element, count) entries in ascending
// element order.
func (sm *SortedMultiset[T]) Entries() iter.Seq[Entry[T]] {
	return func(yield func(Entry[T]) bool) {
		it := sm.counts.Iterator()
		for it.Next() {
			if !yield(Entry[T]{Element: it.Key().(T), Count: it.Value().(int)}) {
				return
			}
		}
	}
}

// All returns a lazy iterator over the flattened form of the multiset in
// ascending element order, yielding each element once per occurrence.
func (sm *SortedMultiset[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		it := sm.counts.Iterator()
		for it.Next() {
			element := it.Key().(T)
			count := it.Value().(int)
			for occurrence := 0; occurrence < count; occurrence++ {
				if !yield(element) {
					return
				}
			}
		}
	}
}

// AsSlice returns the flattened form of the multiset as a slice, in ascending
// element order.
func (sm *SortedMultiset[T]) AsSlice() []T {
	if sm.total == 0 {
		return nil
	}

	slice := make([]T, 0, sm.Len())
	for element := range sm.All() {
		slice = append(slice, element)
	}
	return slice
}

// AsMultiset returns an unordered copy of this multiset.
func (sm *SortedMultiset[T]) AsMultiset() *Multiset[T] {
	ms := NewWithCap[T](genutil.MustEnsureUInt32(sm.counts.Size()))
	for entry := range sm.Entries() {
		ms.counts[entry.Element] = entry.Count
	}
	ms.total = sm.total
	return ms
}
