// Package multisetz implements a counted-element collection: a collection
// permitting repeated elements, stored as a mapping from each distinct
// element to its occurrence count.
package multisetz

import (
	"fmt"
	"iter"
	"math"
	"sort"
	"strings"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/exp/maps"

	"github.com/authzed/collectionz/pkg/collerrors"
	"github.com/authzed/collectionz/pkg/genutil"
	"github.com/authzed/collectionz/pkg/genutil/slicez"
)

// MaxCount is the largest occurrence count a single element may hold.
const MaxCount = math.MaxInt32

// Entry pairs a distinct element with its occurrence count.
type Entry[T comparable] struct {
	Element T
	Count   int
}

// Multiset is a map-backed counted-element collection.
//
// The zero value of T is an ordinary element. Not safe for concurrent use;
// wrap with syncz for external locking.
type Multiset[T comparable] struct {
	counts map[T]int

	// total is the sum of all counts, maintained incrementally so Len is O(1).
	total int64
}

// New initializes a new Multiset.
func New[T comparable]() *Multiset[T] {
	return &Multiset[T]{counts: map[T]int{}}
}

// NewWithCap initializes with the provided capacity for the backing map of
// distinct elements.
func NewWithCap[T comparable](capacity uint32) *Multiset[T] {
	return &Multiset[T]{counts: make(map[T]int, capacity)}
}

// FromSlice builds a multiset holding each item of the slice once per
// appearance.
func FromSlice[T comparable](items []T) *Multiset[T] {
	return &Multiset[T]{
		counts: slicez.CountValues(items),
		total:  int64(len(items)),
	}
}

// Count returns the occurrence count for the element, or 0 if it is absent.
func (ms *Multiset[T]) Count(element T) int {
	return ms.counts[element]
}

// Contains returns true if the element has at least one occurrence.
func (ms *Multiset[T]) Contains(element T) bool {
	return ms.counts[element] > 0
}

// Add adds a single occurrence of the element. Returns an
// InvalidArgumentError if the element is already at MaxCount.
func (ms *Multiset[T]) Add(element T) error {
	_, err := ms.AddCount(element, 1)
	return err
}

// AddCount adds the given number of occurrences of the element, returning
// whether the multiset changed.
//
// Returns an InvalidArgumentError if occurrences is negative or if the
// addition would push the element's count past MaxCount; the multiset is
// left unchanged on error.
func (ms *Multiset[T]) AddCount(element T, occurrences int) (bool, error) {
	if occurrences < 0 {
		return false, collerrors.NewInvalidArgumentf("occurrences must be non-negative, got %d", occurrences)
	}
	if occurrences == 0 {
		return false, nil
	}

	existing := ms.counts[element]
	if occurrences > MaxCount-existing {
		return false, collerrors.NewInvalidArgumentf(
			"cannot add %d occurrences to an element with %d: count would exceed %d",
			occurrences, existing, MaxCount)
	}

	ms.counts[element] = existing + occurrences
	ms.total += int64(occurrences)
	return true, nil
}

// Remove removes a single occurrence of the element, returning whether an
// occurrence was present to remove.
func (ms *Multiset[T]) Remove(element T) bool {
	removed, _ := ms.RemoveCount(element, 1)
	return removed == 1
}

// RemoveCount removes up to the given number of occurrences of the element,
// returning the number actually removed. When the count reaches zero the
// element is deleted from the backing map entirely.
//
// Returns an InvalidArgumentError if occurrences is negative.
func (ms *Multiset[T]) RemoveCount(element T, occurrences int) (int, error) {
	if occurrences < 0 {
		return 0, collerrors.NewInvalidArgumentf("occurrences must be non-negative, got %d", occurrences)
	}
	if occurrences == 0 {
		return 0, nil
	}

	existing, ok := ms.counts[element]
	if !ok {
		return 0, nil
	}

	removed := occurrences
	if removed >= existing {
		removed = existing
		delete(ms.counts, element)
	} else {
		ms.counts[element] = existing - removed
	}

	ms.total -= int64(removed)
	collerrors.DebugAssertf(func() bool { return ms.total >= 0 }, "multiset total went negative after removing %d occurrences", removed)
	return removed, nil
}

// RemoveAllOf removes every occurrence of the element, returning its prior
// count.
func (ms *Multiset[T]) RemoveAllOf(element T) int {
	removed, _ := ms.RemoveCount(element, MaxCount)
	return removed
}

// SetCount forces the element's count to the given value, returning the prior
// count. A count of zero deletes the element.
//
// Returns an InvalidArgumentError if count is negative or exceeds MaxCount.
func (ms *Multiset[T]) SetCount(element T, count int) (int, error) {
	if count < 0 || count > MaxCount {
		return 0, collerrors.NewInvalidArgumentf("count must be in [0, %d], got %d", MaxCount, count)
	}

	prior := ms.counts[element]
	if count == 0 {
		delete(ms.counts, element)
	} else {
		ms.counts[element] = count
	}

	ms.total += int64(count) - int64(prior)
	return prior, nil
}

// Len returns the total number of occurrences across all elements, capped at
// the maximum int value rather than overflowing.
func (ms *Multiset[T]) Len() int {
	return genutil.CapToInt(ms.total)
}

// Distinct returns the number of distinct elements.
func (ms *Multiset[T]) Distinct() int {
	return len(ms.counts)
}

// IsEmpty returns true if the multiset holds no occurrences.
func (ms *Multiset[T]) IsEmpty() bool {
	return len(ms.counts) == 0
}

// Clear removes all elements.
func (ms *Multiset[T]) Clear() {
	ms.counts = map[T]int{}
	ms.total = 0
}

// Elements returns an iterator over the distinct elements, in no particular
// order.
func (ms *Multiset[T]) Elements() iter.Seq[T] {
	return func(yield func(T) bool) {
		for element := range ms.counts {
			if !yield(element) {
				return
			}
		}
	}
}

// Entries returns an iterator over (element, count) entries, in no particular
// order.
func (ms *Multiset[T]) Entries() iter.Seq[Entry[T]] {
	return func(yield func(Entry[T]) bool) {
		for element, count := range ms.counts {
			if !yield(Entry[T]{Element: element, Count: count}) {
				return
			}
		}
	}
}

// All returns a lazy iterator over the flattened form of the multiset: each
// element is yielded once per occurrence, with occurrences of the same
// element adjacent. Each call produces a fresh iteration.
//
// Structural mutation of the multiset while iterating is undefined behavior,
// mirroring Go's own map iteration contract.
func (ms *Multiset[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for element, count := range ms.counts {
			for occurrence := 0; occurrence < count; occurrence++ {
				if !yield(element) {
					return
				}
			}
		}
	}
}

// AsSlice returns the flattened form of the multiset as a slice.
func (ms *Multiset[T]) AsSlice() []T {
	if ms.total == 0 {
		return nil
	}

	slice := make([]T, 0, ms.Len())
	for element := range ms.All() {
		slice = append(slice, element)
	}
	return slice
}

// AsMap returns a copy of the element-to-count mapping.
func (ms *Multiset[T]) AsMap() map[T]int {
	return maps.Clone(ms.counts)
}

// Clone returns a clone of the multiset.
func (ms *Multiset[T]) Clone() *Multiset[T] {
	return &Multiset[T]{counts: maps.Clone(ms.counts), total: ms.total}
}

// Equal returns true if both multisets hold identical element-to-count
// mappings, independent of the order in which elements were added.
func (ms *Multiset[T]) Equal(other *Multiset[T]) bool {
	return maps.Equal(ms.counts, other.counts)
}

// Hash returns an order-independent digest of the multiset's entries. Equal
// multisets produce the same hash, enabling use as a grouping key.
//
// Elements are digested through their default formatting, so two distinct
// elements with identical formatting hash identically; this only widens the
// usual hash-collision caveat.
func (ms *Multiset[T]) Hash() uint64 {
	var combined uint64
	for element, count := range ms.counts {
		entryDigest := xxhash.Sum64String(fmt.Sprintf("%v", element))
		combined += entryDigest ^ uint64(count)
	}
	return combined
}

// String returns a deterministic representation of the multiset, with entries
// sorted by their formatted element.
func (ms *Multiset[T]) String() string {
	formatted := slicez.Map(ms.entriesSlice(), func(entry Entry[T]) string {
		return fmt.Sprintf("%v x %d", entry.Element, entry.Count)
	})
	sort.Strings(formatted)
	return "[" + strings.Join(formatted, ", ") + "]"
}

// Union returns a new multiset whose count for each element is the larger of
// the two counts.
func (ms *Multiset[T]) Union(other *Multiset[T]) *Multiset[T] {
	result := ms.Clone()
	for element, count := range other.counts {
		if count > result.counts[element] {
			result.total += int64(count) - int64(result.counts[element])
			result.counts[element] = count
		}
	}
	return result
}

// Intersect returns a new multiset whose count for each element is the
// smaller of the two counts, dropping elements missing from either side.
func (ms *Multiset[T]) Intersect(other *Multiset[T]) *Multiset[T] {
	result := New[T]()
	for element, count := range ms.counts {
		otherCount := other.counts[element]
		if otherCount < count {
			count = otherCount
		}
		if count > 0 {
			result.counts[element] = count
			result.total += int64(count)
		}
	}
	return result
}

// Difference returns a new multiset whose count for each element is this
// multiset's count minus the other's, floored at zero.
func (ms *Multiset[T]) Difference(other *Multiset[T]) *Multiset[T] {
	result := New[T]()
	for element, count := range ms.counts {
		remaining := count - other.counts[element]
		if remaining > 0 {
			result.counts[element] = remaining
			result.total += int64(remaining)
		}
	}
	return result
}

// AddAll adds every occurrence held by the other multiset into this one.
// On a per-element overflow the multiset is left unchanged and an
// InvalidArgumentError is returned.
func (ms *Multiset[T]) AddAll(other *Multiset[T]) error {
	for element, count := range other.counts {
		if count > MaxCount-ms.counts[element] {
			return collerrors.NewInvalidArgumentf(
				"cannot add %d occurrences to an element with %d: count would exceed %d",
				count, ms.counts[element], MaxCount)
		}
	}

	for element, count := range other.counts {
		ms.counts[element] += count
		ms.total += int64(count)
	}
	return nil
}

func (ms *Multiset[T]) entriesSlice() []Entry[T] {
	entries := make([]Entry[T], 0, len(ms.counts))
	for element, count := range ms.counts {
		entries = append(entries, Entry[T]{Element: element, Count: count})
	}
	return entries
}
