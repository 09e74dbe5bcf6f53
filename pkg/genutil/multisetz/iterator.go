package multisetz

import (
	"github.com/authzed/collectionz/pkg/collerrors"
)

// Iterator walks the flattened form of a multiset, yielding each element once
// per occurrence and supporting removal of the element most recently yielded.
//
// The distinct elements and their counts are snapshotted when the iterator is
// created; removals through the iterator mutate the underlying multiset.
// Any other structural mutation of the multiset during iteration is
// undefined behavior.
type Iterator[T comparable] struct {
	ms        *Multiset[T]
	entries   []Entry[T]
	nextEntry int

	// remaining is the number of occurrences of the current entry not yet
	// yielded.
	remaining int

	current T
	valid   bool
	removed bool
}

// Iterator returns a flattened iterator over the multiset.
func (ms *Multiset[T]) Iterator() *Iterator[T] {
	return &Iterator[T]{
		ms:      ms,
		entries: ms.entriesSlice(),
	}
}

// Next advances the iterator, returning whether an element is available via
// Value.
func (it *Iterator[T]) Next() bool {
	for it.remaining == 0 {
		if it.nextEntry >= len(it.entries) {
			return false
		}

		entry := it.entries[it.nextEntry]
		it.nextEntry++
		it.current = entry.Element
		it.remaining = entry.Count
	}

	it.remaining--
	it.valid = true
	it.removed = false
	return true
}

// Value returns the element most recently yielded by Next. Only meaningful
// after Next has returned true.
func (it *Iterator[T]) Value() T {
	return it.current
}

// Remove removes a single occurrence of the element most recently yielded by
// Next from the underlying multiset, deleting the element's entry if its
// count reaches zero.
//
// Returns an IteratorStateError if Next has not yet returned true, or if
// Remove was already called for the current element.
func (it *Iterator[T]) Remove() error {
	if !it.valid {
		return collerrors.NewIteratorStatef("Remove called before a successful Next")
	}
	if it.removed {
		return collerrors.NewIteratorStatef("Remove already called for the current element")
	}

	it.removed = true
	it.ms.Remove(it.current)
	return nil
}
