package syncz

import (
	"sync/atomic"

	"github.com/puzpuzpuz/xsync/v4"

	"github.com/authzed/collectionz/pkg/collerrors"
	"github.com/authzed/collectionz/pkg/genutil"
	"github.com/authzed/collectionz/pkg/genutil/multisetz"
)

// ConcurrentMultiset is a counted-element collection safe for concurrent use
// without external locking, backed by a sharded concurrent map with per-key
// atomic count updates.
//
// The cached total is updated after each per-key mutation, so Len may lag a
// mutation in flight on another goroutine; it is exact whenever no mutation
// is concurrent with the read.
type ConcurrentMultiset[T comparable] struct {
	counts *xsync.Map[T, int]
	total  atomic.Int64
}

// NewConcurrentMultiset constructs a new concurrent multiset.
func NewConcurrentMultiset[T comparable]() *ConcurrentMultiset[T] {
	return &ConcurrentMultiset[T]{counts: xsync.NewMap[T, int]()}
}

// Count returns the occurrence count for the element, or 0 if it is absent.
func (cm *ConcurrentMultiset[T]) Count(element T) int {
	found, _ := cm.counts.Load(element)
	return found
}

// Contains returns true if the element has at least one occurrence.
func (cm *ConcurrentMultiset[T]) Contains(element T) bool {
	return cm.Count(element) > 0
}

// Add adds a single occurrence of the element.
func (cm *ConcurrentMultiset[T]) Add(element T) error {
	_, err := cm.AddCount(element, 1)
	return err
}

// AddCount atomically adds the given number of occurrences of the element.
// The error contract matches multisetz.Multiset.AddCount.
func (cm *ConcurrentMultiset[T]) AddCount(element T, occurrences int) (bool, error) {
	if occurrences < 0 {
		return false, collerrors.NewInvalidArgumentf("occurrences must be non-negative, got %d", occurrences)
	}
	if occurrences == 0 {
		return false, nil
	}

	var overflowErr error
	cm.counts.Compute(element, func(oldCount int, _ bool) (int, xsync.ComputeOp) {
		if occurrences > multisetz.MaxCount-oldCount {
			overflowErr = collerrors.NewInvalidArgumentf(
				"cannot add %d occurrences to an element with %d: count would exceed %d",
				occurrences, oldCount, multisetz.MaxCount)
			return oldCount, xsync.CancelOp
		}
		return oldCount + occurrences, xsync.UpdateOp
	})
	if overflowErr != nil {
		return false, overflowErr
	}

	cm.total.Add(int64(occurrences))
	return true, nil
}

// Remove removes a single occurrence of the element.
func (cm *ConcurrentMultiset[T]) Remove(element T) bool {
	removed, _ := cm.RemoveCount(element, 1)
	return removed == 1
}

// RemoveCount atomically removes up to the given number of occurrences of
// the element, returning the number actually removed. The element is deleted
// from the backing map when its count reaches zero.
func (cm *ConcurrentMultiset[T]) RemoveCount(element T, occurrences int) (int, error) {
	if occurrences < 0 {
		return 0, collerrors.NewInvalidArgumentf("occurrences must be non-negative, got %d", occurrences)
	}
	if occurrences == 0 {
		return 0, nil
	}

	removed := 0
	cm.counts.Compute(element, func(oldCount int, loaded bool) (int, xsync.ComputeOp) {
		if !loaded {
			return 0, xsync.CancelOp
		}

		removed = occurrences
		if removed >= oldCount {
			removed = oldCount
			return 0, xsync.DeleteOp
		}
		return oldCount - removed, xsync.UpdateOp
	})

	cm.total.Add(-int64(removed))
	return removed, nil
}

// RemoveAllOf removes every occurrence of the element, returning its prior
// count.
func (cm *ConcurrentMultiset[T]) RemoveAllOf(element T) int {
	removed, _ := cm.RemoveCount(element, multisetz.MaxCount)
	return removed
}

// Len returns the total number of occurrences across all elements.
func (cm *ConcurrentMultiset[T]) Len() int {
	return genutil.CapToInt(cm.total.Load())
}

// Distinct returns the number of distinct elements.
func (cm *ConcurrentMultiset[T]) Distinct() int {
	return cm.counts.Size()
}

// IsEmpty returns true if the multiset holds no occurrences.
func (cm *ConcurrentMultiset[T]) IsEmpty() bool {
	return cm.counts.Size() == 0
}

// ForEachEntry executes the callback for each (element, count) entry until
// the callback returns false. Entries observed concurrently with mutation
// may reflect either the old or the new state.
func (cm *ConcurrentMultiset[T]) ForEachEntry(callback func(entry multisetz.Entry[T]) bool) {
	cm.counts.Range(func(element T, count int) bool {
		return callback(multisetz.Entry[T]{Element: element, Count: count})
	})
}

// Clear removes all elements. Not atomic with respect to concurrent
// mutators: occurrences added while Clear runs may survive it.
func (cm *ConcurrentMultiset[T]) Clear() {
	cm.counts.Range(func(element T, _ int) bool {
		count, loaded := cm.counts.LoadAndDelete(element)
		if loaded {
			cm.total.Add(-int64(count))
		}
		return true
	})
}

// Snapshot copies the entries into a regular multiset. The copy is not a
// consistent point-in-time view under concurrent mutation.
func (cm *ConcurrentMultiset[T]) Snapshot() *multisetz.Multiset[T] {
	ms := multisetz.New[T]()
	cm.counts.Range(func(element T, count int) bool {
		_, _ = ms.AddCount(element, count)
		return true
	})
	return ms
}
