// Package immutablez provides single-use builders that produce read-only
// collections. The read-only types expose no mutators, so immutability is
// enforced at compile time; the builders reject reuse after Build with an
// UnsupportedOperationError.
package immutablez

import (
	"iter"

	"github.com/authzed/collectionz/pkg/collerrors"
	"github.com/authzed/collectionz/pkg/genutil/mapz"
	"github.com/authzed/collectionz/pkg/genutil/multisetz"
)

// ReadOnlyMultiset is the query-only surface of a multiset.
type ReadOnlyMultiset[T comparable] interface {
	// Count returns the occurrence count for the element, or 0 if absent.
	Count(element T) int

	// Contains returns true if the element has at least one occurrence.
	Contains(element T) bool

	// Len returns the total number of occurrences across all elements.
	Len() int

	// Distinct returns the number of distinct elements.
	Distinct() int

	// IsEmpty returns true if the multiset holds no occurrences.
	IsEmpty() bool

	// Elements returns an iterator over the distinct elements.
	Elements() iter.Seq[T]

	// Entries returns an iterator over (element, count) entries.
	Entries() iter.Seq[multisetz.Entry[T]]

	// All returns an iterator over the flattened form of the multiset.
	All() iter.Seq[T]

	// AsSlice returns the flattened form of the multiset as a slice.
	AsSlice() []T
}

type readOnlyMultiset[T comparable] struct {
	ms *multisetz.Multiset[T]
}

func (ro readOnlyMultiset[T]) Count(element T) int                 { return ro.ms.Count(element) }
func (ro readOnlyMultiset[T]) Contains(element T) bool             { return ro.ms.Contains(element) }
func (ro readOnlyMultiset[T]) Len() int                            { return ro.ms.Len() }
func (ro readOnlyMultiset[T]) Distinct() int                       { return ro.ms.Distinct() }
func (ro readOnlyMultiset[T]) IsEmpty() bool                       { return ro.ms.IsEmpty() }
func (ro readOnlyMultiset[T]) Elements() iter.Seq[T]               { return ro.ms.Elements() }
func (ro readOnlyMultiset[T]) Entries() iter.Seq[multisetz.Entry[T]] { return ro.ms.Entries() }
func (ro readOnlyMultiset[T]) All() iter.Seq[T]                    { return ro.ms.All() }
func (ro readOnlyMultiset[T]) AsSlice() []T                        { return ro.ms.AsSlice() }

// MultisetBuilder accumulates elements for a read-only multiset.
type MultisetBuilder[T comparable] struct {
	ms    *multisetz.Multiset[T]
	err   error
	built bool
}

// NewMultisetBuilder constructs a new multiset builder.
func NewMultisetBuilder[T comparable]() *MultisetBuilder[T] {
	return &MultisetBuilder[T]{ms: multisetz.New[T]()}
}

// Add adds a single occurrence of each given element, for chaining. Errors
// are deferred and reported by Build.
func (b *MultisetBuilder[T]) Add(elements ...T) *MultisetBuilder[T] {
	if b.built {
		b.record(nil)
		return b
	}

	for _, element := range elements {
		b.record(b.ms.Add(element))
	}
	return b
}

// AddCount adds the given number of occurrences of the element, for
// chaining. Errors are deferred and reported by Build.
func (b *MultisetBuilder[T]) AddCount(element T, occurrences int) *MultisetBuilder[T] {
	if b.built {
		b.record(nil)
		return b
	}

	_, err := b.ms.AddCount(element, occurrences)
	b.record(err)
	return b
}

// Build produces the read-only multiset. Returns the first deferred error,
// if any, or an UnsupportedOperationError if the builder was already
// consumed.
func (b *MultisetBuilder[T]) Build() (ReadOnlyMultiset[T], error) {
	if b.built {
		return nil, collerrors.NewUnsupportedOperationError("Build on a consumed builder")
	}
	b.built = true
	if b.err != nil {
		return nil, b.err
	}
	return readOnlyMultiset[T]{ms: b.ms}, nil
}

func (b *MultisetBuilder[T]) record(err error) {
	if b.err == nil && err != nil {
		b.err = err
	}
	if b.built {
		b.err = collerrors.NewUnsupportedOperationError("mutation of a consumed builder")
	}
}

// ReadOnlySet is the query-only surface of a set.
type ReadOnlySet[T comparable] interface {
	// Has returns true if the set contains the given value.
	Has(value T) bool

	// Len returns the number of values in the set.
	Len() int

	// IsEmpty returns true if the set is empty.
	IsEmpty() bool

	// All returns an iterator over the values in the set.
	All() iter.Seq[T]

	// AsSlice returns the set as a slice of values.
	AsSlice() []T
}

type readOnlySet[T comparable] struct {
	set *mapz.Set[T]
}

func (ro readOnlySet[T]) Has(value T) bool { return ro.set.Has(value) }
func (ro readOnlySet[T]) Len() int         { return ro.set.Len() }
func (ro readOnlySet[T]) IsEmpty() bool    { return ro.set.IsEmpty() }
func (ro readOnlySet[T]) All() iter.Seq[T] { return ro.set.All() }
func (ro readOnlySet[T]) AsSlice() []T     { return ro.set.AsSlice() }

// SetBuilder accumulates values for a read-only set.
type SetBuilder[T comparable] struct {
	set   *mapz.Set[T]
	built bool
}

// NewSetBuilder constructs a new set builder.
func NewSetBuilder[T comparable]() *SetBuilder[T] {
	return &SetBuilder[T]{set: mapz.NewSet[T]()}
}

// Add adds the given values to the set under construction, for chaining.
func (b *SetBuilder[T]) Add(values ...T) *SetBuilder[T] {
	if b.built {
		return b
	}

	b.set.Extend(values)
	return b
}

// Build produces the read-only set, or an UnsupportedOperationError if the
// builder was already consumed.
func (b *SetBuilder[T]) Build() (ReadOnlySet[T], error) {
	if b.built {
		return nil, collerrors.NewUnsupportedOperationError("Build on a consumed builder")
	}
	b.built = true
	return readOnlySet[T]{set: b.set}, nil
}

// ReadOnlyMap is the query-only surface of a map.
type ReadOnlyMap[K comparable, V any] interface {
	// Get returns the value for the given key and whether the key existed.
	Get(key K) (V, bool)

	// Has returns true if the key is found in the map.
	Has(key K) bool

	// Len returns the number of keys in the map.
	Len() int

	// IsEmpty returns true if the map is empty.
	IsEmpty() bool

	// All returns an iterator over the key/value pairs of the map.
	All() iter.Seq2[K, V]

	// Keys returns the keys of the map.
	Keys() []K
}

type readOnlyMap[K comparable, V any] struct {
	items map[K]V
}

func (ro readOnlyMap[K, V]) Get(key K) (V, bool) {
	found, ok := ro.items[key]
	return found, ok
}

func (ro readOnlyMap[K, V]) Has(key K) bool {
	_, ok := ro.items[key]
	return ok
}

func (ro readOnlyMap[K, V]) Len() int      { return len(ro.items) }
func (ro readOnlyMap[K, V]) IsEmpty() bool { return len(ro.items) == 0 }

func (ro readOnlyMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for key, value := range ro.items {
			if !yield(key, value) {
				return
			}
		}
	}
}

func (ro readOnlyMap[K, V]) Keys() []K {
	keys := make([]K, 0, len(ro.items))
	for key := range ro.items {
		keys = append(keys, key)
	}
	return keys
}

// MapBuilder accumulates key/value pairs for a read-only map.
type MapBuilder[K comparable, V any] struct {
	items map[K]V
	built bool
}

// NewMapBuilder constructs a new map builder.
func NewMapBuilder[K comparable, V any]() *MapBuilder[K, V] {
	return &MapBuilder[K, V]{items: map[K]V{}}
}

// Set sets the value for the given key in the map under construction, for
// chaining. A later Set for the same key replaces the earlier value.
func (b *MapBuilder[K, V]) Set(key K, value V) *MapBuilder[K, V] {
	if b.built {
		return b
	}

	b.items[key] = value
	return b
}

// Build produces the read-only map, or an UnsupportedOperationError if the
// builder was already consumed.
func (b *MapBuilder[K, V]) Build() (ReadOnlyMap[K, V], error) {
	if b.built {
		return nil, collerrors.NewUnsupportedOperationError("Build on a consumed builder")
	}
	b.built = true
	return readOnlyMap[K, V]{items: b.items}, nil
}
