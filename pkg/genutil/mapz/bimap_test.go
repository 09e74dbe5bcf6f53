package mapz

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/authzed/collectionz/pkg/collerrors"
)

func TestBiMapOperations(t *testing.T) {
	bm := NewBiMap[string, int]()
	require.True(t, bm.IsEmpty())
	require.Equal(t, 0, bm.Len())

	bm.Put("one", 1)
	bm.Put("two", 2)

	require.Equal(t, 2, bm.Len())
	require.False(t, bm.IsEmpty())

	value, ok := bm.GetByKey("one")
	require.True(t, ok)
	require.Equal(t, 1, value)

	key, ok := bm.GetByValue(2)
	require.True(t, ok)
	require.Equal(t, "two", key)

	_, ok = bm.GetByKey("three")
	require.False(t, ok)
	_, ok = bm.GetByValue(3)
	require.False(t, ok)

	require.True(t, bm.HasKey("one"))
	require.True(t, bm.HasValue(1))
	require.False(t, bm.HasKey("three"))
	require.False(t, bm.HasValue(3))

	foundKeys := bm.Keys()
	sort.Strings(foundKeys)
	require.Equal(t, []string{"one", "two"}, foundKeys)

	foundValues := bm.Values()
	sort.Ints(foundValues)
	require.Equal(t, []int{1, 2}, foundValues)
}

func TestBiMapPutEvictsConflicts(t *testing.T) {
	bm := NewBiMap[string, int]()
	bm.Put("one", 1)
	bm.Put("two", 2)

	// Rebinding a key drops its old value from the backward map.
	bm.Put("one", 100)
	require.False(t, bm.HasValue(1))
	value, _ := bm.GetByKey("one")
	require.Equal(t, 100, value)

	// Rebinding a value drops its old key from the forward map.
	bm.Put("deux", 2)
	require.False(t, bm.HasKey("two"))
	key, _ := bm.GetByValue(2)
	require.Equal(t, "deux", key)

	require.Equal(t, 2, bm.Len())
}

func TestBiMapPutIfAbsent(t *testing.T) {
	bm := NewBiMap[string, int]()
	require.NoError(t, bm.PutIfAbsent("one", 1))

	err := bm.PutIfAbsent("one", 100)
	require.Error(t, err)
	_, ok := collerrors.AsInvalidArgument(err)
	require.True(t, ok)

	err = bm.PutIfAbsent("uno", 1)
	require.Error(t, err)

	// The failed calls must not have changed anything.
	require.Equal(t, 1, bm.Len())
	value, _ := bm.GetByKey("one")
	require.Equal(t, 1, value)
	require.False(t, bm.HasKey("uno"))
}

func TestBiMapDelete(t *testing.T) {
	bm := NewBiMap[string, int]()
	bm.Put("one", 1)
	bm.Put("two", 2)

	require.True(t, bm.DeleteKey("one"))
	require.False(t, bm.DeleteKey("one"))
	require.False(t, bm.HasValue(1))

	require.True(t, bm.DeleteValue(2))
	require.False(t, bm.DeleteValue(2))
	require.False(t, bm.HasKey("two"))

	require.True(t, bm.IsEmpty())
}

func TestBiMapInverse(t *testing.T) {
	bm := NewBiMap[string, int]()
	bm.Put("one", 1)

	inverse := bm.Inverse()
	key, ok := inverse.GetByKey(1)
	require.True(t, ok)
	require.Equal(t, "one", key)

	// Mutations through the inverse view are visible in the original.
	inverse.Put(2, "two")
	value, ok := bm.GetByKey("two")
	require.True(t, ok)
	require.Equal(t, 2, value)

	// Round-tripping the view yields the original associations.
	require.Equal(t, bm.AsMap(), inverse.Inverse().AsMap())

	// Clearing through the view clears the original.
	inverse.Clear()
	require.True(t, bm.IsEmpty())
}

func TestBiMapClone(t *testing.T) {
	bm := NewBiMap[string, int]()
	bm.Put("one", 1)

	cloned := bm.Clone()
	cloned.Put("two", 2)

	require.Equal(t, 1, bm.Len())
	require.Equal(t, 2, cloned.Len())
	require.False(t, bm.HasKey("two"))
}
