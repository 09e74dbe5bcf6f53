package syncz

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/authzed/collectionz/pkg/collerrors"
	"github.com/authzed/collectionz/pkg/genutil/multisetz"
)

func TestConcurrentMultisetBasicOperations(t *testing.T) {
	cm := NewConcurrentMultiset[string]()
	require.True(t, cm.IsEmpty())

	require.NoError(t, cm.Add("a"))
	changed, err := cm.AddCount("a", 4)
	require.NoError(t, err)
	require.True(t, changed)

	require.Equal(t, 5, cm.Count("a"))
	require.True(t, cm.Contains("a"))
	require.Equal(t, 5, cm.Len())
	require.Equal(t, 1, cm.Distinct())

	removed, err := cm.RemoveCount("a", 2)
	require.NoError(t, err)
	require.Equal(t, 2, removed)
	require.Equal(t, 3, cm.Count("a"))

	// Removal caps at the current count and deletes the entry at zero.
	removed, err = cm.RemoveCount("a", 10)
	require.NoError(t, err)
	require.Equal(t, 3, removed)
	require.Equal(t, 0, cm.Count("a"))
	require.Equal(t, 0, cm.Distinct())
	require.True(t, cm.IsEmpty())
}

func TestConcurrentMultisetValidation(t *testing.T) {
	cm := NewConcurrentMultiset[string]()

	_, err := cm.AddCount("a", -1)
	require.Error(t, err)
	_, ok := collerrors.AsInvalidArgument(err)
	require.True(t, ok)

	_, err = cm.RemoveCount("a", -1)
	require.Error(t, err)

	_, err = cm.AddCount("a", multisetz.MaxCount)
	require.NoError(t, err)
	err = cm.Add("a")
	require.Error(t, err)
	require.Equal(t, multisetz.MaxCount, cm.Count("a"))
}

func TestConcurrentMultisetParallelAdds(t *testing.T) {
	cm := NewConcurrentMultiset[int]()

	const goroutines = 16
	const perGoroutine = 200

	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func(base int) {
			defer wg.Done()
			for i := 0; i < perGoroutine; i++ {
				require.NoError(t, cm.Add(base%8))
			}
		}(g)
	}
	wg.Wait()

	require.Equal(t, goroutines*perGoroutine, cm.Len())
	require.Equal(t, 8, cm.Distinct())

	total := 0
	cm.ForEachEntry(func(entry multisetz.Entry[int]) bool {
		total += entry.Count
		return true
	})
	require.Equal(t, goroutines*perGoroutine, total)
}

func TestConcurrentMultisetParallelAddRemove(t *testing.T) {
	cm := NewConcurrentMultiset[string]()

	const pairs = 8
	const perGoroutine = 200

	var wg sync.WaitGroup
	for g := 0; g < pairs; g++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for i := 0; i < perGoroutine; i++ {
				require.NoError(t, cm.Add("shared"))
			}
		}()
		go func() {
			defer wg.Done()
			for i := 0; i < perGoroutine; i++ {
				cm.Remove("shared")
			}
		}()
	}
	wg.Wait()

	// Adds and removes may interleave arbitrarily, but the count can never
	// be negative and the total must match the count.
	count := cm.Count("shared")
	require.GreaterOrEqual(t, count, 0)
	require.Equal(t, count, cm.Len())
}

func TestConcurrentMultisetSnapshotAndClear(t *testing.T) {
	cm := NewConcurrentMultiset[string]()
	_, err := cm.AddCount("a", 3)
	require.NoError(t, err)
	require.NoError(t, cm.Add("b"))

	snapshot := cm.Snapshot()
	require.Equal(t, 3, snapshot.Count("a"))
	require.Equal(t, 4, snapshot.Len())

	cm.Clear()
	require.True(t, cm.IsEmpty())
	require.Equal(t, 0, cm.Len())

	// The snapshot is unaffected.
	require.Equal(t, 4, snapshot.Len())
}
