package syncz

import (
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSynchronizedMapOperations(t *testing.T) {
	sm := NewMap[string, int]()
	require.True(t, sm.IsEmpty())

	sm.Set("a", 1)
	sm.Set("b", 2)
	require.Equal(t, 2, sm.Len())

	found, ok := sm.Get("a")
	require.True(t, ok)
	require.Equal(t, 1, found)

	_, ok = sm.Get("c")
	require.False(t, ok)
	require.True(t, sm.Has("b"))

	keys := sm.Keys()
	sort.Strings(keys)
	require.Equal(t, []string{"a", "b"}, keys)

	snapshot := sm.Snapshot()
	require.Equal(t, map[string]int{"a": 1, "b": 2}, snapshot)

	require.True(t, sm.Delete("a"))
	require.False(t, sm.Delete("a"))
	require.Equal(t, 1, sm.Len())

	// The snapshot is a copy.
	require.Equal(t, 2, len(snapshot))

	sm.Clear()
	require.True(t, sm.IsEmpty())
}

func TestSynchronizedMapConcurrentAccess(t *testing.T) {
	sm := NewMap[int, int]()

	var wg sync.WaitGroup
	for g := 0; g < 16; g++ {
		wg.Add(1)
		go func(key int) {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				sm.Set(key, i)
				_, _ = sm.Get(key)
			}
		}(g)
	}
	wg.Wait()

	require.Equal(t, 16, sm.Len())
}

func TestSynchronizedSetOperations(t *testing.T) {
	ss := NewSet("a", "b")

	require.True(t, ss.Has("a"))
	require.False(t, ss.Add("a"))
	require.True(t, ss.Add("c"))
	require.Equal(t, 3, ss.Len())

	require.True(t, ss.Delete("b"))
	require.False(t, ss.Delete("b"))
	require.False(t, ss.IsEmpty())

	snapshot := ss.Snapshot()
	require.True(t, snapshot.Has("c"))

	// Mutating the snapshot does not affect the wrapper.
	snapshot.Add("z")
	require.False(t, ss.Has("z"))
}

func TestSynchronizedSetConcurrentAdds(t *testing.T) {
	ss := NewSet[int]()

	var wg sync.WaitGroup
	for g := 0; g < 16; g++ {
		wg.Add(1)
		go func(value int) {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				ss.Add(value % 8)
			}
		}(g)
	}
	wg.Wait()

	require.Equal(t, 8, ss.Len())
}
