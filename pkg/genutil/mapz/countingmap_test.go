package mapz

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBasicCountingMap(t *testing.T) {
	cmap := NewCountingMultiMap[string, string]()

	require.False(t, cmap.Add("foo", "1"))
	require.False(t, cmap.Add("foo", "2"))
	require.False(t, cmap.Add("bar", "1"))

	require.True(t, cmap.Add("foo", "1"))

	cmap.Remove("foo", "1")

	require.False(t, cmap.Add("foo", "1"))
	require.True(t, cmap.Add("foo", "2"))
}

func TestCountingMapKeyRemoval(t *testing.T) {
	cmap := NewCountingMultiMap[string, string]()

	cmap.Add("foo", "1")
	cmap.Add("foo", "2")
	require.True(t, cmap.Has("foo"))
	require.Equal(t, 2, cmap.DistinctCountOf("foo"))

	cmap.Remove("foo", "1")
	require.True(t, cmap.Has("foo"))
	require.Equal(t, 1, cmap.DistinctCountOf("foo"))

	// Removing the last value removes the key entirely.
	cmap.Remove("foo", "2")
	require.False(t, cmap.Has("foo"))
	require.Equal(t, 0, cmap.DistinctCountOf("foo"))

	// Removing from a missing key is a no-op.
	cmap.Remove("unknown", "1")
	require.False(t, cmap.Has("unknown"))
}
