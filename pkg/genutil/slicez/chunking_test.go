package slicez

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestChunks(t *testing.T) {
	tests := []struct {
		name      string
		dataSize  int
		chunkSize uint16
		expected  []int
	}{
		{
			name:      "empty",
			dataSize:  0,
			chunkSize: 10,
			expected:  nil,
		},
		{
			name:      "single partial chunk",
			dataSize:  7,
			chunkSize: 10,
			expected:  []int{7},
		},
		{
			name:      "exact chunks",
			dataSize:  20,
			chunkSize: 10,
			expected:  []int{10, 10},
		},
		{
			name:      "trailing partial chunk",
			dataSize:  25,
			chunkSize: 10,
			expected:  []int{10, 10, 5},
		},
		{
			name:      "zero chunk size falls back to default",
			dataSize:  150,
			chunkSize: 0,
			expected:  []int{100, 50},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := make([]int, tt.dataSize)
			for i := range data {
				data[i] = i
			}

			var sizes []int
			total := 0
			for chunk := range Chunks(data, tt.chunkSize) {
				sizes = append(sizes, len(chunk))
				total += len(chunk)
			}

			require.Equal(t, tt.expected, sizes)
			require.Equal(t, tt.dataSize, total)
		})
	}
}

func TestForEachChunkUntil(t *testing.T) {
	data := []int{1, 2, 3, 4, 5, 6, 7}

	calls := 0
	ok, err := ForEachChunkUntil(data, 3, func(items []int) (bool, error) {
		calls++
		return true, nil
	})
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 3, calls)

	calls = 0
	ok, err = ForEachChunkUntil(data, 3, func(items []int) (bool, error) {
		calls++
		return false, nil
	})
	require.NoError(t, err)
	require.False(t, ok)
	require.Equal(t, 1, calls)

	someErr := errors.New("handler failed")
	_, err = ForEachChunkUntil(data, 3, func(items []int) (bool, error) {
		return false, someErr
	})
	require.ErrorIs(t, err, someErr)
}
