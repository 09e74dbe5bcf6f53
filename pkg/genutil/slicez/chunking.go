package slicez

import (
	"iter"

	"github.com/authzed/collectionz/internal/logging"
)

// Chunks returns an iterator over successive non-empty chunks of the slice,
// each at most chunkSize long. The yielded chunks are subslices of the input
// and must not be retained across mutations of it.
func Chunks[T any](data []T, chunkSize uint16) iter.Seq[[]T] {
	if chunkSize == 0 {
		logging.Warn().Int("invalid-chunk-size", int(chunkSize)).Msg("Chunks got an invalid chunk size; defaulting to 100")
		chunkSize = 100
	}

	return func(yield func([]T) bool) {
		size := int(chunkSize)
		for start := 0; start < len(data); start += size {
			end := start + size
			if end > len(data) {
				end = len(data)
			}
			if !yield(data[start:end]) {
				return
			}
		}
	}
}

// ForEachChunk executes the given handler for each chunk of items in the slice.
func ForEachChunk[T any](data []T, chunkSize uint16, handler func(items []T)) {
	_, _ = ForEachChunkUntil(data, chunkSize, func(items []T) (bool, error) {
		handler(items)
		return true, nil
	})
}

// ForEachChunkUntil executes the given handler for each chunk, stopping early
// if the handler returns false or errors.
func ForEachChunkUntil[T any](data []T, chunkSize uint16, handler func(items []T) (bool, error)) (bool, error) {
	for chunk := range Chunks(data, chunkSize) {
		ok, err := handler(chunk)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}
