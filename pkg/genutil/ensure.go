package genutil

import (
	"math"

	"github.com/ccoveille/go-safecast/v2"

	"github.com/authzed/collectionz/pkg/collerrors"
)

// MustEnsureUInt32 is a helper function that calls EnsureUInt32 and panics on error.
func MustEnsureUInt32(value int) uint32 {
	ret, err := EnsureUInt32(value)
	if err != nil {
		panic(err)
	}
	return ret
}

// EnsureUInt32 ensures that the specified value can be represented as a uint32.
func EnsureUInt32(value int) (uint32, error) {
	ret, err := safecast.Convert[uint32](value)
	if err != nil {
		return 0, collerrors.MustBugf("specified value cannot be represented as a uint32")
	}
	return ret, nil
}

// EnsureInt32 ensures that the specified value can be represented as an int32.
func EnsureInt32(value int) (int32, error) {
	ret, err := safecast.Convert[int32](value)
	if err != nil {
		return 0, collerrors.MustBugf("specified value cannot be represented as an int32")
	}
	return ret, nil
}

// EnsureUInt8 ensures that the specified value can be represented as a uint8.
func EnsureUInt8(value int) (uint8, error) {
	ret, err := safecast.Convert[uint8](value)
	if err != nil {
		return 0, collerrors.MustBugf("specified value cannot be represented as a uint8")
	}
	return ret, nil
}

// CapToInt converts a 64-bit counter to an int, saturating at the int range
// bounds instead of overflowing.
func CapToInt(value int64) int {
	ret, err := safecast.Convert[int](value)
	if err != nil {
		if value > 0 {
			return math.MaxInt
		}
		return math.MinInt
	}
	return ret
}
