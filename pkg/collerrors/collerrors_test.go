package collerrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInvalidArgumentError(t *testing.T) {
	err := NewInvalidArgumentf("occurrences must be non-negative, got %d", -1)
	require.Equal(t, "occurrences must be non-negative, got -1", err.Error())

	found, ok := AsInvalidArgument(err)
	require.True(t, ok)
	require.Equal(t, err, found)

	wrapped := fmt.Errorf("adding element: %w", err)
	found, ok = AsInvalidArgument(wrapped)
	require.True(t, ok)
	require.Equal(t, err, found)

	_, ok = AsInvalidArgument(errors.New("something else"))
	require.False(t, ok)
}

func TestUnsupportedOperationError(t *testing.T) {
	err := NewUnsupportedOperationError("Build")
	require.Equal(t, "unsupported operation: Build", err.Error())

	var uerr UnsupportedOperationError
	require.True(t, errors.As(error(err), &uerr))
	require.Equal(t, "Build", uerr.Operation)
}

func TestIteratorStateError(t *testing.T) {
	err := NewIteratorStatef("Remove called before Next")
	require.Equal(t, "Remove called before Next", err.Error())
}
