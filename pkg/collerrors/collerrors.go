// Package collerrors defines the error taxonomy shared by the collection
// types in this module.
package collerrors

import (
	"errors"
	"fmt"
)

// InvalidArgumentError is returned when a caller violates an operation's
// preconditions, such as passing a negative occurrence count or forcing a
// count past its representable maximum.
type InvalidArgumentError struct {
	message string
}

func (err InvalidArgumentError) Error() string { return err.message }

// NewInvalidArgumentf creates an InvalidArgumentError from the given format
// string and arguments.
func NewInvalidArgumentf(format string, args ...any) InvalidArgumentError {
	return InvalidArgumentError{message: fmt.Sprintf(format, args...)}
}

// AsInvalidArgument returns the error as an InvalidArgumentError, if
// applicable.
func AsInvalidArgument(err error) (InvalidArgumentError, bool) {
	var ierr InvalidArgumentError
	if errors.As(err, &ierr) {
		return ierr, true
	}
	return InvalidArgumentError{}, false
}

// UnsupportedOperationError is returned when a structural mutation is
// attempted on a collection that does not support it, such as reusing a
// builder after it has produced its collection.
type UnsupportedOperationError struct {
	// Operation is the name of the rejected operation.
	Operation string
}

func (err UnsupportedOperationError) Error() string {
	return "unsupported operation: " + err.Operation
}

// NewUnsupportedOperationError creates an UnsupportedOperationError for the
// named operation.
func NewUnsupportedOperationError(operation string) UnsupportedOperationError {
	return UnsupportedOperationError{Operation: operation}
}

// IteratorStateError is returned when an iterator is driven out of order,
// such as calling Remove before any successful Next call.
type IteratorStateError struct {
	message string
}

func (err IteratorStateError) Error() string { return err.message }

// NewIteratorStatef creates an IteratorStateError from the given format
// string and arguments.
func NewIteratorStatef(format string, args ...any) IteratorStateError {
	return IteratorStateError{message: fmt.Sprintf(format, args...)}
}
