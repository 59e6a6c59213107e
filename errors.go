package seglist

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange is returned by bounds-checked access past the end.
	ErrOutOfRange = errors.New("index out of range")

	// ErrInvalidArgument is returned for negative counts or malformed ranges.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrAllocationFailure is satisfied by every error an Allocator reports.
	ErrAllocationFailure = errors.New("allocation failure")

	// ErrEmptyContainer is returned when a value is demanded from an empty list.
	ErrEmptyContainer = errors.New("empty container")

	// ErrInvalidIterator is returned when an iterator is moved or dereferenced
	// past a boundary, or used with a list it does not belong to.
	ErrInvalidIterator = errors.New("invalid iterator")
)

// OutOfRangeError reports a position outside [0, Size).
type OutOfRangeError struct {
	Index int
	Size  int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("index %d out of range [0:%d)", e.Index, e.Size)
}

// Is reports ErrOutOfRange as the error kind.
func (e *OutOfRangeError) Is(target error) bool { return target == ErrOutOfRange }

// AllocationError reports a refused segment allocation.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type AllocationError struct {
	Requested int   // slots
	Bytes     int64 // estimated bytes, 0 if unknown
	cause     error
}

// NewAllocationError creates an AllocationError for custom allocators.
func NewAllocationError(requested int, bytes int64, cause error) *AllocationError {
	return &AllocationError{Requested: requested, Bytes: bytes, cause: cause}
}

func (e *AllocationError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("allocation of %d slots (%d bytes) failed: %v", e.Requested, e.Bytes, e.cause)
	}
	return fmt.Sprintf("allocation of %d slots (%d bytes) failed", e.Requested, e.Bytes)
}

// Is reports ErrAllocationFailure as the error kind.
func (e *AllocationError) Is(target error) bool { return target == ErrAllocationFailure }

func (e *AllocationError) Unwrap() error { return e.cause }

func invalidArgument(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}

func invalidIterator(reason string) error {
	return fmt.Errorf("%w: %s", ErrInvalidIterator, reason)
}
