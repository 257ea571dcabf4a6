// Package memerr defines the stable error kinds signaled by the tidbytes
// algebra: a failing operation never partially mutates anything, it just
// produces no output region and one of these errors instead.
package memerr

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidMemoryRegion means a Region failed validation. It is always a
	// programming fault in a codec or operation, not a recoverable condition.
	ErrInvalidMemoryRegion = errors.New("InvalidMemoryRegion")

	// ErrBoundsError means an index, range, or target length violates a
	// containment constraint of a get/set/truncate/extend operation.
	ErrBoundsError = errors.New("BoundsError")

	// ErrByteAlignmentError means a byte-granular operation was asked to act
	// on a bit position or length that is not a multiple of 8.
	ErrByteAlignmentError = errors.New("ByteAlignmentError")

	// ErrNumericRangeError means a numeric codec cannot represent a value in
	// the requested bit length.
	ErrNumericRangeError = errors.New("NumericRangeError")

	// ErrOrientationError means a codec was invoked with an inconsistent
	// bit/byte-order declaration.
	ErrOrientationError = errors.New("OrientationError")
)

func wrap(sentinel error, format string, args ...any) error {
	return fmt.Errorf("%w: %s", sentinel, fmt.Sprintf(format, args...))
}

// Invalid builds an InvalidMemoryRegion error with detail.
func Invalid(format string, args ...any) error {
	return wrap(ErrInvalidMemoryRegion, format, args...)
}

// Bounds builds a BoundsError with detail.
func Bounds(format string, args ...any) error {
	return wrap(ErrBoundsError, format, args...)
}

// ByteAlignment builds a ByteAlignmentError with detail.
func ByteAlignment(format string, args ...any) error {
	return wrap(ErrByteAlignmentError, format, args...)
}

// NumericRange builds a NumericRangeError with detail.
func NumericRange(format string, args ...any) error {
	return wrap(ErrNumericRangeError, format, args...)
}

// Orientation builds an OrientationError with detail.
func Orientation(format string, args ...any) error {
	return wrap(ErrOrientationError, format, args...)
}
