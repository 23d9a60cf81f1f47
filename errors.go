package nostl

import (
	"github.com/cockroachdb/errors"
)

var (
	// ErrIndexOutOfRange is wrapped by the panic raised on element access
	// outside [0, Len()).
	ErrIndexOutOfRange = errors.New("nostl: index out of range")
	// ErrSequenceTooLong is wrapped by the panic raised when an array is
	// initialized from more values than it has slots.
	ErrSequenceTooLong = errors.New("nostl: initializer sequence longer than array")
	// ErrLengthMismatch is wrapped by the panic raised when two arrays of
	// different lengths are assigned to each other.
	ErrLengthMismatch = errors.New("nostl: array length mismatch")
	// ErrInvalidCapacity is wrapped by the panic raised for negative sizes.
	ErrInvalidCapacity = errors.New("nostl: invalid capacity")
	// ErrIteratorInvalidated is wrapped by the panic raised when an iterator is
	// dereferenced after its container reallocated, shifted, moved or released
	// its storage.
	ErrIteratorInvalidated = errors.New("nostl: iterator invalidated")
)

// Precondition violations are programming errors: they panic with an
// assertion failure that still matches its sentinel under errors.Is.
func assertf(sentinel error, format string, args ...interface{}) {
	panic(errors.WithAssertionFailure(errors.Wrapf(sentinel, format, args...)))
}

func assertIndex(i, n int) {
	if uint(i) >= uint(n) {
		assertf(ErrIndexOutOfRange, "index %d, length %d", i, n)
	}
}

func assertCapacity(n int) {
	if n < 0 {
		assertf(ErrInvalidCapacity, "capacity %d", n)
	}
}
