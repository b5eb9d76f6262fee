// Package errs defines the sentinel error values shared across deltasync's
// packages. Callers should compare against these with errors.Is; most call
// sites wrap one of these with additional context via fmt.Errorf("...: %w").
package errs

import "errors"

var (
	// ErrInvalidSize is returned when an Engine is constructed with N < 1.
	ErrInvalidSize = errors.New("deltasync: invalid snapshot size")

	// ErrNilSnapshot is returned when a nil snapshot slice is passed where a
	// populated one is required.
	ErrNilSnapshot = errors.New("deltasync: snapshot is nil")

	// ErrLengthMismatch is returned when a snapshot slice's length does not
	// equal the engine's configured N.
	ErrLengthMismatch = errors.New("deltasync: snapshot length mismatch")

	// ErrVarIntOverflow is returned when a varint decode consumes more than
	// 10 bytes, or the 10th byte still carries a continuation bit.
	ErrVarIntOverflow = errors.New("deltasync: varint overflow")

	// ErrIndexOutOfRange is returned when a decoded record index is >= N.
	ErrIndexOutOfRange = errors.New("deltasync: record index out of range")

	// ErrClosedSource is returned by a Reader when Pull is called after
	// Close has returned its buffer to its pool.
	ErrClosedSource = errors.New("deltasync: source is closed")
)
