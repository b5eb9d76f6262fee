// Package codec defines the contracts a concrete record type and packet
// context type must satisfy to be carried by an Engine. Implementations
// are pure: no I/O, no allocation beyond what the caller's
// pipeline.Writer/pipeline.Cursor already own.
package codec

import "github.com/arloliu/deltasync/pipeline"

// RecordCodec computes change masks against a baseline, and writes/applies
// only the fields a mask flags. T is the record value type; C is the
// packet context type applied to every record on decode.
type RecordCodec[T any, C any] interface {
	// ChangeMask compares newVal against old and returns a bitmask with
	// one bit set per differing field. It must return 0 iff every
	// observable field is equal; ctx is available for context-dependent
	// equality (e.g. a forced-resync bit).
	ChangeMask(newVal, old T, ctx C) uint64

	// DeltaSize returns the exact number of bytes WriteDelta emits for
	// mask, as a pure function of mask alone. It is called before any
	// read that commits decoder state and must agree with WriteDelta
	// byte-for-byte.
	DeltaSize(mask uint64) int

	// WriteDelta emits exactly the fields flagged in mask, in a fixed
	// order, each in its declared encoding. It writes no mask and no
	// length prefix; the engine writes both around this call.
	WriteDelta(w *pipeline.Writer, rec T, mask uint64)

	// ApplyDelta reads exactly DeltaSize(mask) bytes from cur and assigns
	// the flagged fields of rec in place. The engine guarantees that many
	// bytes are available before calling ApplyDelta.
	ApplyDelta(rec *T, cur *pipeline.Cursor, mask uint64)

	// ApplyContext is invoked on every record of the snapshot on every
	// decoded packet, changed or not, so packet-wide data propagates
	// everywhere.
	ApplyContext(rec *T, ctx C)
}

// ContextCodec serializes the packet-wide context value that precedes the
// record deltas in every packet.
type ContextCodec[C any] interface {
	// ContextSize is the exact, compile-time-constant number of bytes
	// WriteContext emits and ReadContext consumes.
	ContextSize() int

	// WriteContext emits exactly ContextSize() bytes.
	WriteContext(w *pipeline.Writer, ctx C)

	// ReadContext consumes exactly ContextSize() bytes. The engine
	// guarantees that many bytes are available before calling it.
	ReadContext(cur *pipeline.Cursor) C
}
