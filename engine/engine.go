package engine

import (
	"context"
	"fmt"

	"github.com/arloliu/deltasync/codec"
	"github.com/arloliu/deltasync/endian"
	"github.com/arloliu/deltasync/errs"
	"github.com/arloliu/deltasync/options"
	"github.com/arloliu/deltasync/pipeline"
	"github.com/arloliu/deltasync/pool"
	"github.com/arloliu/deltasync/varint"
)

// Engine synchronizes an array of N records of type T between a sender
// and a receiver by diffing a new snapshot against the last one the peer
// is believed to hold, per-field, and emitting only what changed. C is
// the packet-wide context type applied to every record on decode.
//
// Engine is not safe for concurrent use: at most one of WritePacket,
// ApplyPacket, SetInitialState, AdvanceBaseline may run against a given
// instance at any instant.
type Engine[T any, C any] struct {
	n            int
	recordCodec  codec.RecordCodec[T, C]
	contextCodec codec.ContextCodec[C]

	baseline []T
	working  []T

	sink         pipeline.Sink
	writerPool   *pool.ByteBufferPool
	readerPool   *pool.ByteBufferPool
	endianEngine endian.EndianEngine
}

// New constructs an Engine for N records, rejecting N < 1.
func New[T any, C any](n int, recordCodec codec.RecordCodec[T, C], contextCodec codec.ContextCodec[C], opts ...Option[T, C]) (*Engine[T, C], error) {
	if n < 1 {
		return nil, fmt.Errorf("engine.New: %w", errs.ErrInvalidSize)
	}

	e := &Engine[T, C]{
		n:            n,
		recordCodec:  recordCodec,
		contextCodec: contextCodec,
		baseline:     make([]T, n),
		working:      make([]T, n),
		endianEngine: endian.GetLittleEndianEngine(),
	}

	if err := options.Apply[*Engine[T, C]](e, opts...); err != nil {
		return nil, fmt.Errorf("engine.New: %w", err)
	}

	return e, nil
}

// N returns the engine's configured record count.
func (e *Engine[T, C]) N() int { return e.n }

// EndianEngine returns the byte order configured via WithEndianEngine
// (little-endian by default), for callers that want their RecordCodec or
// ContextCodec to agree with it.
func (e *Engine[T, C]) EndianEngine() endian.EndianEngine { return e.endianEngine }

// NewWriter returns a pipeline.Writer backed by this engine's configured
// writer pool (WithBufferPoolSizes), or the package default pool if none
// was configured.
func (e *Engine[T, C]) NewWriter() *pipeline.Writer {
	if e.writerPool != nil {
		return pipeline.NewWriterWithPool(e.writerPool)
	}

	return pipeline.NewWriter()
}

// NewReader returns a pipeline.Reader pulling from source, backed by this
// engine's configured reader pool, or the package default pool if none
// was configured.
func (e *Engine[T, C]) NewReader(source pipeline.Source) *pipeline.Reader {
	if e.readerPool != nil {
		return pipeline.NewReaderWithPool(source, e.readerPool)
	}

	return pipeline.NewReader(source)
}

// SetInitialState seeds both baseline and working with s, a one-time
// keyframe both peers are expected to agree on out-of-band. It rejects a
// nil snapshot or one whose length does not equal N.
func (e *Engine[T, C]) SetInitialState(s []T) error {
	if s == nil {
		return fmt.Errorf("engine.SetInitialState: %w", errs.ErrNilSnapshot)
	}
	if len(s) != e.n {
		return fmt.Errorf("engine.SetInitialState: %w", errs.ErrLengthMismatch)
	}

	copy(e.baseline, s)
	copy(e.working, s)

	return nil
}

// CurrentState returns a read-only view of working. The returned slice is
// only valid until the next call that mutates the engine.
func (e *Engine[T, C]) CurrentState() []T { return e.working }

// WritePacket diffs newState against baseline, writes the resulting
// packet into w, swaps baseline and working, and — if a Sink was
// configured via WithSink/WithStreamCompression — flushes w to it.
func (e *Engine[T, C]) WritePacket(ctx context.Context, w *pipeline.Writer, newState []T, pctx C) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if newState == nil {
		return fmt.Errorf("engine.WritePacket: %w", errs.ErrNilSnapshot)
	}
	if len(newState) != e.n {
		return fmt.Errorf("engine.WritePacket: %w", errs.ErrLengthMismatch)
	}

	copy(e.working, newState)

	lengthOffset := w.ReserveU32()
	bodyStart := w.Len()

	e.contextCodec.WriteContext(w, pctx)

	for i := 0; i < e.n; i++ {
		mask := e.recordCodec.ChangeMask(e.working[i], e.baseline[i], pctx)
		if mask == 0 {
			continue
		}

		w.WriteVarint(uint64(i)) //nolint:gosec
		w.WriteVarint(mask)
		e.recordCodec.WriteDelta(w, e.working[i], mask)
	}

	bodyLen := w.Len() - bodyStart
	w.PatchU32(lengthOffset, uint32(bodyLen)) //nolint:gosec

	e.baseline, e.working = e.working, e.baseline

	if e.sink == nil {
		return nil
	}

	return w.Flush(ctx, e.sink)
}

// AdvanceBaseline copies working into baseline. A relay/proxy endpoint
// calls this after ApplyPacket so its own next WritePacket diffs against
// what it just received, instead of emitting a full resync.
func (e *Engine[T, C]) AdvanceBaseline() {
	copy(e.baseline, e.working)
}

// ApplyPacket reads and applies as many complete packets as r currently
// has buffered, pulling more from its Source as needed, until the Source
// reports completion. A short read mid-packet rewinds and waits for more
// bytes rather than applying a partial update; an overflowing varint or
// an out-of-range index aborts the call and surfaces the error, leaving
// working exactly as it was after the last fully-applied packet.
func (e *Engine[T, C]) ApplyPacket(ctx context.Context, r *pipeline.Reader) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		window, completed, err := r.Pull(ctx)
		if err != nil {
			return err
		}

		cur := pipeline.NewCursor(window)
		consumed := 0

		for {
			end, ok, perr := e.tryReadOnePacket(cur)
			if perr != nil {
				return perr
			}
			if !ok {
				break
			}

			consumed = end
		}

		r.Release(consumed, cur.Position())

		if completed {
			return nil
		}
	}
}

// tryReadOnePacket attempts to parse and apply exactly one packet
// starting at cur's current position. ok reports whether a full packet
// was applied; when ok is false and err is nil, cur has been rewound to
// its starting position and the caller should wait for more bytes.
func (e *Engine[T, C]) tryReadOnePacket(cur *pipeline.Cursor) (consumed int, ok bool, err error) {
	start := cur.Position()

	length, haveLength := cur.ReadUint32LE()
	if !haveLength {
		cur.Rewind(start)
		return 0, false, nil
	}

	if cur.Remaining() < int(length) {
		cur.Rewind(start)
		return 0, false, nil
	}

	bodyStart := cur.Position()

	if cur.Remaining() < e.contextCodec.ContextSize() {
		cur.Rewind(start)
		return 0, false, nil
	}

	pctx := e.contextCodec.ReadContext(cur)
	entriesStart := cur.Position()

	// First pass validates every entry without touching working.
	for cur.Position()-bodyStart < int(length) {
		index, res := cur.ReadVarint()
		if res == varint.NeedMore {
			cur.Rewind(start)
			return 0, false, nil
		}
		if res == varint.Overflow {
			return 0, false, fmt.Errorf("engine.ApplyPacket: %w", errs.ErrVarIntOverflow)
		}

		mask, res := cur.ReadVarint()
		if res == varint.NeedMore {
			cur.Rewind(start)
			return 0, false, nil
		}
		if res == varint.Overflow {
			return 0, false, fmt.Errorf("engine.ApplyPacket: %w", errs.ErrVarIntOverflow)
		}

		if index >= uint64(e.n) {
			return 0, false, fmt.Errorf("engine.ApplyPacket: %w", errs.ErrIndexOutOfRange)
		}

		payloadSize := e.recordCodec.DeltaSize(mask)
		if cur.Remaining() < payloadSize {
			cur.Rewind(start)
			return 0, false, nil
		}

		_, _ = cur.ReadBytes(payloadSize)
	}

	// Second pass applies the entries the first pass accepted.
	cur.Rewind(entriesStart)
	for cur.Position()-bodyStart < int(length) {
		index, _ := cur.ReadVarint()
		mask, _ := cur.ReadVarint()
		e.recordCodec.ApplyDelta(&e.working[index], cur, mask)
	}

	for i := range e.working {
		e.recordCodec.ApplyContext(&e.working[i], pctx)
	}

	return cur.Position(), true, nil
}
