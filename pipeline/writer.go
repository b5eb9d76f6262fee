package pipeline

import (
	"context"
	"encoding/binary"

	"github.com/arloliu/deltasync/pool"
	"github.com/arloliu/deltasync/varint"
)

// Sink receives the flushed bytes of one or more packets. A transport
// adapter (TCP connection, in-memory pipe, compressing wrapper) implements
// this to actually move bytes off the local pooled buffer.
type Sink interface {
	// Write delivers data downstream. Implementations must not retain data
	// past the call; Flush reuses its internal buffer immediately after.
	Write(ctx context.Context, data []byte) error
}

// Writer accumulates one packet's worth of bytes into a pooled, growable
// buffer and vends the reserve-then-patch idiom the wire format's
// length-prefix needs: the body length is only known once the whole body
// has been written, so the 4-byte slot is reserved up front and patched
// after the fact instead of being computed in a separate sizing pass.
type Writer struct {
	buf  *pool.ByteBuffer
	pool *pool.ByteBufferPool
}

// NewWriter returns a Writer backed by a buffer from the package's default
// writer pool.
func NewWriter() *Writer {
	return NewWriterWithPool(pool.WriterPool())
}

// NewWriterWithPool returns a Writer backed by a buffer from p instead of
// the package default writer pool, letting a caller size pools to its own
// traffic (e.g. via engine.WithBufferPoolSizes).
func NewWriterWithPool(p *pool.ByteBufferPool) *Writer {
	return &Writer{buf: p.Get(), pool: p}
}

// Len returns the number of bytes written since the last Reset/Flush.
func (w *Writer) Len() int { return w.buf.Len() }

// Bytes returns the bytes written so far. The slice is valid only until
// the next call that mutates the Writer.
func (w *Writer) Bytes() []byte { return w.buf.Bytes() }

// Reset discards any written bytes, retaining the underlying buffer for
// reuse.
func (w *Writer) Reset() { w.buf.Reset() }

// ReserveU32 appends 4 zero bytes and returns their offset, to be patched
// later via PatchU32 once the body length is known.
func (w *Writer) ReserveU32() int {
	offset := w.buf.Len()
	w.buf.ExtendOrGrow(4)
	clear(w.buf.B[offset : offset+4])

	return offset
}

// PatchU32 overwrites the 4 bytes at offset (previously returned by
// ReserveU32) with v, little-endian. The wire format's length prefix is
// always little-endian regardless of any endian.EndianEngine a RecordCodec
// uses for its own fields.
func (w *Writer) PatchU32(offset int, v uint32) {
	binary.LittleEndian.PutUint32(w.buf.Slice(offset, offset+4), v)
}

// WriteBytes appends raw bytes, growing the buffer as needed.
func (w *Writer) WriteBytes(p []byte) {
	w.buf.Grow(len(p))
	w.buf.MustWrite(p)
}

// Append grows the buffer to hold at least n more bytes and calls appendFn
// with the buffer's current contents, writing back whatever appendFn
// returns. RecordCodec and ContextCodec implementations use this together
// with an endian.EndianEngine's Append* methods to write fixed-width
// fields without an intermediate allocation.
func (w *Writer) Append(n int, appendFn func(dst []byte) []byte) {
	w.buf.Grow(n)
	w.buf.B = appendFn(w.buf.B)
}

// WriteVarint appends v as a minimal-length unsigned LEB128 varint.
func (w *Writer) WriteVarint(v uint64) {
	w.buf.Grow(varint.MaxLen)
	w.buf.B = varint.Append(w.buf.B, v)
}

// Flush hands the accumulated bytes to sink and resets the buffer for the
// next packet. This is the engine's suspension point for encode (spec's
// "asynchronous with respect to the underlying byte pipeline").
func (w *Writer) Flush(ctx context.Context, sink Sink) error {
	if err := sink.Write(ctx, w.buf.Bytes()); err != nil {
		return err
	}

	w.buf.Reset()

	return nil
}

// Release returns the Writer's buffer to its pool. Call this when the
// Writer itself is being discarded, not after every packet (Flush already
// resets the buffer for reuse within the Writer's own lifetime).
func (w *Writer) Release() {
	w.pool.Put(w.buf)
	w.buf = nil
}
