package pipeline

import (
	"context"
	"fmt"

	"github.com/arloliu/deltasync/errs"
	"github.com/arloliu/deltasync/pool"
)

// Source is the pull side of the byte pipeline: each Fetch call may block
// until more bytes are available (or the upstream closes) and returns the
// next fragment, which may be of any length including zero. completed
// reports that no further fragment will ever follow this one.
//
// A Source may deliver a stream in arbitrarily small fragments (down to
// one byte at a time); Reader's job is to make that invisible to the
// engine's packet parser.
type Source interface {
	Fetch(ctx context.Context) (chunk []byte, completed bool, err error)
}

// Reader accumulates fragments pulled from a Source into one pooled,
// growing buffer and exposes the unconsumed window as a Cursor. Unlike a
// true scatter/gather reader over discontiguous segments, Reader keeps one
// contiguous buffer and slides it on Release; this is sufficient because
// the engine's fragmentation-tolerance requirement is an
// external-behavior guarantee ("decoding is invariant to how the stream
// was segmented"), not a promise about the reader's internal
// representation.
type Reader struct {
	source    Source
	buf       *pool.ByteBuffer
	pool      *pool.ByteBufferPool
	completed bool
}

// NewReader returns a Reader pulling fragments from source, backed by a
// buffer from the package's default reader pool.
func NewReader(source Source) *Reader {
	return NewReaderWithPool(source, pool.ReaderPool())
}

// NewReaderWithPool returns a Reader backed by a buffer from p instead of
// the package default reader pool.
func NewReaderWithPool(source Source, p *pool.ByteBufferPool) *Reader {
	return &Reader{source: source, buf: p.Get(), pool: p}
}

// Pull fetches the next fragment from source (unless the source has
// already signaled completion), appends it to the accumulation buffer,
// and returns the buffer's full unconsumed contents plus whether the
// upstream is now completed. This is the engine decode loop's suspension
// point.
func (r *Reader) Pull(ctx context.Context) (window []byte, completed bool, err error) {
	if r.buf == nil {
		return nil, false, fmt.Errorf("pipeline.Reader.Pull: %w", errs.ErrClosedSource)
	}

	if r.completed {
		return r.buf.Bytes(), true, nil
	}

	chunk, done, err := r.source.Fetch(ctx)
	if err != nil {
		return nil, false, err
	}

	if len(chunk) > 0 {
		r.buf.Grow(len(chunk))
		r.buf.MustWrite(chunk)
	}

	r.completed = done

	return r.buf.Bytes(), done, nil
}

// Release tells the reader that the first consumed bytes of the window
// returned by the most recent Pull have been durably applied and may be
// discarded, and that the first examined bytes (>= consumed) have been
// looked at but not committed. Reader ignores examined: it is not passed
// on to the Source, whose interface has no hook for it.
func (r *Reader) Release(consumed, examined int) {
	_ = examined

	if consumed <= 0 {
		return
	}

	b := r.buf.Bytes()
	if consumed >= len(b) {
		r.buf.Reset()
		return
	}

	n := copy(b, b[consumed:])
	r.buf.SetLength(n)
}

// Close returns the Reader's accumulation buffer to its pool. The Reader
// must not be used afterward.
func (r *Reader) Close() {
	r.pool.Put(r.buf)
	r.buf = nil
}
