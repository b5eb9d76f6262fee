// Package pool provides pooled, growable byte buffers used by the pipeline
// package to vend writable spans and accumulate incoming bytes without
// per-packet allocation in the steady state.
package pool

import "sync"

// Default and maximum sizes for the package-level writer/reader buffer
// pools. A writer buffer backs a single in-flight packet and so defaults
// small; a reader buffer accumulates a possibly-fragmented stream across
// several Fetch calls and so defaults larger and tolerates growing further
// before its capacity is considered too large to keep around.
const (
	WriterBufferDefaultSize  = 1024 * 16
	WriterBufferMaxThreshold = 1024 * 128
	ReaderBufferDefaultSize  = 1024 * 64
	ReaderBufferMaxThreshold = 1024 * 1024 * 4
)

// ByteBuffer is a growable byte slice designed for reuse via ByteBufferPool.
// pipeline.Writer treats it as an append-only span it can patch in place
// (Slice) after the fact, which is how the 4-byte packet length prefix gets
// filled in once the body is known; pipeline.Reader treats it as an
// accumulator it trims from the front as completed packets are consumed
// (SetLength).
type ByteBuffer struct {
	B []byte
}

// NewByteBuffer creates a new ByteBuffer with the specified default size.
func NewByteBuffer(defaultSize int) *ByteBuffer {
	return &ByteBuffer{
		B: make([]byte, 0, defaultSize),
	}
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Reset resets the buffer to be empty, but retains the allocated memory for reuse.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// Len returns the length of the buffer.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// MustWrite appends data to the buffer, growing it if necessary.
func (bb *ByteBuffer) MustWrite(data []byte) {
	bb.B = append(bb.B, data...)
}

// Slice returns a slice of the buffer from start to end, for patching bytes
// already written (e.g. the length prefix reserved by
// pipeline.Writer.ReserveU32). Panics if the indices are out of bounds.
func (bb *ByteBuffer) Slice(start, end int) []byte {
	if start < 0 || end < start || end > cap(bb.B) {
		panic("Slice: invalid indices")
	}

	return bb.B[start:end]
}

// SetLength sets the length of the buffer to n, used by pipeline.Reader to
// drop bytes already consumed from the front of its accumulator. Panics if
// n is negative or greater than the capacity.
func (bb *ByteBuffer) SetLength(n int) {
	if n < 0 || n > cap(bb.B) {
		panic("SetLength: invalid length")
	}
	bb.B = bb.B[:n]
}

// Extend extends the buffer by n bytes if there is sufficient capacity,
// reporting whether it did.
func (bb *ByteBuffer) Extend(n int) bool {
	curLen := len(bb.B)
	if cap(bb.B)-curLen < n {
		return false
	}

	bb.B = bb.B[:curLen+n]

	return true
}

// ExtendOrGrow extends the buffer by n bytes, growing it first if the
// current capacity is insufficient.
func (bb *ByteBuffer) ExtendOrGrow(n int) {
	if bb.Extend(n) {
		return
	}

	start := len(bb.B)
	bb.Grow(n)
	bb.B = bb.B[:start+n]
}

// Grow ensures the buffer can hold requiredBytes more bytes without
// reallocating. If the buffer has sufficient capacity, Grow does nothing.
//
// The growth strategy is as follows:
//   - For small buffers (capacity up to 64KB, i.e. 4*WriterBufferDefaultSize), grow by WriterBufferDefaultSize to minimize reallocations.
//   - For larger buffers, grow by 25% of current capacity to balance memory usage and reallocation cost.
func (bb *ByteBuffer) Grow(requiredBytes int) {
	available := cap(bb.B) - len(bb.B)
	if available >= requiredBytes {
		return
	}

	growBy := WriterBufferDefaultSize
	if cap(bb.B) > 4*WriterBufferDefaultSize {
		growBy = cap(bb.B) / 4
	}

	if growBy < requiredBytes {
		growBy = requiredBytes
	}

	newBuf := make([]byte, len(bb.B), len(bb.B)+growBy)
	copy(newBuf, bb.B)
	bb.B = newBuf
}

// Write appends the contents of data to the buffer, growing it as needed,
// so ByteBuffer satisfies io.Writer.
func (bb *ByteBuffer) Write(data []byte) (int, error) {
	bb.B = append(bb.B, data...)
	return len(data), nil
}

// ByteBufferPool is a pool of ByteBuffers to minimize allocations.
//
// It uses sync.Pool internally and discards buffers whose capacity has
// grown past maxThreshold rather than returning them to the pool, so one
// oversized packet or fragmented stream doesn't pin that much memory for
// every future Get.
type ByteBufferPool struct {
	pool         sync.Pool
	maxThreshold int
}

// NewByteBufferPool creates a new ByteBufferPool with buffers of the specified default size.
func NewByteBufferPool(defaultSize int, maxThreshold int) *ByteBufferPool {
	return &ByteBufferPool{
		pool: sync.Pool{
			New: func() any {
				return NewByteBuffer(defaultSize)
			},
		},
		maxThreshold: maxThreshold,
	}
}

// Get retrieves a ByteBuffer from the pool.
func (bbp *ByteBufferPool) Get() *ByteBuffer {
	bb, _ := bbp.pool.Get().(*ByteBuffer)
	return bb
}

// Put returns a ByteBuffer to the pool for reuse.
func (bbp *ByteBufferPool) Put(bb *ByteBuffer) {
	if bb == nil {
		return
	}

	if bbp.maxThreshold > 0 && cap(bb.B) > bbp.maxThreshold {
		return
	}

	bb.Reset()
	bbp.pool.Put(bb)
}

var (
	writerDefaultPool = NewByteBufferPool(WriterBufferDefaultSize, WriterBufferMaxThreshold)
	readerDefaultPool = NewByteBufferPool(ReaderBufferDefaultSize, ReaderBufferMaxThreshold)
)

// GetWriterBuffer retrieves a ByteBuffer from the default writer pool.
func GetWriterBuffer() *ByteBuffer {
	return writerDefaultPool.Get()
}

// PutWriterBuffer returns a ByteBuffer to the default writer pool.
func PutWriterBuffer(bb *ByteBuffer) {
	writerDefaultPool.Put(bb)
}

// GetReaderBuffer retrieves a ByteBuffer from the default reader pool.
func GetReaderBuffer() *ByteBuffer {
	return readerDefaultPool.Get()
}

// PutReaderBuffer returns a ByteBuffer to the default reader pool.
func PutReaderBuffer(bb *ByteBuffer) {
	readerDefaultPool.Put(bb)
}

// WriterPool returns the package-level default writer pool, for callers
// that want to pass it explicitly (or compare against it) rather than
// going through GetWriterBuffer/PutWriterBuffer.
func WriterPool() *ByteBufferPool { return writerDefaultPool }

// ReaderPool returns the package-level default reader pool.
func ReaderPool() *ByteBufferPool { return readerDefaultPool }
