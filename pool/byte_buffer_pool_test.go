package pool

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestByteBuffer_WriteAndBytes(t *testing.T) {
	bb := NewByteBuffer(WriterBufferDefaultSize)

	n, err := bb.Write([]byte("hello"))
	require.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.Equal(t, []byte("hello"), bb.Bytes())

	bb.MustWrite([]byte(" world"))
	assert.Equal(t, []byte("hello world"), bb.Bytes())
}

func TestByteBuffer_Reset(t *testing.T) {
	bb := NewByteBuffer(WriterBufferDefaultSize)
	bb.MustWrite([]byte("some data"))
	originalCap := cap(bb.B)

	bb.Reset()

	assert.Equal(t, 0, bb.Len())
	assert.Equal(t, originalCap, cap(bb.B), "Reset should preserve capacity")
}

// TestByteBuffer_SliceAndPatch mirrors pipeline.Writer's reserve-then-patch
// idiom: reserve a span with ExtendOrGrow, write placeholder bytes, then
// come back later and overwrite them via Slice once the real value is known.
func TestByteBuffer_SliceAndPatch(t *testing.T) {
	bb := NewByteBuffer(WriterBufferDefaultSize)

	offset := bb.Len()
	bb.ExtendOrGrow(4)
	copy(bb.Slice(offset, offset+4), []byte{0, 0, 0, 0})

	bb.MustWrite([]byte("payload"))

	copy(bb.Slice(offset, offset+4), []byte{1, 2, 3, 4})

	assert.Equal(t, []byte{1, 2, 3, 4}, bb.Bytes()[offset:offset+4])
	assert.Equal(t, []byte("payload"), bb.Bytes()[offset+4:])
}

func TestByteBuffer_Slice_PanicsOutOfBounds(t *testing.T) {
	bb := NewByteBuffer(16)

	assert.Panics(t, func() { bb.Slice(0, 100) })
	assert.Panics(t, func() { bb.Slice(-1, 4) })
	assert.Panics(t, func() { bb.Slice(4, 1) })
}

// TestByteBuffer_SetLength mirrors pipeline.Reader's slide-on-release
// behavior: after consuming a prefix of accumulated bytes, the remainder is
// shifted down and the buffer's length trimmed to match.
func TestByteBuffer_SetLength(t *testing.T) {
	bb := NewByteBuffer(WriterBufferDefaultSize)
	bb.MustWrite([]byte("abcdef"))

	remaining := copy(bb.B, bb.B[2:])
	bb.SetLength(remaining)

	assert.Equal(t, []byte("cdef"), bb.Bytes())
}

func TestByteBuffer_SetLength_PanicsOutOfBounds(t *testing.T) {
	bb := NewByteBuffer(16)

	assert.Panics(t, func() { bb.SetLength(-1) })
	assert.Panics(t, func() { bb.SetLength(100) })
}

func TestByteBuffer_Extend(t *testing.T) {
	bb := NewByteBuffer(8)

	assert.True(t, bb.Extend(4))
	assert.Equal(t, 4, bb.Len())

	assert.False(t, bb.Extend(100), "Extend should fail without growing")
	assert.Equal(t, 4, bb.Len())
}

func TestByteBuffer_ExtendOrGrow(t *testing.T) {
	bb := NewByteBuffer(4)

	bb.ExtendOrGrow(100)

	assert.Equal(t, 100, bb.Len())
	assert.GreaterOrEqual(t, cap(bb.B), 100)
}

func TestByteBuffer_Grow_SufficientCapacity(t *testing.T) {
	bb := NewByteBuffer(WriterBufferDefaultSize)
	originalCap := cap(bb.B)

	bb.Grow(100)

	assert.Equal(t, originalCap, cap(bb.B), "should not reallocate when capacity is sufficient")
}

func TestByteBuffer_Grow_SmallBufferGrowsByDefaultSize(t *testing.T) {
	bb := NewByteBuffer(WriterBufferDefaultSize)
	bb.B = append(bb.B, make([]byte, WriterBufferDefaultSize)...)

	bb.Grow(1024)

	assert.GreaterOrEqual(t, cap(bb.B), WriterBufferDefaultSize+1024)
	assert.Equal(t, WriterBufferDefaultSize, bb.Len(), "length should not change")
}

func TestByteBuffer_Grow_LargeBufferGrowsByQuarter(t *testing.T) {
	largeSize := 4*WriterBufferDefaultSize + 1024
	bb := NewByteBuffer(largeSize)
	bb.B = make([]byte, largeSize)

	bb.Grow(2048)

	assert.GreaterOrEqual(t, cap(bb.B), largeSize+2048)
}

func TestByteBuffer_Grow_PreservesData(t *testing.T) {
	bb := NewByteBuffer(WriterBufferDefaultSize)
	testData := []byte("important data that must be preserved")
	bb.MustWrite(testData)

	bb.Grow(WriterBufferDefaultSize * 2)

	assert.Equal(t, testData, bb.Bytes())
}

func TestByteBufferPool_GetPutRoundTrip(t *testing.T) {
	p := NewByteBufferPool(8192, 65536)

	bb := p.Get()
	require.NotNil(t, bb)
	assert.GreaterOrEqual(t, cap(bb.B), 8192)

	bb.MustWrite([]byte("test data"))
	p.Put(bb)

	bb2 := p.Get()
	assert.Equal(t, 0, bb2.Len(), "buffer from pool should be reset")
}

func TestByteBufferPool_Put_Nil(t *testing.T) {
	p := NewByteBufferPool(1024, 4096)

	assert.NotPanics(t, func() {
		p.Put(nil)
	})
}

func TestByteBufferPool_MaxThreshold_DiscardsOversizedBuffer(t *testing.T) {
	p := NewByteBufferPool(1024, 4096)

	bb := p.Get()
	bb.Grow(10000)
	require.Greater(t, cap(bb.B), 4096)

	p.Put(bb)

	bb2 := p.Get()
	assert.LessOrEqual(t, cap(bb2.B), 4096, "oversized buffer should not be returned to the pool")
}

func TestByteBufferPool_ZeroThreshold_NeverDiscards(t *testing.T) {
	p := NewByteBufferPool(1024, 0)

	bb := p.Get()
	bb.Grow(1024 * 1024)
	p.Put(bb)

	bb2 := p.Get()
	assert.GreaterOrEqual(t, cap(bb2.B), 1024*1024, "zero threshold should keep even oversized buffers")
}

func TestWriterPoolAndReaderPool_AreIndependentDefaults(t *testing.T) {
	assert.Same(t, writerDefaultPool, WriterPool())
	assert.Same(t, readerDefaultPool, ReaderPool())
	assert.NotSame(t, WriterPool(), ReaderPool())

	writerBuf := GetWriterBuffer()
	readerBuf := GetReaderBuffer()
	defer PutWriterBuffer(writerBuf)
	defer PutReaderBuffer(readerBuf)

	assert.GreaterOrEqual(t, cap(writerBuf.B), WriterBufferDefaultSize)
	assert.GreaterOrEqual(t, cap(readerBuf.B), ReaderBufferDefaultSize)
}

func TestByteBufferPool_ConcurrentAccess(t *testing.T) {
	const numGoroutines = 50
	const numIterations = 200

	p := NewByteBufferPool(WriterBufferDefaultSize, WriterBufferMaxThreshold)

	var wg sync.WaitGroup
	wg.Add(numGoroutines)

	for i := 0; i < numGoroutines; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < numIterations; j++ {
				bb := p.Get()
				bb.MustWrite([]byte("data"))
				assert.Equal(t, 4, bb.Len())
				p.Put(bb)
			}
		}()
	}

	wg.Wait()
}
