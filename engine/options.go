package engine

import (
	"github.com/arloliu/deltasync/compress"
	"github.com/arloliu/deltasync/endian"
	"github.com/arloliu/deltasync/options"
	"github.com/arloliu/deltasync/pipeline"
	"github.com/arloliu/deltasync/pool"
)

// Option configures an Engine[T, C] at construction time, built on the
// package-level functional-options helper.
type Option[T any, C any] = options.Option[*Engine[T, C]]

// WithSink configures the Sink WritePacket flushes to internally. Without
// it, WritePacket only fills w and leaves flushing to the caller.
func WithSink[T any, C any](sink pipeline.Sink) Option[T, C] {
	return options.NoError[*Engine[T, C]](func(e *Engine[T, C]) {
		e.sink = sink
	})
}

// WithStreamCompression wraps sink with codec so every flushed packet
// stream is compressed end to end before reaching sink. The matching
// decompression happens on the decode side by wrapping the pipeline.Source
// passed to pipeline.NewReader with compress.NewDecompressingSource,
// since ApplyPacket receives an already-constructed Reader.
func WithStreamCompression[T any, C any](sink pipeline.Sink, codec compress.Codec) Option[T, C] {
	return options.NoError[*Engine[T, C]](func(e *Engine[T, C]) {
		e.sink = compress.NewCompressingSink(sink, codec)
	})
}

// WithBufferPoolSizes gives the engine its own writer/reader buffer pools
// (see pool.NewByteBufferPool) instead of the package-level default
// pools, for callers whose packets are consistently much larger or
// smaller than the defaults assume. Engine.NewWriter/NewReader use
// whichever pool is configured.
func WithBufferPoolSizes[T any, C any](writerDefault, writerMax, readerDefault, readerMax int) Option[T, C] {
	return options.NoError[*Engine[T, C]](func(e *Engine[T, C]) {
		e.writerPool = pool.NewByteBufferPool(writerDefault, writerMax)
		e.readerPool = pool.NewByteBufferPool(readerDefault, readerMax)
	})
}

// WithEndianEngine records eng on the Engine for retrieval via
// EndianEngine(), so a RecordCodec/ContextCodec constructed alongside the
// engine can be built to agree with it. The engine's own wire framing
// (length prefix, varints) is always little-endian regardless of this
// setting.
func WithEndianEngine[T any, C any](eng endian.EndianEngine) Option[T, C] {
	return options.NoError[*Engine[T, C]](func(e *Engine[T, C]) {
		e.endianEngine = eng
	})
}
