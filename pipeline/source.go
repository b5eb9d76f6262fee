package pipeline

import (
	"bytes"
	"context"
)

// BufferSink is a Sink that appends everything written to it into an
// in-memory buffer, for tests and simple same-process use.
type BufferSink struct {
	buf bytes.Buffer
}

// NewBufferSink returns an empty BufferSink.
func NewBufferSink() *BufferSink {
	return &BufferSink{}
}

// Write implements Sink.
func (s *BufferSink) Write(ctx context.Context, data []byte) error {
	s.buf.Write(data)
	return nil
}

// Bytes returns everything written so far.
func (s *BufferSink) Bytes() []byte { return s.buf.Bytes() }

// ChunkSource is a Source that replays a fixed byte slice split into
// caller-chosen chunk sizes, then reports completion. It exists to drive
// the fragmentation-tolerance and truncation-safety tests: feeding a
// packet one byte at a time, or stopping partway through, must leave the
// engine in a well-defined state.
type ChunkSource struct {
	chunks [][]byte
	next   int
}

// NewChunkSource returns a Source that yields each of chunks in order,
// signaling completed on the fragment that exhausts them.
func NewChunkSource(chunks ...[]byte) *ChunkSource {
	return &ChunkSource{chunks: chunks}
}

// NewByteAtATimeSource splits data into single-byte fragments, the
// strictest possible fragmentation of a stream.
func NewByteAtATimeSource(data []byte) *ChunkSource {
	chunks := make([][]byte, len(data))
	for i := range data {
		chunks[i] = data[i : i+1]
	}

	return &ChunkSource{chunks: chunks}
}

// Fetch implements Source.
func (s *ChunkSource) Fetch(ctx context.Context) ([]byte, bool, error) {
	if s.next >= len(s.chunks) {
		return nil, true, nil
	}

	chunk := s.chunks[s.next]
	s.next++

	return chunk, s.next >= len(s.chunks), nil
}
