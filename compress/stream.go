package compress

import (
	"context"
	"encoding/binary"
	"fmt"

	"github.com/arloliu/deltasync/pipeline"
)

// frameHeaderSize is the length of the little-endian u32 size prefix each
// compressed frame carries on the wire, independent of and outside the
// engine's own packet length prefix.
const frameHeaderSize = 4

// compressingSink wraps an inner pipeline.Sink so each flushed write is
// compressed as one self-contained frame: a 4-byte little-endian length
// prefix followed by that many compressed bytes. Framing is required
// because the inner Sink sees an opaque byte stream with no boundaries of
// its own once compressed.
type compressingSink struct {
	inner pipeline.Sink
	codec Codec
}

// NewCompressingSink wraps inner so every Write is compressed with codec
// before reaching it. Pair with NewDecompressingSource on the far end.
func NewCompressingSink(inner pipeline.Sink, codec Codec) pipeline.Sink {
	return &compressingSink{inner: inner, codec: codec}
}

func (s *compressingSink) Write(ctx context.Context, data []byte) error {
	compressed, err := s.codec.Compress(data)
	if err != nil {
		return fmt.Errorf("compress: %w", err)
	}

	frame := make([]byte, frameHeaderSize+len(compressed))
	binary.LittleEndian.PutUint32(frame, uint32(len(compressed))) //nolint:gosec
	copy(frame[frameHeaderSize:], compressed)

	return s.inner.Write(ctx, frame)
}

// decompressingSource wraps an inner pipeline.Source, reassembling the
// frames compressingSink wrote and handing back decompressed bytes. It
// accumulates raw bytes from inner until a full frame is available, so it
// tolerates the inner Source delivering fragments of any size, the same
// guarantee pipeline.Reader gives the engine's own packet framing.
type decompressingSource struct {
	inner     pipeline.Source
	codec     Codec
	raw       []byte
	out       []byte
	completed bool
}

// NewDecompressingSource wraps inner so Fetch returns decompressed bytes
// reassembled from the frames a matching compressingSink wrote.
func NewDecompressingSource(inner pipeline.Source, codec Codec) pipeline.Source {
	return &decompressingSource{inner: inner, codec: codec}
}

func (s *decompressingSource) Fetch(ctx context.Context) ([]byte, bool, error) {
	for {
		if len(s.out) > 0 || (s.completed && len(s.raw) == 0) {
			out := s.out
			s.out = nil

			return out, s.completed && len(s.raw) == 0, nil
		}

		ok, err := s.decodeOneFrame()
		if err != nil {
			return nil, false, err
		}
		if ok {
			continue
		}

		if s.completed {
			return nil, true, nil
		}

		chunk, done, err := s.inner.Fetch(ctx)
		if err != nil {
			return nil, false, err
		}

		s.raw = append(s.raw, chunk...)
		s.completed = done
	}
}

// decodeOneFrame consumes one complete frame from s.raw into s.out, if one
// is fully buffered. It reports whether a frame was decoded.
func (s *decompressingSource) decodeOneFrame() (bool, error) {
	if len(s.raw) < frameHeaderSize {
		return false, nil
	}

	frameLen := binary.LittleEndian.Uint32(s.raw)
	if uint32(len(s.raw)-frameHeaderSize) < frameLen { //nolint:gosec
		return false, nil
	}

	compressed := s.raw[frameHeaderSize : frameHeaderSize+int(frameLen)]

	decompressed, err := s.codec.Decompress(compressed)
	if err != nil {
		return false, fmt.Errorf("decompress: %w", err)
	}

	s.out = append(s.out, decompressed...)
	s.raw = s.raw[frameHeaderSize+int(frameLen):]

	return true, nil
}
