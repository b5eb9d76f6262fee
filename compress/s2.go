package compress

import "github.com/klauspost/compress/s2"

// S2Compressor compresses a packet stream with S2, a Snappy-derived format
// that trades some ratio for speed. Favored when the sender/receiver are
// CPU-constrained but the link is not.
type S2Compressor struct{}

var _ Codec = (*S2Compressor)(nil)

// NewS2Compressor creates a new S2 compressor.
func NewS2Compressor() S2Compressor {
	return S2Compressor{}
}

func (c S2Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Encode(nil, data), nil
}

func (c S2Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return []byte{}, nil
	}

	return s2.Decode(nil, data)
}
