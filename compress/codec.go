package compress

// Compressor compresses a byte stream. In this repo it wraps a
// pipeline.Sink/pipeline.Source pair so the concatenated packet stream —
// never an individual record field — is compressed end to end.
type Compressor interface {
	// Compress compresses data and returns the result. The input is not
	// modified. NoOpCompressor returns data itself; the other codecs in
	// this package return a separate slice.
	Compress(data []byte) ([]byte, error)
}

// Decompressor reverses a Compressor of the same algorithm.
type Decompressor interface {
	// Decompress reverses Compress and returns the result (for
	// NoOpCompressor, data itself). Returns an error if data is corrupt or was produced by a different
	// algorithm.
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both directions; NewCompressingSink/NewDecompressingSource
// and engine.WithStreamCompression take a Codec so a caller picks one
// concrete algorithm for both ends of a link.
type Codec interface {
	Compressor
	Decompressor
}
