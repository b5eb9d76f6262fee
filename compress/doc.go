// Package compress provides compression codecs that wrap the byte stream a
// pipeline.Writer flushes into / a pipeline.Reader pulls from.
//
// # Overview
//
// Compression here is applied at the stream level, not the field level:
// the engine itself always writes and reads uncompressed packet bytes
// (varints, change masks, record deltas). A Codec instead wraps the
// transport-facing Sink/Source pair so the concatenated packet stream is
// compressed end to end, which keeps field-value compression out of scope
// while still giving callers a real space/bandwidth tradeoff to make.
//
// The package defines three core interfaces:
//
//	type Compressor interface {
//	    Compress(data []byte) ([]byte, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(data []byte) ([]byte, error)
//	}
//
//	type Codec interface {
//	    Compressor
//	    Decompressor
//	}
//
// # Supported algorithms
//
//   - NoOpCompressor: passes bytes through unchanged. Useful as a baseline
//     or when the transport already compresses (e.g. TLS with a
//     compressing cipher suite, or an already-compressed tunnel).
//   - ZstdCompressor (github.com/klauspost/compress/zstd): best ratio,
//     moderate speed. Good default for bandwidth-constrained links.
//   - S2Compressor (github.com/klauspost/compress/s2): a faster,
//     Snappy-derived format; balances ratio against CPU cost.
//   - LZ4Compressor (github.com/pierrec/lz4/v4): fastest decompression,
//     moderate ratio; favors low-latency decode paths.
//
// # Wiring a codec in
//
//	codec := compress.NewZstdCompressor()
//	sink := compress.NewCompressingSink(transportSink, codec)
//	source := compress.NewDecompressingSource(transportSource, codec)
//
// engine.WithStreamCompression builds the sending half of this pair for a
// caller; the receiving half is wired by hand around pipeline.NewReader
// since Engine.ApplyPacket takes an already-constructed *pipeline.Reader.
package compress
