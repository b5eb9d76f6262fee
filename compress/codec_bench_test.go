package compress

import (
	"context"
	"testing"

	"github.com/arloliu/deltasync/pipeline"
)

func BenchmarkCodecs_Compress(b *testing.B) {
	data := binaryPayload(64 * 1024)

	for name, codec := range allCodecs() {
		b.Run(name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := codec.Compress(data); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkCodecs_Decompress(b *testing.B) {
	data := binaryPayload(64 * 1024)

	for name, codec := range allCodecs() {
		compressed, err := codec.Compress(data)
		if err != nil {
			b.Fatal(err)
		}

		b.Run(name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := codec.Decompress(compressed); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkCompressingSink_Write(b *testing.B) {
	data := binaryPayload(16 * 1024)
	ctx := context.Background()
	cs := NewCompressingSink(discardSink{}, NewZstdCompressor())

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if err := cs.Write(ctx, data); err != nil {
			b.Fatal(err)
		}
	}
}

type discardSink struct{}

var _ pipeline.Sink = discardSink{}

func (discardSink) Write(ctx context.Context, data []byte) error { return nil }
