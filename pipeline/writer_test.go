package pipeline

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriter_ReserveAndPatchU32(t *testing.T) {
	w := NewWriter()
	defer w.Release()

	offset := w.ReserveU32()
	assert.Equal(t, 0, offset)
	assert.Equal(t, 4, w.Len())

	w.WriteBytes([]byte("body"))
	w.PatchU32(offset, uint32(w.Len()-4))

	assert.Equal(t, []byte{0x04, 0x00, 0x00, 0x00, 'b', 'o', 'd', 'y'}, w.Bytes())
}

func TestWriter_WriteVarint(t *testing.T) {
	w := NewWriter()
	defer w.Release()

	w.WriteVarint(1)
	w.WriteVarint(300)

	assert.Equal(t, []byte{0x01, 0xAC, 0x02}, w.Bytes())
}

func TestWriter_Reset(t *testing.T) {
	w := NewWriter()
	defer w.Release()

	w.WriteBytes([]byte("data"))
	w.Reset()

	assert.Equal(t, 0, w.Len())
}

func TestWriter_Flush(t *testing.T) {
	w := NewWriter()
	defer w.Release()

	w.WriteBytes([]byte("packet"))
	sink := NewBufferSink()

	err := w.Flush(context.Background(), sink)
	require.NoError(t, err)

	assert.Equal(t, []byte("packet"), sink.Bytes())
	assert.Equal(t, 0, w.Len(), "Flush must reset the writer for the next packet")
}

func TestWriter_Append(t *testing.T) {
	w := NewWriter()
	defer w.Release()

	w.Append(4, func(dst []byte) []byte {
		return append(dst, 0x01, 0x02, 0x03, 0x04)
	})

	assert.Equal(t, []byte{0x01, 0x02, 0x03, 0x04}, w.Bytes())
}
