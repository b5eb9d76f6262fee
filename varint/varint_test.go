package varint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode_Minimal(t *testing.T) {
	tests := []struct {
		name string
		v    uint64
		want []byte
	}{
		{"zero", 0, []byte{0x00}},
		{"one byte max", 127, []byte{0x7F}},
		{"two byte min", 128, []byte{0x80, 0x01}},
		{"two byte max", 16383, []byte{0xFF, 0x7F}},
		{"three byte min", 16384, []byte{0x80, 0x80, 0x01}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Encode(tt.v)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEncode_NeverTrailingZeroExceptForZero(t *testing.T) {
	values := []uint64{1, 127, 128, 300, 1 << 20, 1<<32 - 1, 1<<56 - 1, 1<<64 - 1}
	for _, v := range values {
		b := Encode(v)
		last := b[len(b)-1]
		assert.NotZero(t, last, "trailing byte must not be 0 for nonzero value %d", v)
	}

	assert.Equal(t, []byte{0x00}, Encode(0))
}

func TestRoundTrip_Boundaries(t *testing.T) {
	values := []uint64{0, 127, 128, 16383, 16384, 1<<32 - 1, 1<<56 - 1, 1<<64 - 1}

	for _, v := range values {
		enc := Encode(v)
		got, n, result := TryDecode(enc)
		require.Equal(t, OK, result)
		assert.Equal(t, v, got)
		assert.Equal(t, len(enc), n, "TryDecode must consume every emitted byte")
	}
}

func TestTryDecode_EmptyInput(t *testing.T) {
	_, n, result := TryDecode(nil)
	assert.Equal(t, NeedMore, result)
	assert.Equal(t, 0, n)
}

func TestTryDecode_LoneContinuationByte(t *testing.T) {
	_, n, result := TryDecode([]byte{0x80})
	assert.Equal(t, NeedMore, result)
	assert.Equal(t, 0, n)
}

func TestTryDecode_NeedMoreLeavesCursorLogicallyUnchanged(t *testing.T) {
	full := Encode(1 << 20)
	for k := 1; k < len(full); k++ {
		_, n, result := TryDecode(full[:k])
		assert.Equal(t, NeedMore, result, "prefix of length %d should be NeedMore", k)
		assert.Equal(t, 0, n)
	}
}

func TestTryDecode_Overflow(t *testing.T) {
	overflowing := make([]byte, 11)
	for i := 0; i < 10; i++ {
		overflowing[i] = 0xFF
	}
	overflowing[10] = 0x01

	_, n, result := TryDecode(overflowing)
	assert.Equal(t, Overflow, result)
	assert.Equal(t, 0, n)
}

func TestTryDecode_TenByteContinuationIsOverflow(t *testing.T) {
	b := make([]byte, 10)
	for i := range b {
		b[i] = 0x80
	}

	_, _, result := TryDecode(b)
	assert.Equal(t, Overflow, result)
}

func TestAppend(t *testing.T) {
	dst := []byte("prefix:")
	dst = Append(dst, 300)

	want := append([]byte("prefix:"), Encode(300)...)
	assert.Equal(t, want, dst)
}

func TestTryDecode_IgnoresTrailingBytes(t *testing.T) {
	enc := Encode(42)
	withTrailer := append(enc, 0xAB, 0xCD)

	v, n, result := TryDecode(withTrailer)
	require.Equal(t, OK, result)
	assert.Equal(t, uint64(42), v)
	assert.Equal(t, len(enc), n)
}
