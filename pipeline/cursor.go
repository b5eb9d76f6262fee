package pipeline

import (
	"encoding/binary"

	"github.com/arloliu/deltasync/varint"
)

// Cursor is a rewindable read-only view over a contiguous byte window. A
// Reader vends a Cursor over its currently accumulated, unconsumed bytes;
// RecordCodec and ContextCodec implementations read from it directly.
//
// Cursor never copies the underlying bytes; callers must not retain a
// slice returned by ReadBytes past the Cursor's lifetime, since the
// Reader may slide or overwrite the backing buffer on the next Release.
type Cursor struct {
	data []byte
	pos  int
}

// NewCursor wraps data starting at position 0.
func NewCursor(data []byte) *Cursor {
	return &Cursor{data: data}
}

// Position returns the cursor's current offset into data.
func (c *Cursor) Position() int { return c.pos }

// Rewind resets the cursor to a previously recorded position. Callers use
// this to undo any reads performed since that position once a short read
// (NeedMore) is detected, so a retry sees the same starting point.
func (c *Cursor) Rewind(pos int) { c.pos = pos }

// Remaining returns the number of unread bytes.
func (c *Cursor) Remaining() int { return len(c.data) - c.pos }

// ReadBytes returns the next n bytes and advances the cursor past them. If
// fewer than n bytes remain, it returns false and leaves the cursor
// unchanged.
func (c *Cursor) ReadBytes(n int) ([]byte, bool) {
	if c.Remaining() < n {
		return nil, false
	}

	b := c.data[c.pos : c.pos+n]
	c.pos += n

	return b, true
}

// ReadUint32LE reads a 4-byte little-endian unsigned integer, used for the
// wire format's fixed-little-endian body-length prefix regardless of any
// endian.EndianEngine a RecordCodec may use for its own fields.
func (c *Cursor) ReadUint32LE() (uint32, bool) {
	b, ok := c.ReadBytes(4)
	if !ok {
		return 0, false
	}

	return binary.LittleEndian.Uint32(b), true
}

// ReadVarint decodes one varint starting at the cursor's current position.
// On varint.OK it advances the cursor past the consumed bytes; on
// varint.NeedMore or varint.Overflow the cursor is left unchanged, matching
// varint.TryDecode's own non-consuming contract.
func (c *Cursor) ReadVarint() (value uint64, result varint.Result) {
	value, n, result := varint.TryDecode(c.data[c.pos:])
	if result == varint.OK {
		c.pos += n
	}

	return value, result
}
