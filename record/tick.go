package record

import (
	"github.com/arloliu/deltasync/endian"
	"github.com/arloliu/deltasync/pipeline"
)

// tickContextSize is Tick's compile-time-constant serialized size.
const tickContextSize = 8

// Tick is a small example packet-wide context: a monotonically increasing
// counter applied to every record on decode.
type Tick struct {
	Value uint64
}

// TickCodec implements codec.ContextCodec[Tick].
type TickCodec struct {
	Engine endian.EndianEngine
}

// NewTickCodec returns a TickCodec writing Value little-endian.
func NewTickCodec() TickCodec {
	return TickCodec{Engine: endian.GetLittleEndianEngine()}
}

// ContextSize returns 8, the exact byte length WriteContext emits and
// ReadContext consumes.
func (c TickCodec) ContextSize() int { return tickContextSize }

// WriteContext emits Value as 8 bytes.
func (c TickCodec) WriteContext(w *pipeline.Writer, ctx Tick) {
	w.Append(tickContextSize, func(dst []byte) []byte {
		return c.Engine.AppendUint64(dst, ctx.Value)
	})
}

// ReadContext consumes 8 bytes. The engine guarantees they are available
// before calling this.
func (c TickCodec) ReadContext(cur *pipeline.Cursor) Tick {
	b, _ := cur.ReadBytes(tickContextSize)
	return Tick{Value: c.Engine.Uint64(b)}
}
