package record

import (
	"github.com/arloliu/deltasync/endian"
	"github.com/arloliu/deltasync/pipeline"
)

// change mask bit positions for EntityCodec. Stable between sender and
// receiver, as the change-mask contract requires.
const (
	bitA uint64 = 1 << iota
	bitB
)

// Entity is a small example record: a signed 32-bit field and an unsigned
// 16-bit field.
type Entity struct {
	A int32
	B uint16
}

// EntityCodec implements codec.RecordCodec[Entity, Tick]. B is treated as
// a context-mirroring field: ApplyContext overwrites it with the packet's
// tick on every decoded packet, independent of A's change mask, to
// exercise the per-record ApplyContext contract distinctly from the
// per-field change-mask path.
type EntityCodec struct {
	Engine endian.EndianEngine
}

// NewEntityCodec returns an EntityCodec writing fields little-endian.
func NewEntityCodec() EntityCodec {
	return EntityCodec{Engine: endian.GetLittleEndianEngine()}
}

// ChangeMask returns bitA if A differs from old, bitB if B differs.
func (c EntityCodec) ChangeMask(newVal, old Entity, _ Tick) uint64 {
	var mask uint64
	if newVal.A != old.A {
		mask |= bitA
	}
	if newVal.B != old.B {
		mask |= bitB
	}

	return mask
}

// DeltaSize returns 4 bytes for A, 2 bytes for B, summed per mask bit.
func (c EntityCodec) DeltaSize(mask uint64) int {
	size := 0
	if mask&bitA != 0 {
		size += 4
	}
	if mask&bitB != 0 {
		size += 2
	}

	return size
}

// WriteDelta emits A then B, each only if its bit is set in mask.
func (c EntityCodec) WriteDelta(w *pipeline.Writer, rec Entity, mask uint64) {
	if mask&bitA != 0 {
		w.Append(4, func(dst []byte) []byte {
			return c.Engine.AppendUint32(dst, uint32(rec.A)) //nolint:gosec
		})
	}
	if mask&bitB != 0 {
		w.Append(2, func(dst []byte) []byte {
			return c.Engine.AppendUint16(dst, rec.B)
		})
	}
}

// ApplyDelta reads A then B, each only if its bit is set in mask, and
// assigns the flagged fields of rec in place. The engine guarantees
// DeltaSize(mask) bytes are available before calling this.
func (c EntityCodec) ApplyDelta(rec *Entity, cur *pipeline.Cursor, mask uint64) {
	if mask&bitA != 0 {
		b, _ := cur.ReadBytes(4)
		rec.A = int32(c.Engine.Uint32(b)) //nolint:gosec
	}
	if mask&bitB != 0 {
		b, _ := cur.ReadBytes(2)
		rec.B = c.Engine.Uint16(b)
	}
}

// ApplyContext mirrors the packet's tick into B on every record, changed
// or not.
func (c EntityCodec) ApplyContext(rec *Entity, ctx Tick) {
	rec.B = uint16(ctx.Value) //nolint:gosec
}
