// Package endian provides byte order utilities for binary encoding and decoding.
//
// This package extends Go's standard encoding/binary package by combining
// ByteOrder and AppendByteOrder interfaces into a unified EndianEngine interface.
// This enables cleaner API design and improved performance for binary data operations.
//
// # Basic Usage
//
// Most RecordCodec/ContextCodec implementations should use
// GetLittleEndianEngine(), matching the wire-level length prefix and
// varints deltasync itself always writes:
//
//	import "github.com/arloliu/deltasync/endian"
//
//	engine := endian.GetLittleEndianEngine()
//	buf = engine.AppendUint32(buf, value)
//
// For interoperability with big-endian peers on a RecordCodec's own
// payload (the engine's own framing is unaffected):
//
//	engine := endian.GetBigEndianEngine()
//
// # Performance
//
// Using EndianEngine (which includes AppendByteOrder) avoids the extra
// allocation of a scratch buffer plus append compared to ByteOrder alone:
//
//	// Using EndianEngine (recommended)
//	buf = engine.AppendUint64(buf, value)
//
//	// Using ByteOrder only
//	tmp := make([]byte, 8)
//	engine.PutUint64(tmp, value)
//	buf = append(buf, tmp...)  // extra allocation
package endian

import "encoding/binary"

// EndianEngine combines ByteOrder and AppendByteOrder interfaces from encoding/binary
// into a single interface for convenient byte order operations.
//
// This interface is satisfied by binary.LittleEndian and binary.BigEndian from
// the standard library, making it fully compatible with existing Go code while
// providing access to both read/write and append operations.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine. It is what
// Engine.EndianEngine reports when no WithEndianEngine option was given,
// and what record.NewEntityCodec/NewTickCodec write fields with. It
// matches the byte order of the wire-level length prefix, which is always
// little-endian regardless of this setting.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine, for a RecordCodec
// interoperating with a big-endian peer's own payload format.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}
