// Package engine implements the delta-compression engine: it owns a pair
// of fixed-length snapshot arrays (baseline, working), drives WritePacket
// and ApplyPacket against a pluggable codec.RecordCodec/codec.ContextCodec
// pair, and manages the post-encode buffer swap and AdvanceBaseline.
package engine
