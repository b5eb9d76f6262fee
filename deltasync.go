// Package deltasync provides a generic delta-compression codec for
// synchronizing fixed-length arrays of small value-type records across a
// network link.
//
// A sender and a receiver each hold an Engine over the same record type T
// and packet-context type C. The sender calls WritePacket with its latest
// snapshot; only fields that changed since the last packet are put on the
// wire, alongside a small packet-wide context (a tick counter, a
// timestamp) that every record picks up on decode via ApplyContext. The
// receiver calls ApplyPacket to fold a byte stream — however it happens
// to be fragmented — back into its own copy of the array.
//
// # Basic usage
//
//	sender, _ := deltasync.NewEntityEngine(3)
//	_ = sender.SetInitialState(make([]record.Entity, 3))
//
//	state := []record.Entity{{A: 9}, {A: 0, B: 7}, {}}
//	w := pipeline.NewWriter()
//	_ = sender.WritePacket(ctx, w, state, record.Tick{Value: 1})
//	_ = w.Flush(ctx, sink)
//
//	receiver, _ := deltasync.NewEntityEngine(3)
//	_ = receiver.SetInitialState(make([]record.Entity, 3))
//	_ = receiver.ApplyPacket(ctx, pipeline.NewReader(source))
//	// receiver.CurrentState() now has state's A values; every B holds
//	// the tick (1), which EntityCodec.ApplyContext writes into B.
//
// # Package structure
//
// This package is a thin convenience wrapper around engine, codec, and
// record. For a custom record or context type, implement
// codec.RecordCodec[T, C] and codec.ContextCodec[C] and call
// engine.New[T, C] directly; NewEntityEngine exists only to make the
// bundled record.Entity/record.Tick pair trivial to reach for tests and
// demos.
package deltasync

import (
	"github.com/arloliu/deltasync/codec"
	"github.com/arloliu/deltasync/engine"
	"github.com/arloliu/deltasync/record"
)

// NewEngine creates an Engine for n records of type T with context type C,
// using the given RecordCodec/ContextCodec pair and options. This is the
// flexible constructor: use it for any record/context type other than the
// bundled record.Entity/record.Tick pair.
func NewEngine[T any, C any](n int, recordCodec codec.RecordCodec[T, C], contextCodec codec.ContextCodec[C], opts ...engine.Option[T, C]) (*engine.Engine[T, C], error) {
	return engine.New[T, C](n, recordCodec, contextCodec, opts...)
}

// NewEntityEngine creates an Engine of n record.Entity values with a
// record.Tick packet context, pre-wired to record.NewEntityCodec and
// record.NewTickCodec. This is the opinionated default constructor for
// the bundled example record/context pair.
func NewEntityEngine(n int, opts ...engine.Option[record.Entity, record.Tick]) (*engine.Engine[record.Entity, record.Tick], error) {
	return engine.New[record.Entity, record.Tick](n, record.NewEntityCodec(), record.NewTickCodec(), opts...)
}
