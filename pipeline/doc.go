// Package pipeline provides the byte-pipeline abstractions the engine
// writes packets into and reads packets out of: a Writer vending writable
// spans from a pooled buffer with reserve-then-patch support for the
// length prefix, and a Reader/Cursor pair that accumulates a possibly
// fragmented incoming stream and exposes a rewindable cursor over it.
package pipeline
