// Package record provides a concrete RecordCodec/ContextCodec pair —
// Entity and Tick — sized and bit-laid-out to match the reference
// end-to-end wire examples exactly, for use by deltasync's default
// constructor and by its own tests.
package record
