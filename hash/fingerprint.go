package hash

import "strconv"

// SchemaFingerprint computes a single xxHash64 value identifying the
// combination of snapshot size, context size, and codec identities an
// Engine was constructed with. Two peers exchange this once, out of band,
// before trusting each other's packets; a mismatch means a misconfigured
// N, CONTEXT_SIZE, or codec version that would otherwise silently corrupt
// decode. It is never written into the packet stream itself.
func SchemaFingerprint(n int, contextSize int, recordCodecName string, contextCodecName string) uint64 {
	buf := make([]byte, 0, 64)
	buf = strconv.AppendInt(buf, int64(n), 10)
	buf = append(buf, '|')
	buf = strconv.AppendInt(buf, int64(contextSize), 10)
	buf = append(buf, '|')
	buf = append(buf, recordCodecName...)
	buf = append(buf, '|')
	buf = append(buf, contextCodecName...)

	return ID(string(buf))
}
