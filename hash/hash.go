// Package hash provides the xxHash64 helpers used for a one-time schema
// handshake between peers, ahead of any packet exchange.
package hash

import "github.com/cespare/xxhash/v2"

// ID computes the xxHash64 of data.
func ID(data string) uint64 {
	return xxhash.Sum64String(data)
}
