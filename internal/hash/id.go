// Package hash centralizes the xxHash64 calls the rest of the module makes
// for cheap, non-cryptographic fingerprints (atom cache slot hints, not the
// wire protocol itself).
package hash

import "github.com/cespare/xxhash/v2"

// Bytes computes the xxHash64 of data.
func Bytes(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// String computes the xxHash64 of s without a []byte conversion.
func String(s string) uint64 {
	return xxhash.Sum64String(s)
}
