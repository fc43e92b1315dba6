package hash

import "github.com/cespare/xxhash/v2"

// ID computes the 64-bit xxHash identifier of the given token.
//
// Interning tokens as fixed-width IDs lets the histogram counter avoid
// retaining every distinct token string while counting large corpora.
func ID(token string) uint64 {
	return xxhash.Sum64String(token)
}
