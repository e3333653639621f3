// Package sourceid handles source identifiers: the strings naming which
// origin produced a record. In the ecosystems this toolkit targets they
// are base58-encoded 32-byte program keys, but the dispatch engine treats
// them as opaque strings; only tooling that needs the raw key bytes uses
// this package.
package sourceid

import (
	"fmt"

	"github.com/mr-tron/base58"
)

// KeyLen is the raw length of a program key.
const KeyLen = 32

// Encode renders raw key bytes as a base58 source identifier.
func Encode(key []byte) string {
	return base58.Encode(key)
}

// Decode recovers the raw bytes behind a base58 source identifier.
func Decode(id string) ([]byte, error) {
	b, err := base58.Decode(id)
	if err != nil {
		return nil, fmt.Errorf("sourceid: invalid base58: %w", err)
	}
	return b, nil
}

// Valid reports whether id is a base58 string decoding to a full-length
// program key. Tooling uses it as a sanity check before dialing out;
// the dispatch engine itself never requires it.
func Valid(id string) bool {
	b, err := base58.Decode(id)
	if err != nil {
		return false
	}
	return len(b) == KeyLen
}
