// Package discrim derives fixed-length type discriminators from a
// namespace and a type name.
//
// A discriminator is the first 8 bytes of a cryptographic hash of
// "<namespace>:<name>". Two deployments agree on a tag purely by sharing
// the namespace and name strings; no central table of magic numbers is
// needed, and collisions are negligible at registry sizes this system
// works with (tens of entries).
package discrim

import (
	"crypto/sha256"
	"fmt"

	"golang.org/x/crypto/sha3"
	"lukechampine.com/blake3"
)

// Size is the discriminator length in bytes.
const Size = 8

// Alg names a supported discriminator hash algorithm.
type Alg string

const (
	AlgSHA256    Alg = "sha256"
	AlgSHA3256   Alg = "sha3-256"
	AlgKeccak256 Alg = "keccak256"
	AlgBLAKE3    Alg = "blake3"
)

// Derive returns the SHA-256 discriminator for namespace:name.
// It is pure and never fails.
func Derive(namespace, name string) [Size]byte {
	sum := sha256.Sum256(preimage(namespace, name))
	var d [Size]byte
	copy(d[:], sum[:Size])
	return d
}

// DeriveWith derives a discriminator using an alternate hash algorithm.
// Protocols that do not tag with SHA-256 can still share tags by agreeing
// on the algorithm name alongside the namespace and name strings.
func DeriveWith(alg Alg, namespace, name string) ([Size]byte, error) {
	var d [Size]byte
	switch alg {
	case AlgSHA256, "":
		return Derive(namespace, name), nil
	case AlgSHA3256:
		sum := sha3.Sum256(preimage(namespace, name))
		copy(d[:], sum[:Size])
		return d, nil
	case AlgKeccak256:
		h := sha3.NewLegacyKeccak256()
		h.Write(preimage(namespace, name))
		copy(d[:], h.Sum(nil)[:Size])
		return d, nil
	case AlgBLAKE3:
		sum := blake3.Sum256(preimage(namespace, name))
		copy(d[:], sum[:Size])
		return d, nil
	default:
		return d, fmt.Errorf("discrim: unsupported algorithm %q", alg)
	}
}

// Algs returns the supported algorithm names.
func Algs() []Alg {
	return []Alg{AlgSHA256, AlgSHA3256, AlgKeccak256, AlgBLAKE3}
}

func preimage(namespace, name string) []byte {
	return []byte(namespace + ":" + name)
}
