// Package fingerprint names opaque byte blobs stably. Diagnostics and
// tooling use the fingerprint to refer to a record's exact bytes without
// reproducing them; equal bytes always get the equal fingerprint.
package fingerprint

import (
	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multihash"
)

// Record returns an IPFS-compatible CIDv1 (raw + sha2-256) string for the
// given bytes.
func Record(data []byte) string {
	sum, err := multihash.Sum(data, multihash.SHA2_256, -1)
	if err != nil {
		// multihash.Sum only errors for invalid inputs; with SHA2_256 and -1
		// length, this should be unreachable.
		return ""
	}
	return cid.NewCidV1(cid.Raw, sum).String()
}

// RecordCID is Record returning the parsed CID.
func RecordCID(data []byte) (cid.Cid, error) {
	sum, err := multihash.Sum(data, multihash.SHA2_256, -1)
	if err != nil {
		return cid.Undef, err
	}
	return cid.NewCidV1(cid.Raw, sum), nil
}
