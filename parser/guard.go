package parser

import (
	"bytes"
	"fmt"
)

// guarded wraps a structural body decode with the discriminator check
// shared by all tagged entries:
//
//	len(data) < len(disc)      -> InsufficientData
//	data[:len(disc)] != disc   -> DiscriminatorMismatch
//	body decode fails          -> DeserializationFailed (inner text kept)
//
// On success the discriminator bytes are stripped before the body decode
// runs, and echoed back on the Outcome.
func guarded(typeName string, disc []byte, body BodyFunc) DecodeFunc {
	return func(data []byte) (Outcome, error) {
		if len(data) < len(disc) {
			return Outcome{}, newError(KindInsufficientData,
				fmt.Sprintf("%s: data too short for %d-byte discriminator", typeName, len(disc)))
		}
		if !bytes.Equal(data[:len(disc)], disc) {
			return Outcome{}, newError(KindDiscriminatorMismatch,
				fmt.Sprintf("%s: discriminator mismatch", typeName))
		}
		payload, err := body(data[len(disc):])
		if err != nil {
			return Outcome{}, wrapError(KindDeserialization, err.Error(), err)
		}
		// Echo a copy: the outcome is caller-owned, and a caller mutating
		// it must not reach the expected-prefix bytes used for matching.
		return Outcome{
			TypeName:      typeName,
			Payload:       payload,
			Discriminator: cloneBytes(disc),
		}, nil
	}
}

// untagged wraps a structural body decode that receives the full buffer.
// There is no prefix to check; structural rejection is the only failure.
func untagged(typeName string, body BodyFunc) DecodeFunc {
	return func(data []byte) (Outcome, error) {
		payload, err := body(data)
		if err != nil {
			return Outcome{}, wrapError(KindDeserialization, err.Error(), err)
		}
		return Outcome{TypeName: typeName, Payload: payload}, nil
	}
}
