// Package tokenledger is a complete parser for the token-ledger program:
// it decodes the program's vault accounts, its legacy pre-migration state,
// and its instruction payloads. It doubles as the reference for writing a
// parser package: derived tags for current types, an untagged decoder for
// the headerless legacy layout, and little-endian structural decoding as
// this program's binary convention.
package tokenledger

import (
	"encoding/binary"
	"encoding/json"
	"fmt"

	"bindec.io/bindec/parser"
	"bindec.io/bindec/sourceid"
)

// Source is the token-ledger program key.
const Source = "kgERWXbLfq6MHcWLd86a5dpmSvM86QhQrQjL2gGPbnD"

// Vault is the program's main account: funds held for an authority.
type Vault struct {
	Authority string `json:"authority"`
	Balance   uint64 `json:"balance"`
	Locked    bool   `json:"locked"`
	Bump      uint8  `json:"bump"`
}

const vaultBodyLen = 32 + 8 + 1 + 1

func decodeVault(body []byte) (string, error) {
	if len(body) < vaultBodyLen {
		return "", fmt.Errorf("vault body is %d bytes, need %d", len(body), vaultBodyLen)
	}
	v := Vault{
		Authority: sourceid.Encode(body[:32]),
		Balance:   binary.LittleEndian.Uint64(body[32:40]),
		Locked:    body[40] != 0,
		Bump:      body[41],
	}
	return marshal(v)
}

// LegacyState is the headerless account layout from before the vault
// migration: version byte followed by a little-endian entry count.
type LegacyState struct {
	Version uint8  `json:"version"`
	Entries uint32 `json:"entries"`
}

const legacyStateLen = 1 + 4

func decodeLegacyState(body []byte) (string, error) {
	// Exact length, not minimum: the legacy layout had no trailing fields,
	// so extra bytes mean this is not legacy state.
	if len(body) != legacyStateLen {
		return "", fmt.Errorf("legacy state is exactly %d bytes, got %d", legacyStateLen, len(body))
	}
	if body[0] == 0 || body[0] > 2 {
		return "", fmt.Errorf("legacy state version %d out of range", body[0])
	}
	s := LegacyState{
		Version: body[0],
		Entries: binary.LittleEndian.Uint32(body[1:5]),
	}
	return marshal(s)
}

// Transfer moves funds between vaults.
type Transfer struct {
	Amount uint64 `json:"amount"`
}

func decodeTransfer(body []byte) (string, error) {
	if len(body) < 8 {
		return "", fmt.Errorf("transfer body is %d bytes, need 8", len(body))
	}
	return marshal(Transfer{Amount: binary.LittleEndian.Uint64(body[:8])})
}

// InitializeVault creates a vault at a derived address.
type InitializeVault struct {
	Bump uint8 `json:"bump"`
}

func decodeInitializeVault(body []byte) (string, error) {
	if len(body) < 1 {
		return "", fmt.Errorf("initialize_vault body is empty, need 1 byte")
	}
	return marshal(InitializeVault{Bump: body[0]})
}

func marshal(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// New builds the token-ledger parser. Decoder order matters: the tagged
// vault decoder runs before the legacy fallback so tagged accounts never
// reach the permissive legacy check.
func New() *parser.Parser {
	return parser.NewBuilder(Source).
		RegisterRecord("Vault", "account", decodeVault).
		RegisterUntaggedRecord("LegacyState", decodeLegacyState).
		RegisterMessage("transfer", "global", decodeTransfer).
		RegisterMessage("initialize_vault", "global", decodeInitializeVault).
		WithMetadata(parser.Metadata{
			Name:         "Token Ledger",
			Source:       Source,
			ReferenceURL: "https://github.com/bindec-io/token-ledger",
			Version:      "1.2.0",
		}).
		Build()
}
