package parser

// RawRecord is an opaque binary blob tagged with the source identifier
// that produced it. Acquisition layers may carry more fields alongside;
// the parser only reads these two.
type RawRecord struct {
	Source string `json:"source"`
	Data   []byte `json:"data"`
}

// RawMessage is an opaque binary command or message payload. Messages are
// not scoped by a source identifier.
type RawMessage struct {
	Data []byte `json:"data"`
}

// Outcome is a successfully classified and decoded input.
//
// Payload is the decoded value rendered as JSON text. Discriminator echoes
// the matched tag bytes, or is nil when the matching entry declared none.
type Outcome struct {
	TypeName      string `json:"typeName"`
	Payload       string `json:"payload"`
	Discriminator []byte `json:"discriminator,omitempty"`
}

// Metadata describes the decoder set to consumers. All fields are optional
// and are returned verbatim; the parser never validates, defaults, or
// interprets them.
type Metadata struct {
	Name         string `json:"name,omitempty"`
	Source       string `json:"source,omitempty"`
	ReferenceURL string `json:"referenceURL,omitempty"`
	Version      string `json:"version,omitempty"`
}

// BodyFunc structurally decodes the bytes that follow a discriminator
// (or the whole buffer for untagged entries) and renders the value as
// JSON text. The binary convention it implements is the decoder's own
// business; the dispatch engine never looks inside.
type BodyFunc func(body []byte) (string, error)

// DecodeFunc owns the entire check-and-decode sequence for one entry,
// including any discriminator verification. Used by the custom
// registration escape hatch.
type DecodeFunc func(data []byte) (Outcome, error)

// entry is one named unit of decoding behavior in a decoder list.
type entry struct {
	typeName      string
	discriminator []byte // nil when the entry is untagged
	decode        DecodeFunc
}
