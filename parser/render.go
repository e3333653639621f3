package parser

import (
	"bytes"
	"encoding/json"
)

// PrettyPayload re-renders the outcome's JSON payload in indented form.
//
// This is a pure string transform over an already-decoded value; it must
// accept any valid JSON text a decoder produced. A payload that does not
// round-trip as JSON is reported as InvalidData rather than a decode
// failure, since classification itself already succeeded.
func (o Outcome) PrettyPayload() (string, error) {
	var buf bytes.Buffer
	if err := json.Indent(&buf, []byte(o.Payload), "", "  "); err != nil {
		return "", wrapError(KindInvalidData, "payload is not valid JSON: "+err.Error(), err)
	}
	return buf.String(), nil
}
