// Package parser implements the decoder registry and dispatch engine:
// ordered, first-match-wins classification of opaque binary records and
// messages into structured, named outcomes.
//
// Consumers register decoders on a Builder up front; Build freezes them
// into a Parser. A Parser holds no mutable state and is safe for
// unsynchronized concurrent use. Decoder functions are expected to be
// pure: no I/O, no shared mutable state, no blocking. Dispatch is plain
// synchronous CPU work on the caller's goroutine.
package parser

// Parser is the immutable dispatch engine produced by Builder.Build.
//
// Decoder-list order is registration order and fixes match priority for
// the Parser's lifetime.
type Parser struct {
	source   string
	records  []entry
	messages []entry
	meta     *Metadata
}

// ClassifyRecord classifies and decodes one record.
//
// The record's source identifier is checked once, before any decoder runs;
// a mismatch short-circuits with UnknownSource. Otherwise decoders run in
// registration order and the first success wins. If every decoder rejects
// the input, the result is NoMatch carrying the last observed failure;
// earlier diagnostics are intentionally discarded.
func (p *Parser) ClassifyRecord(rec RawRecord) (Outcome, error) {
	if rec.Source != p.source {
		return Outcome{}, &Error{
			Kind:     KindUnknownSource,
			Message:  "record source " + rec.Source + " does not match parser source " + p.source,
			Expected: p.source,
			Actual:   rec.Source,
		}
	}
	return dispatch(p.records, rec.Data, "no registered record decoder accepted the input")
}

// ClassifyMessage classifies and decodes one message. Identical to
// ClassifyRecord over the message-decoder list, except messages carry no
// source identifier and get no pre-check.
func (p *Parser) ClassifyMessage(msg RawMessage) (Outcome, error) {
	return dispatch(p.messages, msg.Data, "no registered message decoder accepted the input")
}

// RecordResult is one per-item result from ClassifyRecords.
type RecordResult struct {
	Outcome Outcome
	Err     error
}

// ClassifyRecords classifies a batch of records independently. Item order
// is preserved; one malformed record never affects the others.
func (p *Parser) ClassifyRecords(recs []RawRecord) []RecordResult {
	out := make([]RecordResult, len(recs))
	for i, rec := range recs {
		out[i].Outcome, out[i].Err = p.ClassifyRecord(rec)
	}
	return out
}

func dispatch(entries []entry, data []byte, emptyMsg string) (Outcome, error) {
	var last error
	for _, e := range entries {
		out, err := e.decode(data)
		if err == nil {
			return out, nil
		}
		last = err
	}
	if last == nil {
		return Outcome{}, newError(KindNoMatch, emptyMsg)
	}
	return Outcome{}, wrapError(KindNoMatch, last.Error(), last)
}

// CanHandle reports whether records from the given source belong to this
// parser. It is a cheap pre-filter: the byte preview is deliberately not
// inspected.
func (p *Parser) CanHandle(source string, _ []byte) bool {
	return source == p.source
}

// Source returns the source identifier this parser was built for.
func (p *Parser) Source() string {
	return p.source
}

// RecordTypes returns the record type names in registration order.
func (p *Parser) RecordTypes() []string {
	return typeNames(p.records)
}

// MessageTypes returns the message names in registration order.
func (p *Parser) MessageTypes() []string {
	return typeNames(p.messages)
}

func typeNames(entries []entry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.typeName)
	}
	return out
}

// Metadata returns a snapshot of the metadata attached at build time.
// ok is false when none was attached.
func (p *Parser) Metadata() (m Metadata, ok bool) {
	if p.meta == nil {
		return Metadata{}, false
	}
	return *p.meta, true
}
