package parser

import "bindec.io/bindec/discrim"

// Builder accumulates decoder entries for one source and freezes them into
// an immutable Parser.
//
// Registration never fails: a bad decoder surfaces its errors only when it
// is later invoked on input. A Builder is single-owner and is consumed by
// Build; any use after Build panics.
type Builder struct {
	source   string
	records  []entry
	messages []entry
	meta     *Metadata
	built    bool
}

// NewBuilder starts a builder for decoders belonging to the given source
// identifier.
func NewBuilder(source string) *Builder {
	return &Builder{source: source}
}

// RegisterRecord registers a record decoder tagged with the discriminator
// derived from namespace and typeName. The body decode receives the bytes
// after the 8-byte tag.
func (b *Builder) RegisterRecord(typeName, namespace string, body BodyFunc) *Builder {
	d := discrim.Derive(namespace, typeName)
	return b.RegisterPrefixedRecord(typeName, d[:], body)
}

// RegisterPrefixedRecord registers a record decoder with a caller-supplied
// discriminator of any length, for protocols that do not use hash-derived
// tags.
func (b *Builder) RegisterPrefixedRecord(typeName string, disc []byte, body BodyFunc) *Builder {
	b.checkUsable()
	b.records = append(b.records, entry{
		typeName:      typeName,
		discriminator: cloneBytes(disc),
		decode:        guarded(typeName, cloneBytes(disc), body),
	})
	return b
}

// RegisterUntaggedRecord registers a record decoder with no discriminator
// check; the body decode receives the full buffer. For headerless formats.
func (b *Builder) RegisterUntaggedRecord(typeName string, body BodyFunc) *Builder {
	b.checkUsable()
	b.records = append(b.records, entry{
		typeName: typeName,
		decode:   untagged(typeName, body),
	})
	return b
}

// RegisterCustomRecord registers a record decoder that owns its entire
// check-and-decode sequence. disc, if non-nil, is advertised for
// introspection but not verified here.
func (b *Builder) RegisterCustomRecord(typeName string, disc []byte, fn DecodeFunc) *Builder {
	b.checkUsable()
	b.records = append(b.records, entry{
		typeName:      typeName,
		discriminator: cloneBytes(disc),
		decode:        fn,
	})
	return b
}

// RegisterMessage registers a message decoder tagged with the discriminator
// derived from namespace and name.
func (b *Builder) RegisterMessage(name, namespace string, body BodyFunc) *Builder {
	d := discrim.Derive(namespace, name)
	return b.RegisterPrefixedMessage(name, d[:], body)
}

// RegisterPrefixedMessage registers a message decoder with a caller-supplied
// discriminator.
func (b *Builder) RegisterPrefixedMessage(name string, disc []byte, body BodyFunc) *Builder {
	b.checkUsable()
	b.messages = append(b.messages, entry{
		typeName:      name,
		discriminator: cloneBytes(disc),
		decode:        guarded(name, cloneBytes(disc), body),
	})
	return b
}

// RegisterUntaggedMessage registers a message decoder with no discriminator
// check.
func (b *Builder) RegisterUntaggedMessage(name string, body BodyFunc) *Builder {
	b.checkUsable()
	b.messages = append(b.messages, entry{
		typeName: name,
		decode:   untagged(name, body),
	})
	return b
}

// RegisterCustomMessage registers a message decoder that owns its entire
// check-and-decode sequence.
func (b *Builder) RegisterCustomMessage(name string, disc []byte, fn DecodeFunc) *Builder {
	b.checkUsable()
	b.messages = append(b.messages, entry{
		typeName:      name,
		discriminator: cloneBytes(disc),
		decode:        fn,
	})
	return b
}

// WithMetadata attaches metadata returned verbatim by Parser.Metadata.
func (b *Builder) WithMetadata(m Metadata) *Builder {
	b.checkUsable()
	b.meta = &m
	return b
}

// Build freezes the decoder lists (in registration order) and the source
// identifier into an immutable Parser. The Builder is consumed: further
// calls on it panic.
func (b *Builder) Build() *Parser {
	b.checkUsable()
	b.built = true
	p := &Parser{
		source:   b.source,
		records:  b.records,
		messages: b.messages,
	}
	if b.meta != nil {
		m := *b.meta
		p.meta = &m
	}
	b.records = nil
	b.messages = nil
	b.meta = nil
	return p
}

func (b *Builder) checkUsable() {
	if b.built {
		panic("parser: Builder used after Build")
	}
}

func cloneBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
